package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lumen/internal/diag"
	"lumen/internal/diagfmt"
	"lumen/internal/driver"
	"lumen/internal/project"
	"lumen/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.lmc|directory>",
	Short: "Analyze CST documents and report the first violation per document",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("fullpath", false, "emit full file paths in output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	// Manifest defaults apply where flags are left at their zero values.
	if manifest, ok, err := project.Load("."); err != nil {
		return err
	} else if ok {
		if jobs == 0 {
			jobs = manifest.Config.Check.Jobs
		}
		if !cmd.Root().PersistentFlags().Changed("color") && manifest.Config.Check.Color != "" {
			colorMode = manifest.Config.Check.Color
		}
	}

	target := args[0]
	info, err := os.Stat(target)
	if err != nil {
		return err
	}
	paths := []string{target}
	if info.IsDir() {
		paths, err = driver.ListDocuments(target)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("no %s documents under %s", driver.DocExt, target)
		}
	}

	fset := source.NewFileSet()
	results, err := driver.CheckPaths(cmd.Context(), fset, paths, driver.Options{Jobs: jobs})
	if err != nil {
		return err
	}

	cmd.SilenceUsage = true
	switch format {
	case "pretty":
		return renderPretty(results, fset, fullPath, colorMode, quiet)
	case "json":
		return renderJSON(results)
	default:
		cmd.SilenceUsage = false
		return fmt.Errorf("unknown format %q (want pretty or json)", format)
	}
}

func renderPretty(results []driver.CheckResult, fset *source.FileSet, fullPath bool, colorMode string, quiet bool) error {
	opts := diagfmt.Options{
		Color:    colorEnabled(colorMode, os.Stdout),
		FullPath: fullPath,
	}
	failed := 0
	for _, res := range results {
		if res.Err == nil {
			continue
		}
		failed++
		if quiet {
			continue
		}
		if de, ok := diag.AsError(res.Err); ok {
			if de.Path == "" {
				de.Path = res.Path
			}
			diagfmt.Pretty(os.Stdout, de, fset, opts)
		} else {
			fmt.Fprintln(os.Stdout, res.Err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d document(s) failed analysis", failed, len(results))
	}
	return nil
}

func renderJSON(results []driver.CheckResult) error {
	reports := make([]diagfmt.Report, 0, len(results))
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
		reports = append(reports, diagfmt.NewReport(res.Path, res.Err))
	}
	if err := diagfmt.JSON(os.Stdout, reports); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d document(s) failed analysis", failed, len(results))
	}
	return nil
}
