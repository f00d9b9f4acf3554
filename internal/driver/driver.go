// Package driver orchestrates batch analysis: it loads CST documents
// emitted by the front-end and analyzes them in parallel. Fail-fast
// applies per document; documents fail independently of one another.
package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"lumen/internal/cst"
	"lumen/internal/ir"
	"lumen/internal/sema"
	"lumen/internal/source"
)

// DocExt is the extension the front-end uses for encoded CST documents.
const DocExt = ".lmc"

// CheckResult is the outcome for one document.
type CheckResult struct {
	Path    string
	FileID  source.FileID
	Program *ir.Program
	Err     error
}

// Options configure a batch run.
type Options struct {
	// Jobs limits parallel workers; 0 means GOMAXPROCS.
	Jobs int
}

// ListDocuments returns the sorted *.lmc files under dir.
func ListDocuments(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, DocExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CheckPaths decodes and analyzes every document in paths. Results come
// back in input order. The returned error covers infrastructure failures
// only; semantic failures land in the per-document Err.
func CheckPaths(ctx context.Context, fset *source.FileSet, paths []string, opts Options) ([]CheckResult, error) {
	if fset == nil {
		fset = source.NewFileSet()
	}
	results := make([]CheckResult, len(paths))

	// Decode serially: the FileSet is not safe for concurrent Add, and
	// registration order keeps FileIDs deterministic.
	docs := make([]*cst.Document, len(paths))
	for i, path := range paths {
		results[i].Path = path
		data, err := os.ReadFile(path) // #nosec G304 -- paths come from the caller
		if err != nil {
			results[i].Err = fmt.Errorf("load %s: %w", path, err)
			continue
		}
		doc, err := cst.DecodeDocument(data)
		if err != nil {
			results[i].Err = fmt.Errorf("%s: %w", path, err)
			continue
		}
		name := doc.Path
		if name == "" {
			name = path
		}
		fileID := fset.AddVirtual(name, []byte(doc.Source))
		doc.Root.Rebind(fileID)
		docs[i] = doc
		results[i].FileID = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Result slots are per-goroutine, no mutex needed.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(paths), 1)))
	for i := range docs {
		if docs[i] == nil {
			continue
		}
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := sema.Analyze(&docs[i].Root, sema.Options{FileSet: fset})
			if err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Program = res.Program
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
