package diagfmt

// Options control diagnostic rendering.
type Options struct {
	// Color enables ANSI styling.
	Color bool
	// FullPath emits paths as given instead of just the base name.
	FullPath bool
}
