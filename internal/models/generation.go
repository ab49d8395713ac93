package models

// WrapperSource is the emitted forwarding wrapper for a single interface
// description. Content holds the wrapper type plus its factory extension and
// no file header; assembling complete files is the caller's concern.
type WrapperSource struct {
	InterfaceName string // name of the wrapped interface
	WrapperName   string // name of the emitted forwarding type
	Content       string // emitted source text
}

// GeneratedFile represents a complete output artifact ready to write
type GeneratedFile struct {
	Path    string          // output path, empty means stdout
	Content string          // full file content including the header
	Sources []WrapperSource // per-interface wrappers, in declared order
}
