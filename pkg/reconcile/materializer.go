package reconcile

// File is one expected target file: a path relative to the target root and
// the exact bytes that should exist there.
type File struct {
	Path    string
	Content []byte
}

// Materializer deterministically transforms a source unit into the files its
// target representation should contain. Identical source bytes and identical
// materialization parameters must always produce byte-identical output; the
// engine relies on this to compute what the target should be without reading
// the target.
//
// Implementations return paths relative to the target root: a single-file
// unit yields one file named after the unit, a directory-mirrored unit yields
// its file set prefixed with the unit name.
type Materializer interface {
	Materialize(source Unit) ([]File, error)
}

// MaterializerFunc adapts a function to the Materializer interface.
type MaterializerFunc func(source Unit) ([]File, error)

// Materialize implements Materializer.
func (f MaterializerFunc) Materialize(source Unit) ([]File, error) {
	return f(source)
}
