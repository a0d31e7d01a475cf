package resolve

// Sizer looks up the linear size of a module or floor by name.
type Sizer interface {
	Size(name string) (int, bool)
}

// SizerFunc adapts a function to the Sizer interface.
type SizerFunc func(name string) (int, bool)

// Size calls f.
func (f SizerFunc) Size(name string) (int, bool) { return f(name) }

// Uniform sizes every name the same.
type Uniform int

// Size returns u for any name.
func (u Uniform) Size(string) (int, bool) { return int(u), true }

// Table is a strict name to size lookup.
type Table map[string]int

// Size returns the table entry for name.
func (t Table) Size(name string) (int, bool) {
	n, ok := t[name]
	return n, ok
}

// Fallback looks names up in t and answers def for anything missing.
func Fallback(t Table, def int) Sizer {
	return SizerFunc(func(name string) (int, bool) {
		if n, ok := t[name]; ok {
			return n, true
		}
		return def, true
	})
}
