package alu

// Registry is the single-slot error register. The most recent write
// wins; a set code stays until it is overwritten or cleared.
type Registry struct {
	code Code
}

func (r *Registry) Set(code Code) {
	r.code = code
}

// Clear is Set(None).
func (r *Registry) Clear() {
	r.code = None
}

func (r *Registry) Get() Code {
	return r.code
}

// Failed reports whether a code other than None is held.
func (r *Registry) Failed() bool {
	return r.code != None
}
