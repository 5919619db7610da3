package model

// State is the process-wide outcome of the startup load.
// It is constructed exactly once in main, before the server accepts traffic,
// and is read-only afterwards; an explicit flag (never a nil check on the
// artifact) decides the unavailable branch
type State struct {
	artifact *Artifact
	loaded   bool
}

// NewLoaded returns a State carrying a usable artifact
func NewLoaded(a *Artifact) State {
	if a == nil {
		panic("model: NewLoaded requires a non nil artifact")
	}
	return State{artifact: a, loaded: true}
}

// NewUnavailable returns the degraded State used when the startup load failed
func NewUnavailable() State { return State{} }

// Loaded reports whether a usable artifact is held
func (s State) Loaded() bool { return s.loaded }

// Artifact returns the held artifact, or nil when unavailable
func (s State) Artifact() *Artifact { return s.artifact }
