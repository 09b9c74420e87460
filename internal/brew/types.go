// Package brew queries the Homebrew and mas CLIs for the packages actually
// installed on this host.
//
// A host without Homebrew is a normal condition, not an error: detection
// degrades to an empty state so callers can still diff against it.
package brew

// CurrentState is the observed package state: what Homebrew and mas report
// as installed right now.
type CurrentState struct {
	Formulae  map[string]string   // name -> installed version(s)
	Casks     map[string]string   // name -> installed version(s)
	Taps      map[string]struct{} // registered taps
	StoreApps map[string]int64    // display name -> App Store id
}

// NewCurrentState returns an empty state with all collections allocated.
func NewCurrentState() *CurrentState {
	return &CurrentState{
		Formulae:  make(map[string]string),
		Casks:     make(map[string]string),
		Taps:      make(map[string]struct{}),
		StoreApps: make(map[string]int64),
	}
}

// IsEmpty reports whether nothing at all is installed (or Homebrew is
// absent).
func (s *CurrentState) IsEmpty() bool {
	return len(s.Formulae) == 0 && len(s.Casks) == 0 &&
		len(s.Taps) == 0 && len(s.StoreApps) == 0
}
