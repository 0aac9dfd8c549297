package lifecycle

import "errors"

// Group runs one transition across many components in order.
// A failing component does not prevent the transition of its siblings;
// all failures are returned joined.
type Group []*Component

// InitAll initializes every component.
func (g Group) InitAll() error {
	return g.each((*Component).Init)
}

// StartAll starts every component.
func (g Group) StartAll() error {
	return g.each((*Component).Start)
}

// StopAll stops every component in reverse order.
func (g Group) StopAll() error {
	var errs []error
	for i := len(g) - 1; i >= 0; i-- {
		if g[i] == nil {
			continue
		}
		if err := g[i].Stop(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// DisposeAll disposes every component in reverse order.
func (g Group) DisposeAll() error {
	var errs []error
	for i := len(g) - 1; i >= 0; i-- {
		if g[i] == nil {
			continue
		}
		if err := g[i].Dispose(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (g Group) each(fn func(*Component) error) error {
	var errs []error
	for _, c := range g {
		if c == nil {
			continue
		}
		if err := fn(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
