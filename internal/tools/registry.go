package tools

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrNotRegistered is returned by Detect for names that were never registered.
var ErrNotRegistered = errors.New("tool not registered")

// Registry holds tool specs keyed by display name and runs detection on
// demand. Registration order is preserved for DetectAll. The registry is not
// safe for concurrent registration; detection only reads immutable specs.
type Registry struct {
	specs map[string]Spec
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]Spec)}
}

// Register inserts or replaces the spec keyed by spec.Name. Replacing keeps
// the original position in registration order.
func (r *Registry) Register(spec Spec) {
	if _, exists := r.specs[spec.Name]; !exists {
		r.order = append(r.order, spec.Name)
	}
	r.specs[spec.Name] = spec
}

// Names returns registered names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Specs returns registered specs in registration order.
func (r *Registry) Specs() []Spec {
	out := make([]Spec, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.specs[name])
	}
	return out
}

// Len returns the number of registered specs.
func (r *Registry) Len() int { return len(r.order) }

// Detect runs the detection pipeline for the spec registered under name.
// Unknown names are a programmer error and return ErrNotRegistered; every
// environmental failure is folded into the Result instead.
func (r *Registry) Detect(name string) (Result, error) {
	spec, ok := r.specs[name]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}
	return detectOne(spec), nil
}

// DetectAll detects every registered tool in registration order, one Result
// per spec. It never fails; individual outcomes degrade to not_found/error.
func (r *Registry) DetectAll() []Result {
	out := make([]Result, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, detectOne(r.specs[name]))
	}
	return out
}

// detectOne runs the resolution → invocation → classification pipeline for a
// single spec.
func detectOne(spec Spec) Result {
	spec = spec.withDefaults()

	// Resolution: PATH first, then fallback paths in order.
	path, err := exec.LookPath(spec.Command)
	if err != nil {
		path = ""
		for _, cand := range spec.FallbackPaths {
			if st, serr := os.Stat(cand); serr == nil && st.Mode().IsRegular() {
				path = cand
				break
			}
		}
	}
	if path == "" {
		return Result{Name: spec.Name, Status: StatusNotFound}
	}

	// Invocation: single version flag, bounded by the spec timeout.
	stdout, err := runVersion(path, spec.VersionFlag, spec.VersionTimeout)
	if err != nil {
		// Non-zero exit, timeout and launch failure all classify the same.
		return Result{Name: spec.Name, Path: path, Status: StatusError}
	}
	return Result{
		Name:    spec.Name,
		Path:    path,
		Version: firstLine(stdout),
		Status:  StatusAvailable,
	}
}
