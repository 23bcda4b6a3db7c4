package curve

import (
	"fmt"
	"sync"
)

// Registry is an in-memory Provider: curve IDs mapped to pre-loaded
// tables, with optional postbomb companions per ID. Loading tables from
// disk or a remote package is the caller's concern; the registry only
// resolves and combines what it was given.
//
// Registration and lookup are guarded by an RWMutex, so a Registry may
// be shared across goroutines. Tables themselves are immutable.
type Registry struct {
	mu       sync.RWMutex
	curves   map[ID]*Table
	postbomb map[ID]*Table
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		curves:   make(map[ID]*Table),
		postbomb: make(map[ID]*Table),
	}
}

// Register associates a conventional table with an ID, replacing any
// previous registration. A nil table fails with ErrNilTable.
func (r *Registry) Register(id ID, tbl *Table) error {
	if tbl == nil {
		return ErrNilTable
	}
	r.mu.Lock()
	r.curves[id] = tbl
	r.mu.Unlock()

	return nil
}

// RegisterPostbomb associates a postbomb companion table with a
// conventional curve ID, used when Get is asked for a glued table.
func (r *Registry) RegisterPostbomb(id ID, tbl *Table) error {
	if tbl == nil {
		return ErrNilTable
	}
	r.mu.Lock()
	r.postbomb[id] = tbl
	r.mu.Unlock()

	return nil
}

// Get resolves an ID to a ready-to-use table, gluing the postbomb
// companion and resampling per opts.
//
// Errors: ErrUnknownCurve for an unregistered ID, ErrNoPostbomb when
// opts.Postbomb is set but no companion exists, plus any Glue/Resample
// failure.
func (r *Registry) Get(id ID, opts GetOptions) (*Table, error) {
	r.mu.RLock()
	tbl, ok := r.curves[id]
	pb := r.postbomb[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, id)
	}

	if opts.Postbomb {
		if pb == nil {
			return nil, fmt.Errorf("%w: %q", ErrNoPostbomb, id)
		}
		glued, err := tbl.Glue(pb)
		if err != nil {
			return nil, err
		}
		tbl = glued
	}

	if opts.ResampleStep > 0 {
		resampled, err := tbl.Resample(opts.ResampleStep)
		if err != nil {
			return nil, err
		}
		tbl = resampled
	}

	return tbl, nil
}

// compile-time interface check
var _ Provider = (*Registry)(nil)
