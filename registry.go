package panes

import "slices"

// registry owns every region of a session and assigns handles to them.
// Indices come from a plain counter (the session serializes all access) and
// are never handed out twice, so a stale handle can never alias a region
// created later.
type registry struct {
	regions map[uint64]*region
	order   []uint64 // live indices, ascending
	next    uint64
}

func newRegistry() *registry {
	return &registry{regions: make(map[uint64]*region)}
}

// insert stores p under a fresh index.
func (r *registry) insert(p *region) Handle {
	i := r.next
	r.next++
	r.regions[i] = p
	// next only grows, so appending keeps order sorted.
	r.order = append(r.order, i)
	return Handle{index: i}
}

// remove deletes and returns the region behind h.
func (r *registry) remove(h Handle) (*region, error) {
	p, ok := r.regions[h.index]
	if !ok {
		return nil, r.indexError(h)
	}
	delete(r.regions, h.index)
	if i, found := slices.BinarySearch(r.order, h.index); found {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return p, nil
}

// get returns the region behind h. The returned pointer may be mutated by
// the caller while it holds the session.
func (r *registry) get(h Handle) (*region, error) {
	p, ok := r.regions[h.index]
	if !ok {
		return nil, r.indexError(h)
	}
	return p, nil
}

// forEach calls fn for every stored region, visible or hidden, in ascending
// handle order. It stops at the first error and returns it.
func (r *registry) forEach(fn func(Handle, *region) error) error {
	for _, i := range r.order {
		if err := fn(Handle{index: i}, r.regions[i]); err != nil {
			return err
		}
	}
	return nil
}

// len returns the number of live regions.
func (r *registry) len() int {
	return len(r.regions)
}

// indexError classifies a failed lookup. Indices below the counter were
// issued once and have since been deleted.
func (r *registry) indexError(h Handle) error {
	if h.index < r.next {
		return &HandleError{Handle: h, Err: ErrUseAfterDelete}
	}
	return &HandleError{Handle: h, Err: ErrNotAllocated}
}
