package ecs

// TypedStore extends SparseSet with a parallel dense array of values of
// type T, giving O(1) get/set/add/remove keyed by K. See SPEC_FULL.md §6.4.
type TypedStore[K SparseKey, T any] struct {
	SparseSet[K]
	vals []T
}

// NewTypedStore constructs a TypedStore with the given page size and page
// count cap (0 selects the package defaults; see NewSparseSet).
func NewTypedStore[K SparseKey, T any](pageSize, pageCountMax uint32) *TypedStore[K, T] {
	return &TypedStore[K, T]{SparseSet: *NewSparseSet[K](pageSize, pageCountMax)}
}

// get returns a pointer to the value stored for k, or (nil, false) if k
// is not present.
func (s *TypedStore[K, T]) get(k K) (*T, bool) {
	if !s.contains(k) {
		return nil, false
	}
	return &s.vals[s.densePos(k)], true
}

// set stores v for k, overwriting any existing value, and attaches k if
// it was not already present.
func (s *TypedStore[K, T]) set(k K, v T) {
	if s.contains(k) {
		s.vals[s.densePos(k)] = v
		return
	}
	d := s.insert(k)
	if int(d) == len(s.vals) {
		s.vals = append(s.vals, v)
	} else {
		s.vals[d] = v
	}
}

// add attaches k with value v if k is not already present; it is a
// no-op (never overwriting) if k is already present.
func (s *TypedStore[K, T]) add(k K, v T) {
	if s.contains(k) {
		return
	}
	s.set(k, v)
}

// remove detaches k if present, resetting its value slot to the zero
// value of T so that any resources it references are released promptly.
func (s *TypedStore[K, T]) remove(k K) {
	if !s.contains(k) {
		return
	}
	d := s.densePos(k)
	s.SparseSet.remove(k)
	var zero T
	s.vals[d] = zero
}

// values returns the dense value array in the same order as keys(); it
// may include zombie slots left behind by remove, which callers filter
// out by zipping with keys() and keeping index d only when
// densePos(keys()[d]) == d.
func (s *TypedStore[K, T]) values() []T {
	return s.vals
}

// forEach invokes f for every live (key, value) pair in dense order,
// filtering out zombie slots internally. This is the mechanism behind
// the package-level ForEach function.
func (s *TypedStore[K, T]) forEach(f func(k K, v *T)) {
	for d, k := range s.dense {
		if s.densePos(k) != uint32(d) {
			continue
		}
		f(k, &s.vals[d])
	}
}

// snapshotLiveKeys returns a fresh copy of the currently live keys, in
// dense order. Multi-component queries use this to snapshot the driver
// store's candidate entity list before consulting any other store, per
// spec.md §4.3.3 step 3/4.
func (s *TypedStore[K, T]) snapshotLiveKeys() []K {
	out := make([]K, 0, s.liveCount())
	for d, k := range s.dense {
		if s.densePos(k) == uint32(d) {
			out = append(out, k)
		}
	}
	return out
}
