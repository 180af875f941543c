package ecs

// ForEach2 invokes f for every entity alive in both the T1 and T2
// stores, passing the entity and pointers to its two components.
//
// Implements spec.md §4.3.3's multi-type query algorithm: resolve each
// type to its store (returning immediately if any is missing or empty),
// pick the smallest-liveCount store as the driver (ties favor the
// first-listed type), snapshot its live keys, then retain only the
// entities present in every other store before invoking f. The snapshot
// is taken up front so that f mutating component data does not perturb
// the candidate list mid-iteration.
func ForEach2[T1, T2 any](r *Registry, f func(e Entity, a *T1, b *T2)) {
	s1, ok1 := storeOf[T1](r)
	s2, ok2 := storeOf[T2](r)
	if !ok1 || !ok2 || s1.liveCount() == 0 || s2.liveCount() == 0 {
		return
	}
	driver := 1
	if s2.liveCount() < s1.liveCount() {
		driver = 2
	}
	var candidates []Entity
	if driver == 1 {
		candidates = s1.snapshotLiveKeys()
	} else {
		candidates = s2.snapshotLiveKeys()
	}
	for _, e := range candidates {
		if !s1.contains(e) || !s2.contains(e) {
			continue
		}
		v1, _ := s1.get(e)
		v2, _ := s2.get(e)
		f(e, v1, v2)
	}
}

// ForEach3 is ForEach2 generalized to three component types.
func ForEach3[T1, T2, T3 any](r *Registry, f func(e Entity, a *T1, b *T2, c *T3)) {
	s1, ok1 := storeOf[T1](r)
	s2, ok2 := storeOf[T2](r)
	s3, ok3 := storeOf[T3](r)
	if !ok1 || !ok2 || !ok3 || s1.liveCount() == 0 || s2.liveCount() == 0 || s3.liveCount() == 0 {
		return
	}
	driver, smallest := 1, s1.liveCount()
	if s2.liveCount() < smallest {
		driver, smallest = 2, s2.liveCount()
	}
	if s3.liveCount() < smallest {
		driver = 3
	}
	var candidates []Entity
	switch driver {
	case 1:
		candidates = s1.snapshotLiveKeys()
	case 2:
		candidates = s2.snapshotLiveKeys()
	default:
		candidates = s3.snapshotLiveKeys()
	}
	for _, e := range candidates {
		if !s1.contains(e) || !s2.contains(e) || !s3.contains(e) {
			continue
		}
		v1, _ := s1.get(e)
		v2, _ := s2.get(e)
		v3, _ := s3.get(e)
		f(e, v1, v2, v3)
	}
}

// ForEach4 is ForEach2 generalized to four component types.
func ForEach4[T1, T2, T3, T4 any](r *Registry, f func(e Entity, a *T1, b *T2, c *T3, d *T4)) {
	s1, ok1 := storeOf[T1](r)
	s2, ok2 := storeOf[T2](r)
	s3, ok3 := storeOf[T3](r)
	s4, ok4 := storeOf[T4](r)
	if !ok1 || !ok2 || !ok3 || !ok4 ||
		s1.liveCount() == 0 || s2.liveCount() == 0 || s3.liveCount() == 0 || s4.liveCount() == 0 {
		return
	}
	driver, smallest := 1, s1.liveCount()
	if s2.liveCount() < smallest {
		driver, smallest = 2, s2.liveCount()
	}
	if s3.liveCount() < smallest {
		driver, smallest = 3, s3.liveCount()
	}
	if s4.liveCount() < smallest {
		driver = 4
	}
	var candidates []Entity
	switch driver {
	case 1:
		candidates = s1.snapshotLiveKeys()
	case 2:
		candidates = s2.snapshotLiveKeys()
	case 3:
		candidates = s3.snapshotLiveKeys()
	default:
		candidates = s4.snapshotLiveKeys()
	}
	for _, e := range candidates {
		if !s1.contains(e) || !s2.contains(e) || !s3.contains(e) || !s4.contains(e) {
			continue
		}
		v1, _ := s1.get(e)
		v2, _ := s2.get(e)
		v3, _ := s3.get(e)
		v4, _ := s4.get(e)
		f(e, v1, v2, v3, v4)
	}
}

// ForEach5 is ForEach2 generalized to five component types.
func ForEach5[T1, T2, T3, T4, T5 any](r *Registry, f func(e Entity, a *T1, b *T2, c *T3, d *T4, g *T5)) {
	s1, ok1 := storeOf[T1](r)
	s2, ok2 := storeOf[T2](r)
	s3, ok3 := storeOf[T3](r)
	s4, ok4 := storeOf[T4](r)
	s5, ok5 := storeOf[T5](r)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 ||
		s1.liveCount() == 0 || s2.liveCount() == 0 || s3.liveCount() == 0 || s4.liveCount() == 0 || s5.liveCount() == 0 {
		return
	}
	driver, smallest := 1, s1.liveCount()
	if s2.liveCount() < smallest {
		driver, smallest = 2, s2.liveCount()
	}
	if s3.liveCount() < smallest {
		driver, smallest = 3, s3.liveCount()
	}
	if s4.liveCount() < smallest {
		driver, smallest = 4, s4.liveCount()
	}
	if s5.liveCount() < smallest {
		driver = 5
	}
	var candidates []Entity
	switch driver {
	case 1:
		candidates = s1.snapshotLiveKeys()
	case 2:
		candidates = s2.snapshotLiveKeys()
	case 3:
		candidates = s3.snapshotLiveKeys()
	case 4:
		candidates = s4.snapshotLiveKeys()
	default:
		candidates = s5.snapshotLiveKeys()
	}
	for _, e := range candidates {
		if !s1.contains(e) || !s2.contains(e) || !s3.contains(e) || !s4.contains(e) || !s5.contains(e) {
			continue
		}
		v1, _ := s1.get(e)
		v2, _ := s2.get(e)
		v3, _ := s3.get(e)
		v4, _ := s4.get(e)
		v5, _ := s5.get(e)
		f(e, v1, v2, v3, v4, v5)
	}
}
