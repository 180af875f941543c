package ecs

// ForEach invokes f for every entity currently holding a component of
// type T, passing the entity and a pointer to its component in dense
// storage order. A no-op if no store for T has been created in r.
func ForEach[T any](r *Registry, f func(e Entity, v *T)) {
	s, ok := storeOf[T](r)
	if !ok {
		return
	}
	s.forEach(f)
}
