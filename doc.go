// Package ecs implements a sparse-set Entity-Component-System core: a
// registry of generational entity handles and a type-keyed collection of
// paged sparse-to-dense component stores, supporting O(1) attach/detach/
// lookup and linear iteration over entities possessing a conjunction of
// component types.
//
// A Registry owns the entity table and the per-component-type stores.
// Components are attached with Set or Add, read with Get, and entities
// possessing a set of component types are visited with ForEach or its
// ForEach2..ForEach5 multi-component variants.
//
// The Registry is not safe for concurrent use; callers must serialize
// every operation on a given Registry themselves. The process-global
// component type registry (RegisterComponent, GetID, TryGetID) is safe to
// call from multiple goroutines, even across different Registries.
package ecs
