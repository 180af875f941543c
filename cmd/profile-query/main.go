// Command profile-query profiles steady-state multi-component
// iteration over a large, static entity population.
//
//	go build ./cmd/profile-query
//	go tool pprof -http=":8000" -nodefraction=0.001 ./profile-query cpu.prof
package main

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/kaelstrom/sparsecs"
)

type comp1 struct{ V, W int64 }
type comp2 struct{ V, W int64 }
type comp3 struct{ V, W int64 }
type comp4 struct{ V, W int64 }
type comp5 struct{ V, W int64 }

func main() {
	f, _ := os.Create("cpu.prof")
	_ = pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	rounds := 50
	iters := 10000
	numEntities := 100000
	run(rounds, iters, numEntities)

	memFile, _ := os.Create("mem.prof")
	defer memFile.Close()
	runtime.GC()
	_ = pprof.WriteHeapProfile(memFile)
}

func run(rounds, iters, numEntities int) {
	for i := 0; i < rounds; i++ {
		r := ecs.NewRegistry()
		for j := 0; j < numEntities; j++ {
			e := r.CreateEntity()
			ecs.Set(r, e, comp1{})
			ecs.Set(r, e, comp2{})
			ecs.Set(r, e, comp3{})
			ecs.Set(r, e, comp4{})
			ecs.Set(r, e, comp5{})
		}

		for k := 0; k < iters; k++ {
			ecs.ForEach5(r, func(e ecs.Entity, a *comp1, b *comp2, c *comp3, d *comp4, g *comp5) {
				a.V += b.V
				a.W += b.W
			})
		}
	}
}
