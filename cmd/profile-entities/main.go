// Command profile-entities profiles entity creation, component attach,
// iteration, and deletion churn.
//
//	go build ./cmd/profile-entities
//	go tool pprof -http=":8000" -nodefraction=0.001 ./profile-entities mem.pprof
package main

import (
	"github.com/kaelstrom/sparsecs"
	"github.com/pkg/profile"
)

type position struct {
	X, Y float64
}

type velocity struct {
	DX, DY float64
}

func main() {
	rounds := 50
	iters := 10000
	numEntities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, numEntities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for i := 0; i < rounds; i++ {
		r := ecs.NewRegistry()
		entities := make([]ecs.Entity, 0, numEntities)

		for j := 0; j < iters; j++ {
			entities = entities[:0]
			for k := 0; k < numEntities; k++ {
				e := r.CreateEntity()
				ecs.Set(r, e, position{})
				ecs.Set(r, e, velocity{DX: 1, DY: 1})
				entities = append(entities, e)
			}
			ecs.ForEach2(r, func(e ecs.Entity, p *position, v *velocity) {
				p.X += v.DX
				p.Y += v.DY
			})
			for _, e := range entities {
				r.DeleteEntity(e)
			}
		}
	}
}
