package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"layoutlens/internal/model"
	"layoutlens/internal/repository/memory"
)

func genWall() gopter.Gen {
	return gopter.CombineGens(
		gen.Identifier(),
		gen.Float64Range(-1000, 1000),
		gen.Float64Range(-1000, 1000),
		gen.Float64Range(-1000, 1000),
		gen.Float64Range(-1000, 1000),
		gen.Float64Range(0.01, 50),
	).Map(func(v []interface{}) model.Wall {
		return model.Wall{
			ID:        v[0].(string),
			Start:     model.Point{X: v[1].(float64), Y: v[2].(float64)},
			End:       model.Point{X: v[3].(float64), Y: v[4].(float64)},
			Thickness: v[5].(float64),
		}
	})
}

// TestProjectServiceProperties checks create/get/replace laws against a real store.
func TestProjectServiceProperties(t *testing.T) {
	ctx := context.Background()
	properties := gopter.NewProperties(nil)

	// Property: a created project has a fresh id, the given name, no walls, and reads back equal
	properties.Property("create then get round-trips", prop.ForAll(
		func(name string) bool {
			svc := NewProjectService(memory.NewProjectMemory())
			created, err := svc.Create(ctx, name)
			if err != nil || created.ID == "" || created.Name != name || len(created.Walls) != 0 {
				return false
			}
			got, err := svc.Get(ctx, created.ID)
			return err == nil && reflect.DeepEqual(created, got)
		},
		gen.AnyString(),
	))

	// Property: unknown ids are NotFound for both get and replace
	properties.Property("unknown ids are not found", prop.ForAll(
		func(id string) bool {
			svc := NewProjectService(memory.NewProjectMemory())
			_, getErr := svc.Get(ctx, id)
			_, replErr := svc.Replace(ctx, id, model.Project{ID: id})
			return errors.Is(getErr, ErrNotFound) && errors.Is(replErr, ErrNotFound)
		},
		gen.AnyString(),
	))

	// Property: replace stores exactly the payload, and repeating it changes nothing
	properties.Property("replace is last-write-wins and idempotent", prop.ForAll(
		func(name string, walls []model.Wall) bool {
			svc := NewProjectService(memory.NewProjectMemory())
			created, err := svc.Create(ctx, "original")
			if err != nil {
				return false
			}
			payload := model.Project{ID: created.ID, Name: name, Walls: walls}.Clone()

			first, err := svc.Replace(ctx, created.ID, payload)
			if err != nil || !reflect.DeepEqual(payload, *first) {
				return false
			}
			afterOnce, _ := svc.Get(ctx, created.ID)

			if _, err := svc.Replace(ctx, created.ID, payload); err != nil {
				return false
			}
			afterTwice, _ := svc.Get(ctx, created.ID)

			return reflect.DeepEqual(payload, *afterOnce) && reflect.DeepEqual(afterOnce, afterTwice)
		},
		gen.AlphaString(),
		gen.SliceOf(genWall()),
	))

	properties.TestingRun(t)
}
