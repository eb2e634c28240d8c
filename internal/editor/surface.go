// Package editor loads and saves the multi-list edit surfaces of the records
// UI: the five training-like lists, the children list and the education list.
package editor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cradoe/biodata/internal/models"
)

type Surface string

const (
	SurfaceTraining  Surface = "training"
	SurfaceChildren  Surface = "children"
	SurfaceEducation Surface = "education"
)

// Store is the slice of the record repository the surfaces need.
type Store interface {
	List(ctx context.Context, entity models.EntityType, ownerID string, dest any) error
	ReplaceList(ctx context.Context, entity models.EntityType, ownerID string, rows []models.Row) error
}

type domain struct {
	entity models.EntityType
	load   func(ctx context.Context, s Store, ownerID string) (any, int, error)
	decode func(raw json.RawMessage) ([]models.Row, error)
}

func listOf[T models.Row](entity models.EntityType) domain {
	return domain{
		entity: entity,
		load: func(ctx context.Context, s Store, ownerID string) (any, int, error) {
			rows := []T{}
			if err := s.List(ctx, entity, ownerID, &rows); err != nil {
				return nil, 0, err
			}
			return rows, len(rows), nil
		},
		decode: func(raw json.RawMessage) ([]models.Row, error) {
			var items []T
			if err := json.Unmarshal(raw, &items); err != nil {
				return nil, fmt.Errorf("%s: %w", entity, err)
			}
			rows := make([]models.Row, len(items))
			for i := range items {
				rows[i] = items[i]
			}
			return rows, nil
		},
	}
}

var surfaces = map[Surface][]domain{
	SurfaceTraining: {
		listOf[models.DomesticTraining](models.EntityDomesticTraining),
		listOf[models.ForeignTraining](models.EntityForeignTraining),
		listOf[models.ForeignTravel](models.EntityForeignTravel),
		listOf[models.ForeignPosting](models.EntityForeignPosting),
		listOf[models.LienDeputation](models.EntityLienDeputation),
	},
	SurfaceChildren: {
		listOf[models.ChildInformation](models.EntityChildrenInfo),
	},
	SurfaceEducation: {
		listOf[models.EducationalQualification](models.EntityEducation),
	},
}

// Domains lists the entity types edited together on s.
func Domains(s Surface) ([]models.EntityType, bool) {
	ds, ok := surfaces[s]
	if !ok {
		return nil, false
	}

	out := make([]models.EntityType, len(ds))
	for i, d := range ds {
		out[i] = d.entity
	}
	return out, true
}

func ParseSurface(s string) (Surface, error) {
	if _, ok := surfaces[Surface(s)]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSurface, s)
	}
	return Surface(s), nil
}
