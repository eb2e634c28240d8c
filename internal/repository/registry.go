package repository

import (
	"fmt"
	"time"

	"github.com/cradoe/biodata/internal/models"
)

type tableKind int

const (
	kindSingular tableKind = iota
	kindList
)

// Table describes how one entity type is stored. Columns hold the domain fields
// only, in the order the matching model's Values method returns them.
type Table struct {
	Entity      models.EntityType
	Name        string
	OwnerColumn string
	Columns     []string
	Required    []string
	OrderBy     []string

	// ReadOnly columns are selected but never written by upserts
	ReadOnly []string

	kind      tableKind
	stampless bool // rows carry created_at only
}

func (t Table) IsList() bool {
	return t.kind == kindList
}

// insertColumns prefixes the domain columns with the key columns. The owner
// column is skipped when it is the primary key itself.
func (t Table) insertColumns() []string {
	cols := []string{"id"}
	if t.OwnerColumn != "id" {
		cols = append(cols, t.OwnerColumn)
	}
	cols = append(cols, t.Columns...)
	cols = append(cols, "created_at")
	if !t.stampless {
		cols = append(cols, "updated_at")
	}
	return cols
}

func (t Table) insertValues(id, ownerID string, row models.Row, stamp time.Time) ([]any, error) {
	fields := row.Values()
	if len(fields) != len(t.Columns) {
		return nil, fmt.Errorf("%s: got %d values for %d columns", t.Name, len(fields), len(t.Columns))
	}

	values := []any{id}
	if t.OwnerColumn != "id" {
		values = append(values, ownerID)
	}
	values = append(values, fields...)
	values = append(values, stamp)
	if !t.stampless {
		values = append(values, stamp)
	}
	return values, nil
}

func (t Table) selectColumns() []string {
	cols := t.insertColumns()
	return append(cols, t.ReadOnly...)
}

func (t Table) orderBy() []string {
	if len(t.OrderBy) == 0 {
		return []string{"created_at ASC", "id ASC"}
	}
	return t.OrderBy
}

var registry = []Table{
	{
		Entity:      models.EntityProfile,
		Name:        "profiles",
		OwnerColumn: "id",
		Columns:     []string{"full_name", "date_of_birth", "designation", "address_line1", "district", "joining_date", "phone", "email"},
		ReadOnly:    []string{"photo_url"},
		Required:    []string{"full_name"},
		kind:        kindSingular,
	},
	{
		Entity:      models.EntityGeneralInfo,
		Name:        "general_information",
		OwnerColumn: "user_id",
		Columns: []string{
			"father_name", "mother_name", "current_address", "current_position_joining_date",
			"workplace_address", "workplace_phone", "confirmation_order_number", "confirmation_order_date",
			"blood_group", "special_illness_info", "mobile_phone",
		},
		kind: kindSingular,
	},
	{
		Entity:      models.EntityOfficeInfo,
		Name:        "office_information",
		OwnerColumn: "user_id",
		Columns:     []string{"ministry", "directorate", "identity_number", "nid", "tin", "birth_place", "village", "upazila", "district"},
		kind:        kindSingular,
	},
	{
		Entity:      models.EntityMaritalInfo,
		Name:        "marital_information",
		OwnerColumn: "user_id",
		Columns:     []string{"marital_status"},
		Required:    []string{"marital_status"},
		kind:        kindSingular,
	},
	{
		Entity:      models.EntityChildrenInfo,
		Name:        "children_information",
		OwnerColumn: "user_id",
		Columns:     []string{"full_name", "birth_date", "gender", "age", "marital_status", "special_status"},
		Required:    []string{"full_name", "gender"},
		kind:        kindList,
	},
	{
		Entity:      models.EntityEducation,
		Name:        "educational_qualifications",
		OwnerColumn: "user_id",
		Columns:     []string{"degree_title", "institution_name", "board_university", "subject", "passing_year", "result_division"},
		Required:    []string{"degree_title", "institution_name", "passing_year"},
		OrderBy:     []string{"passing_year ASC", "created_at ASC", "id ASC"},
		kind:        kindList,
	},
	{
		Entity:      models.EntityDomesticTraining,
		Name:        "domestic_trainings",
		OwnerColumn: "user_id",
		Columns:     []string{"course_name", "institution_name", "duration", "funding_source"},
		Required:    []string{"course_name", "institution_name", "duration", "funding_source"},
		kind:        kindList,
	},
	{
		Entity:      models.EntityForeignTraining,
		Name:        "foreign_trainings",
		OwnerColumn: "user_id",
		Columns:     []string{"course_name", "institution_name", "country", "duration", "funding_source"},
		Required:    []string{"course_name", "institution_name", "country", "duration", "funding_source"},
		kind:        kindList,
	},
	{
		Entity:      models.EntityForeignTravel,
		Name:        "foreign_travels",
		OwnerColumn: "user_id",
		Columns:     []string{"purpose", "duration", "country"},
		Required:    []string{"purpose", "duration", "country"},
		kind:        kindList,
	},
	{
		Entity:      models.EntityForeignPosting,
		Name:        "foreign_postings",
		OwnerColumn: "user_id",
		Columns:     []string{"designation", "institution_name", "country", "duration", "funding_source"},
		Required:    []string{"designation", "institution_name", "country", "duration", "funding_source"},
		kind:        kindList,
	},
	{
		Entity:      models.EntityLienDeputation,
		Name:        "lien_deputations",
		OwnerColumn: "user_id",
		Columns:     []string{"designation", "institution_name", "country", "duration", "funding_source"},
		Required:    []string{"designation", "institution_name", "country", "duration", "funding_source"},
		kind:        kindList,
	},
}

// spouseTable hangs off marital_information and is not an entity type of its own.
var spouseTable = Table{
	Name:        "spouse_information",
	OwnerColumn: "marital_information_id",
	Columns:     []string{"name", "occupation", "nid", "tin", "district", "employee_id", "designation", "office_address", "office_phone"},
	kind:        kindList,
	stampless:   true,
}

// Tables returns the registry in canonical entity order.
func Tables() []Table {
	out := make([]Table, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds the table registered for entity.
func Lookup(entity models.EntityType) (Table, error) {
	for _, t := range registry {
		if t.Entity == entity {
			return t, nil
		}
	}
	return Table{}, fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
}
