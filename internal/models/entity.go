package models

// EntityType names one of the personnel-record domains. Translation keys are
// derived from the value; the repository registry maps it to a table.
type EntityType string

const (
	EntityProfile          EntityType = "profile"
	EntityGeneralInfo      EntityType = "general_information"
	EntityOfficeInfo       EntityType = "office_information"
	EntityMaritalInfo      EntityType = "marital_information"
	EntityChildrenInfo     EntityType = "children_information"
	EntityEducation        EntityType = "educational_qualifications"
	EntityDomesticTraining EntityType = "domestic_trainings"
	EntityForeignTraining  EntityType = "foreign_trainings"
	EntityForeignTravel    EntityType = "foreign_travels"
	EntityForeignPosting   EntityType = "foreign_postings"
	EntityLienDeputation   EntityType = "lien_deputations"
)

// AllEntities lists every entity type in canonical order. Fan-out reads and the
// tie-break of the activity feed follow this order.
var AllEntities = []EntityType{
	EntityProfile,
	EntityGeneralInfo,
	EntityOfficeInfo,
	EntityMaritalInfo,
	EntityChildrenInfo,
	EntityEducation,
	EntityDomesticTraining,
	EntityForeignTraining,
	EntityForeignTravel,
	EntityForeignPosting,
	EntityLienDeputation,
}

func (e EntityType) Valid() bool {
	for _, known := range AllEntities {
		if e == known {
			return true
		}
	}
	return false
}
