package seeders

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cradoe/biodata/internal/editor"
	"github.com/cradoe/biodata/internal/models"
	"github.com/cradoe/biodata/internal/repository"
)

const defaultTimeout = 5 * time.Second

// Notifier is told about the singular records the seeder writes. List
// surfaces notify through the editor.
type Notifier interface {
	RecordsChanged(ctx context.Context, ownerID string, entities []models.EntityType)
}

type Seeder struct {
	Records  repository.RecordRepository
	Editor   *editor.Editor
	Notifier Notifier
	Logger   *slog.Logger
}

func New(seeder *Seeder) *Seeder {
	return &Seeder{
		Records:  seeder.Records,
		Editor:   seeder.Editor,
		Notifier: seeder.Notifier,
		Logger:   seeder.Logger,
	}
}

// Run fills the records of ownerID with demo data. Surfaces that already
// hold rows are left alone, so running it twice is harmless.
func (seeder *Seeder) Run(ctx context.Context, ownerID string) error {
	if err := seeder.seedSingular(ctx, ownerID); err != nil {
		return err
	}

	for _, sub := range demoSubmissions() {
		if err := seeder.seedSurface(ctx, ownerID, sub); err != nil {
			return err
		}
	}
	return nil
}

func (seeder *Seeder) seedSingular(ctx context.Context, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	birth := models.NewDate(1985, time.March, 14)
	joined := models.NewDate(2010, time.July, 1)

	singular := []struct {
		entity models.EntityType
		row    models.Row
	}{
		{models.EntityProfile, models.Profile{
			FullName:     "Rahim Uddin",
			DateOfBirth:  &birth,
			Designation:  "Senior Assistant Secretary",
			AddressLine1: "House 12, Road 5, Dhanmondi",
			District:     "Dhaka",
			JoiningDate:  &joined,
			Phone:        "+8801711000000",
			Email:        "rahim.uddin@example.gov.bd",
		}},
		{models.EntityOfficeInfo, models.OfficeInformation{
			Ministry:       "Ministry of Public Administration",
			Directorate:    "Department of Administration",
			IdentityNumber: "BCS-2010-0412",
			NID:            "1985261234567",
			BirthPlace:     "Cumilla",
			Village:        "Chandina",
			Upazila:        "Chandina",
			District:       "Cumilla",
		}},
		{models.EntityGeneralInfo, models.GeneralInformation{
			FatherName:       "Abdul Karim",
			MotherName:       "Rokeya Begum",
			CurrentAddress:   "House 12, Road 5, Dhanmondi, Dhaka",
			WorkplaceAddress: "Bangladesh Secretariat, Dhaka",
			BloodGroup:       "B+",
			MobilePhone:      "+8801711000000",
		}},
	}

	written := make([]models.EntityType, 0, len(singular)+1)
	for _, s := range singular {
		if _, err := seeder.Records.Upsert(ctx, s.entity, ownerID, s.row); err != nil {
			return fmt.Errorf("seed %s: %w", s.entity, err)
		}
		written = append(written, s.entity)
	}

	_, err := seeder.Records.UpsertMarital(ctx, ownerID, &models.MaritalInformation{
		MaritalStatus: models.MaritalMarried,
		Spouses: []models.Spouse{{
			Name:       "Fatema Begum",
			Occupation: "Teacher",
			District:   "Cumilla",
		}},
	})
	if err != nil {
		return fmt.Errorf("seed %s: %w", models.EntityMaritalInfo, err)
	}
	written = append(written, models.EntityMaritalInfo)

	if seeder.Notifier != nil {
		seeder.Notifier.RecordsChanged(ctx, ownerID, written)
	}
	return nil
}

func (seeder *Seeder) seedSurface(ctx context.Context, ownerID string, sub editor.Submission) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	session, err := seeder.Editor.Open(ctx, sub.Surface, ownerID)
	if err != nil {
		return err
	}
	if session.Mode() != editor.ModeEditing {
		seeder.Logger.Info("surface already has data, skipping", "surface", sub.Surface, "owner", ownerID)
		return nil
	}

	if err := session.Submit(ctx, sub); err != nil {
		return fmt.Errorf("seed %s: %w", sub.Surface, err)
	}

	seeder.Logger.Info("seeded surface", "surface", sub.Surface, "owner", ownerID)
	return nil
}

func demoSubmissions() []editor.Submission {
	age := 9
	year := func(y int) *int { return &y }

	return []editor.Submission{
		{
			Surface: editor.SurfaceChildren,
			Domains: []editor.DomainRows{{
				Entity: models.EntityChildrenInfo,
				Rows: []models.Row{
					models.ChildInformation{FullName: "Ayesha Rahman", Gender: "female", Age: &age, MaritalStatus: models.MaritalUnmarried},
				},
			}},
		},
		{
			Surface: editor.SurfaceEducation,
			Domains: []editor.DomainRows{{
				Entity: models.EntityEducation,
				Rows: []models.Row{
					models.EducationalQualification{DegreeTitle: "SSC", InstitutionName: "Chandina Pilot High School", BoardUniversity: "Cumilla", PassingYear: year(2001), ResultDivision: "GPA 5.00"},
					models.EducationalQualification{DegreeTitle: "BSS (Hons)", InstitutionName: "University of Dhaka", Subject: "Public Administration", PassingYear: year(2007), ResultDivision: "First Class"},
				},
			}},
		},
		{
			Surface: editor.SurfaceTraining,
			Domains: []editor.DomainRows{
				{
					Entity: models.EntityDomesticTraining,
					Rows: []models.Row{
						models.DomesticTraining{CourseName: "Foundation Training Course", InstitutionName: "BPATC", Duration: "6 months", FundingSource: "Government"},
					},
				},
				{
					Entity: models.EntityForeignTravel,
					Rows: []models.Row{
						models.ForeignTravel{Purpose: "Conference", Duration: "5 days", Country: "Japan"},
					},
				},
			},
		},
	}
}
