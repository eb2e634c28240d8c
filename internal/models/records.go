package models

import "time"

// Row is implemented by every stored record. Values returns the writable domain
// columns in the order the repository registry declares them for the record's table.
type Row interface {
	Values() []any
}

// Marital statuses accepted by the marital and children records.
const (
	MaritalMarried   = "married"
	MaritalUnmarried = "unmarried"
	MaritalWidow     = "widow"
	MaritalDivorced  = "divorced"
	MaritalWidower   = "widower"
)

var MaritalStatuses = []string{MaritalMarried, MaritalUnmarried, MaritalWidow, MaritalDivorced, MaritalWidower}

type Profile struct {
	ID           string     `db:"id" json:"id"`
	FullName     string     `db:"full_name" json:"full_name"`
	DateOfBirth  *Date      `db:"date_of_birth" json:"date_of_birth"`
	Designation  string     `db:"designation" json:"designation"`
	AddressLine1 string     `db:"address_line1" json:"address_line1"`
	District     string     `db:"district" json:"district"`
	JoiningDate  *Date      `db:"joining_date" json:"joining_date"`
	Phone        string     `db:"phone" json:"phone"`
	Email        string     `db:"email" json:"email"`
	PhotoURL     string     `db:"photo_url" json:"photo_url"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at"`
}

func (p Profile) Values() []any {
	return []any{p.FullName, p.DateOfBirth, p.Designation, p.AddressLine1, p.District, p.JoiningDate, p.Phone, p.Email}
}

type OfficeInformation struct {
	ID             string     `db:"id" json:"id"`
	UserID         string     `db:"user_id" json:"-"`
	Ministry       string     `db:"ministry" json:"ministry"`
	Directorate    string     `db:"directorate" json:"directorate"`
	IdentityNumber string     `db:"identity_number" json:"identity_number"`
	NID            string     `db:"nid" json:"nid"`
	TIN            string     `db:"tin" json:"tin"`
	BirthPlace     string     `db:"birth_place" json:"birth_place"`
	Village        string     `db:"village" json:"village"`
	Upazila        string     `db:"upazila" json:"upazila"`
	District       string     `db:"district" json:"district"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time `db:"updated_at" json:"updated_at"`
}

func (o OfficeInformation) Values() []any {
	return []any{o.Ministry, o.Directorate, o.IdentityNumber, o.NID, o.TIN, o.BirthPlace, o.Village, o.Upazila, o.District}
}

type GeneralInformation struct {
	ID                         string     `db:"id" json:"id"`
	UserID                     string     `db:"user_id" json:"-"`
	FatherName                 string     `db:"father_name" json:"father_name"`
	MotherName                 string     `db:"mother_name" json:"mother_name"`
	CurrentAddress             string     `db:"current_address" json:"current_address"`
	CurrentPositionJoiningDate *Date      `db:"current_position_joining_date" json:"current_position_joining_date"`
	WorkplaceAddress           string     `db:"workplace_address" json:"workplace_address"`
	WorkplacePhone             string     `db:"workplace_phone" json:"workplace_phone"`
	ConfirmationOrderNumber    string     `db:"confirmation_order_number" json:"confirmation_order_number"`
	ConfirmationOrderDate      *Date      `db:"confirmation_order_date" json:"confirmation_order_date"`
	BloodGroup                 string     `db:"blood_group" json:"blood_group"`
	SpecialIllnessInfo         string     `db:"special_illness_info" json:"special_illness_info"`
	MobilePhone                string     `db:"mobile_phone" json:"mobile_phone"`
	CreatedAt                  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt                  *time.Time `db:"updated_at" json:"updated_at"`
}

func (g GeneralInformation) Values() []any {
	return []any{
		g.FatherName, g.MotherName, g.CurrentAddress, g.CurrentPositionJoiningDate,
		g.WorkplaceAddress, g.WorkplacePhone, g.ConfirmationOrderNumber, g.ConfirmationOrderDate,
		g.BloodGroup, g.SpecialIllnessInfo, g.MobilePhone,
	}
}

type MaritalInformation struct {
	ID            string     `db:"id" json:"id"`
	UserID        string     `db:"user_id" json:"-"`
	MaritalStatus string     `db:"marital_status" json:"marital_status"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updated_at"`

	Spouses []Spouse `db:"-" json:"spouses"`
}

func (m MaritalInformation) Values() []any {
	return []any{m.MaritalStatus}
}

// Spouse belongs to a marital_information row rather than directly to a user.
type Spouse struct {
	ID                   string    `db:"id" json:"id"`
	MaritalInformationID string    `db:"marital_information_id" json:"-"`
	Name                 string    `db:"name" json:"name"`
	Occupation           string    `db:"occupation" json:"occupation"`
	NID                  string    `db:"nid" json:"nid"`
	TIN                  string    `db:"tin" json:"tin"`
	District             string    `db:"district" json:"district"`
	EmployeeID           string    `db:"employee_id" json:"employee_id"`
	Designation          string    `db:"designation" json:"designation"`
	OfficeAddress        string    `db:"office_address" json:"office_address"`
	OfficePhone          string    `db:"office_phone" json:"office_phone"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
}

func (s Spouse) Values() []any {
	return []any{s.Name, s.Occupation, s.NID, s.TIN, s.District, s.EmployeeID, s.Designation, s.OfficeAddress, s.OfficePhone}
}

type ChildInformation struct {
	ID            string     `db:"id" json:"id"`
	UserID        string     `db:"user_id" json:"-"`
	FullName      string     `db:"full_name" json:"full_name"`
	BirthDate     *Date      `db:"birth_date" json:"birth_date"`
	Gender        string     `db:"gender" json:"gender"`
	Age           *int       `db:"age" json:"age"`
	MaritalStatus string     `db:"marital_status" json:"marital_status"`
	SpecialStatus string     `db:"special_status" json:"special_status"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updated_at"`
}

func (c ChildInformation) Values() []any {
	return []any{c.FullName, c.BirthDate, c.Gender, c.Age, c.MaritalStatus, c.SpecialStatus}
}

type EducationalQualification struct {
	ID              string     `db:"id" json:"id"`
	UserID          string     `db:"user_id" json:"-"`
	DegreeTitle     string     `db:"degree_title" json:"degree_title"`
	InstitutionName string     `db:"institution_name" json:"institution_name"`
	BoardUniversity string     `db:"board_university" json:"board_university"`
	Subject         string     `db:"subject" json:"subject"`
	PassingYear     *int       `db:"passing_year" json:"passing_year"`
	ResultDivision  string     `db:"result_division" json:"result_division"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at" json:"updated_at"`
}

func (e EducationalQualification) Values() []any {
	return []any{e.DegreeTitle, e.InstitutionName, e.BoardUniversity, e.Subject, e.PassingYear, e.ResultDivision}
}

type DomesticTraining struct {
	ID              string     `db:"id" json:"id"`
	UserID          string     `db:"user_id" json:"-"`
	CourseName      string     `db:"course_name" json:"course_name"`
	InstitutionName string     `db:"institution_name" json:"institution_name"`
	Duration        string     `db:"duration" json:"duration"`
	FundingSource   string     `db:"funding_source" json:"funding_source"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at" json:"updated_at"`
}

func (d DomesticTraining) Values() []any {
	return []any{d.CourseName, d.InstitutionName, d.Duration, d.FundingSource}
}

type ForeignTraining struct {
	ID              string     `db:"id" json:"id"`
	UserID          string     `db:"user_id" json:"-"`
	CourseName      string     `db:"course_name" json:"course_name"`
	InstitutionName string     `db:"institution_name" json:"institution_name"`
	Country         string     `db:"country" json:"country"`
	Duration        string     `db:"duration" json:"duration"`
	FundingSource   string     `db:"funding_source" json:"funding_source"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at" json:"updated_at"`
}

func (f ForeignTraining) Values() []any {
	return []any{f.CourseName, f.InstitutionName, f.Country, f.Duration, f.FundingSource}
}

type ForeignTravel struct {
	ID        string     `db:"id" json:"id"`
	UserID    string     `db:"user_id" json:"-"`
	Purpose   string     `db:"purpose" json:"purpose"`
	Duration  string     `db:"duration" json:"duration"`
	Country   string     `db:"country" json:"country"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at"`
}

func (f ForeignTravel) Values() []any {
	return []any{f.Purpose, f.Duration, f.Country}
}

// ForeignPosting and LienDeputation share a shape but live in separate tables.
type ForeignPosting struct {
	ID              string     `db:"id" json:"id"`
	UserID          string     `db:"user_id" json:"-"`
	Designation     string     `db:"designation" json:"designation"`
	InstitutionName string     `db:"institution_name" json:"institution_name"`
	Country         string     `db:"country" json:"country"`
	Duration        string     `db:"duration" json:"duration"`
	FundingSource   string     `db:"funding_source" json:"funding_source"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at" json:"updated_at"`
}

func (f ForeignPosting) Values() []any {
	return []any{f.Designation, f.InstitutionName, f.Country, f.Duration, f.FundingSource}
}

type LienDeputation struct {
	ID              string     `db:"id" json:"id"`
	UserID          string     `db:"user_id" json:"-"`
	Designation     string     `db:"designation" json:"designation"`
	InstitutionName string     `db:"institution_name" json:"institution_name"`
	Country         string     `db:"country" json:"country"`
	Duration        string     `db:"duration" json:"duration"`
	FundingSource   string     `db:"funding_source" json:"funding_source"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at" json:"updated_at"`
}

func (l LienDeputation) Values() []any {
	return []any{l.Designation, l.InstitutionName, l.Country, l.Duration, l.FundingSource}
}

// Snapshot holds every record a user owns, as read for the biography form.
type Snapshot struct {
	Profile           *Profile                   `json:"profile"`
	Office            *OfficeInformation         `json:"office_information"`
	General           *GeneralInformation        `json:"general_information"`
	Marital           *MaritalInformation        `json:"marital_information"`
	Children          []ChildInformation         `json:"children_information"`
	Education         []EducationalQualification `json:"educational_qualifications"`
	DomesticTrainings []DomesticTraining         `json:"domestic_trainings"`
	ForeignTrainings  []ForeignTraining          `json:"foreign_trainings"`
	ForeignTravels    []ForeignTravel            `json:"foreign_travels"`
	ForeignPostings   []ForeignPosting           `json:"foreign_postings"`
	LienDeputations   []LienDeputation           `json:"lien_deputations"`
}
