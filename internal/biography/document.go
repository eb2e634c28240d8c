// Package biography turns a record snapshot into the fixed, bilingual
// "E-Job Biography" document and renders it as printable HTML.
package biography

import (
	"strconv"
	"strings"
	"time"

	"github.com/cradoe/biodata/internal/locale"
	"github.com/cradoe/biodata/internal/models"
)

const (
	// Blank stands in for a missing field value.
	Blank = "----------------"
	// BlankCell stands in for a missing table cell.
	BlankCell = "-"

	unknownAge = "---"
)

type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Table struct {
	Title   string     `json:"title,omitempty"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
	Empty   string     `json:"empty"`
}

type Section struct {
	Number string  `json:"number"`
	Title  string  `json:"title,omitempty"`
	Fields []Field `json:"fields,omitempty"`
	Tables []Table `json:"tables,omitempty"`
}

type Document struct {
	Lang     locale.Lang `json:"lang"`
	Annexure string      `json:"annexure"`
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Sections []Section   `json:"sections"`
}

// Build lays out snap in lang. today is used to derive the age of children
// without an explicit age.
func Build(snap *models.Snapshot, lang locale.Lang, today time.Time) Document {
	if snap == nil {
		snap = &models.Snapshot{}
	}
	b := builder{lang: lang, today: today}

	return Document{
		Lang:     lang,
		Annexure: b.t("bio_annexure"),
		Title:    b.t("bio_title"),
		Subtitle: b.t("bio_subtitle"),
		Sections: []Section{
			b.official(snap.Office),
			b.general(snap.Profile, snap.General),
			b.marital(snap.Marital),
			b.children(snap.Children),
			b.education(snap.Education),
			b.trainings(snap),
		},
	}
}

type builder struct {
	lang  locale.Lang
	today time.Time
}

func (b builder) t(key string) string {
	return locale.T(b.lang, key)
}

func (b builder) number(n int) string {
	if b.lang == locale.BN {
		return locale.Digits(b.lang, strconv.Itoa(n)) + "।"
	}
	return strconv.Itoa(n) + "."
}

func (b builder) date(d *models.Date) string {
	if d == nil || d.IsZero() {
		return Blank
	}
	return locale.FormatDate(b.lang, d.Time)
}

func (b builder) maritalStatus(status, missing string) string {
	if status == "" {
		return missing
	}
	if label, ok := locale.Lookup(b.lang, status); ok {
		return label
	}
	return status
}

func (b builder) official(o *models.OfficeInformation) Section {
	if o == nil {
		o = &models.OfficeInformation{}
	}

	birthPlace := strings.Join([]string{
		or(o.BirthPlace),
		b.t("s1_f_village"), or(o.Village),
		b.t("s1_f_upazila"), or(o.Upazila),
		b.t("s1_f_district"), or(o.District),
	}, " ")

	return Section{
		Number: b.number(1),
		Title:  b.t("bio_section1"),
		Fields: []Field{
			{b.t("s1_a"), or(o.Ministry)},
			{b.t("s1_b"), or(o.Directorate)},
			{b.t("s1_c"), or(o.IdentityNumber)},
			{b.t("s1_d"), or(o.NID)},
			{b.t("s1_e"), or(o.TIN)},
			{b.t("s1_f"), birthPlace},
		},
	}
}

func (b builder) general(p *models.Profile, g *models.GeneralInformation) Section {
	if p == nil {
		p = &models.Profile{}
	}
	if g == nil {
		g = &models.GeneralInformation{}
	}

	return Section{
		Number: b.number(2),
		Title:  b.t("bio_section2"),
		Fields: []Field{
			{b.t("s2_a"), or(p.FullName)},
			{b.t("s2_b"), b.date(p.DateOfBirth)},
			{b.t("s2_c"), or(g.FatherName)},
			{b.t("s2_d"), or(g.MotherName)},
			{b.t("s2_e"), or(p.AddressLine1)},
			{b.t("s2_f"), or(g.CurrentAddress)},
			{b.t("s2_g"), or(p.District)},
			{b.t("s2_h"), b.date(p.JoiningDate)},
			{b.t("s2_i"), b.date(g.CurrentPositionJoiningDate)},
			{b.t("s2_j"), or(p.Designation) + ", " + or(g.WorkplaceAddress) + ", " + or(g.WorkplacePhone)},
			{b.t("s2_k"), or(g.ConfirmationOrderNumber) + ", " + b.date(g.ConfirmationOrderDate)},
			{b.t("s2_l"), or(g.BloodGroup)},
			{b.t("s2_m"), or(g.SpecialIllnessInfo)},
			{b.t("s2_n"), or(p.Phone)},
			{b.t("s2_n_mobile"), or(g.MobilePhone)},
			{b.t("s2_n_email"), or(p.Email)},
		},
	}
}

// marital details the first spouse; any further spouses are listed by name.
func (b builder) marital(m *models.MaritalInformation) Section {
	status := ""
	var spouses []models.Spouse
	if m != nil {
		status = m.MaritalStatus
		spouses = m.Spouses
	}

	first := models.Spouse{}
	if len(spouses) > 0 {
		first = spouses[0]
	}

	fields := []Field{
		{b.t("s3_a"), b.maritalStatus(status, Blank)},
		{b.t("s3_b"), or(first.Name)},
		{b.t("s3_c"), or(first.Occupation)},
		{b.t("s3_d"), or(first.NID)},
		{b.t("s3_e"), or(first.TIN)},
		{b.t("s3_f"), or(first.District)},
		{b.t("s3_g"), or(first.EmployeeID)},
		{b.t("s3_h"), or(first.Designation) + ", " + or(first.OfficeAddress) + ", " + or(first.OfficePhone)},
	}

	switch {
	case len(spouses) == 0:
		fields = append(fields, Field{b.t("s3_i"), Blank})
	case len(spouses) > 1:
		names := make([]string, 0, len(spouses)-1)
		for _, s := range spouses[1:] {
			names = append(names, s.Name)
		}
		fields = append(fields, Field{b.t("s3_i"), or(strings.Trim(strings.Join(names, ", "), ", "))})
	}

	return Section{
		Number: b.number(3),
		Title:  b.t("bio_section3"),
		Fields: fields,
	}
}

func (b builder) children(children []models.ChildInformation) Section {
	table := b.table("",
		"s4_serial", "s4_name", "s4_dob", "s4_gender", "s4_age", "s4_marital", "s4_special")

	for i, c := range children {
		table.Rows = append(table.Rows, []string{
			b.serial(i),
			cell(c.FullName),
			b.date(c.BirthDate),
			b.gender(c.Gender),
			b.age(c),
			b.maritalStatus(c.MaritalStatus, BlankCell),
			cell(c.SpecialStatus),
		})
	}

	return Section{
		Number: b.number(4),
		Title:  b.t("bio_section4"),
		Tables: []Table{table},
	}
}

func (b builder) education(rows []models.EducationalQualification) Section {
	table := b.table("",
		"s5_serial", "s5_degree", "s5_institution", "s5_board", "s5_subject", "s5_year", "s5_division")

	for i, e := range rows {
		year := BlankCell
		if e.PassingYear != nil && *e.PassingYear != 0 {
			year = locale.Digits(b.lang, strconv.Itoa(*e.PassingYear))
		}
		table.Rows = append(table.Rows, []string{
			b.serial(i),
			cell(e.DegreeTitle),
			cell(e.InstitutionName),
			cell(e.BoardUniversity),
			cell(e.Subject),
			year,
			cell(e.ResultDivision),
		})
	}

	return Section{
		Number: b.number(5),
		Title:  b.t("bio_section5"),
		Tables: []Table{table},
	}
}

func (b builder) trainings(snap *models.Snapshot) Section {
	domestic := b.table(b.t("s6a_title"),
		"s6a_serial", "s6a_course", "s6a_institution", "s6a_duration", "s6a_funding")
	for i, r := range snap.DomesticTrainings {
		domestic.Rows = append(domestic.Rows, []string{
			b.serial(i), cell(r.CourseName), cell(r.InstitutionName), cell(r.Duration), cell(r.FundingSource),
		})
	}

	foreign := b.table(b.t("s6b_title"),
		"s6a_serial", "s6a_course", "s6b_institution_country", "s6a_duration", "s6a_funding")
	for i, r := range snap.ForeignTrainings {
		foreign.Rows = append(foreign.Rows, []string{
			b.serial(i), cell(r.CourseName), cell(joinPresent(r.InstitutionName, r.Country)), cell(r.Duration), cell(r.FundingSource),
		})
	}

	travel := b.table(b.t("s6c_title"),
		"s6a_serial", "s6c_purpose", "s6c_duration", "s6c_country")
	for i, r := range snap.ForeignTravels {
		travel.Rows = append(travel.Rows, []string{
			b.serial(i), cell(r.Purpose), cell(r.Duration), cell(r.Country),
		})
	}

	posting := b.table(b.t("s6d_title"),
		"s6a_serial", "s6d_designation", "s6d_institution", "s6d_country", "s6d_duration", "s6d_funding")
	for i, r := range snap.ForeignPostings {
		posting.Rows = append(posting.Rows, []string{
			b.serial(i), cell(r.Designation), cell(r.InstitutionName), cell(r.Country), cell(r.Duration), cell(r.FundingSource),
		})
	}

	lien := b.table(b.t("s6e_title"),
		"s6a_serial", "s6d_designation", "s6d_institution", "s6d_country", "s6d_duration", "s6d_funding")
	for i, r := range snap.LienDeputations {
		lien.Rows = append(lien.Rows, []string{
			b.serial(i), cell(r.Designation), cell(r.InstitutionName), cell(r.Country), cell(r.Duration), cell(r.FundingSource),
		})
	}

	return Section{
		Number: b.number(6),
		Tables: []Table{domestic, foreign, travel, posting, lien},
	}
}

func (b builder) table(title string, headerKeys ...string) Table {
	headers := make([]string, len(headerKeys))
	for i, k := range headerKeys {
		headers[i] = b.t(k)
	}
	return Table{
		Title:   title,
		Headers: headers,
		Rows:    [][]string{},
		Empty:   b.t("bio_no_data"),
	}
}

func (b builder) serial(i int) string {
	return locale.Digits(b.lang, strconv.Itoa(i+1))
}

func (b builder) gender(g string) string {
	if g == "male" || g == "female" {
		return b.t(g)
	}
	return cell(g)
}

// age prefers the stored age; otherwise it is derived from the birth date.
func (b builder) age(c models.ChildInformation) string {
	if c.Age != nil && *c.Age > 0 {
		return locale.Digits(b.lang, strconv.Itoa(*c.Age))
	}
	if c.BirthDate == nil || c.BirthDate.IsZero() {
		return unknownAge
	}
	return locale.Digits(b.lang, strconv.Itoa(AgeOn(c.BirthDate.Time, b.today)))
}

// AgeOn returns the completed years between birth and today.
func AgeOn(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}

func or(s string) string {
	if strings.TrimSpace(s) == "" {
		return Blank
	}
	return s
}

func cell(s string) string {
	if strings.TrimSpace(s) == "" {
		return BlankCell
	}
	return s
}

func joinPresent(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
