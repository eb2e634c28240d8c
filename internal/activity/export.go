package activity

import (
	"time"

	"github.com/cradoe/biodata/internal/locale"
	"github.com/cradoe/biodata/internal/models"
)

// ExportRow is one spreadsheet line of the activity log.
type ExportRow struct {
	Action      string
	Description string
	Type        string
	Time        string
}

// ExportRows projects entries for download. The action column keeps the raw
// action type; the other columns are localized.
func ExportRows(entries []models.ActivityEntry, lang locale.Lang, loc *time.Location) []ExportRow {
	rows := make([]ExportRow, len(entries))
	for i, e := range entries {
		rows[i] = ExportRow{
			Action:      string(e.ActionType),
			Description: e.Description,
			Type:        EntityLabel(lang, e.EntityType),
			Time:        locale.FormatTimestamp(lang, e.Timestamp, loc),
		}
	}
	return rows
}

// ExportFilename names the download after the day it was produced.
func ExportFilename(now time.Time) string {
	return "activity_logs_" + now.UTC().Format(models.DateLayout) + ".xlsx"
}
