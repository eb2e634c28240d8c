package funcs

import (
	"strings"
	"time"
)

// TemplateFuncs is shared by the mail templates and the printable biography.
var TemplateFuncs = map[string]any{
	"now":        time.Now,
	"formatTime": formatTime,
	"join":       strings.Join,
	"incr":       incr,
	"upper":      strings.ToUpper,
}

func formatTime(format string, t time.Time) string {
	return t.Format(format)
}

func incr(i int) int {
	return i + 1
}
