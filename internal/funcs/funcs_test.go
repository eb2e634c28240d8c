package funcs

import (
	"bytes"
	"testing"
	"text/template"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTemplateFuncs(t *testing.T) {
	tmpl, err := template.New("t").Funcs(TemplateFuncs).Parse(`{{incr .I}} {{.T | formatTime "2006-01-02"}} {{join .S ", "}}`)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]any{
		"I": 0,
		"T": time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC),
		"S": []string{"a", "b"},
	})
	require.NoError(t, err)
	require.Equal(t, "1 2024-03-09 a, b", buf.String())
}
