package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	t.Setenv("BIODATA_PORT", "4444")
	t.Setenv("BIODATA_AUTOMIGRATE", "false")
	t.Setenv("BIODATA_TTL", "45s")
	t.Setenv("BIODATA_BROKEN", "forty")

	assert.Equal(t, "fallback", GetString("BIODATA_MISSING", "fallback"))
	assert.Equal(t, 4444, GetInt("BIODATA_PORT", 1))
	assert.False(t, GetBool("BIODATA_AUTOMIGRATE", true))
	assert.Equal(t, 45*time.Second, GetDuration("BIODATA_TTL", time.Minute))
	assert.Equal(t, time.Minute, GetDuration("BIODATA_MISSING", time.Minute))

	assert.Panics(t, func() { GetInt("BIODATA_BROKEN", 0) })
}
