package util

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ops-backend/models"
)

func TestValidateStruct_Valid(t *testing.T) {
	start := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	payload := models.CalendarEventCreatePayload{
		Title:          "Retro",
		StartTime:      start,
		EndTime:        start.Add(time.Hour),
		EventType:      "startup",
		RecurrenceRule: "FREQ=WEEKLY;INTERVAL=2;BYDAY=FR",
	}
	assert.Nil(t, ValidateStruct(payload))
}

func TestValidateStruct_CustomTags(t *testing.T) {
	start := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	errs := ValidateStruct(models.CalendarEventCreatePayload{
		Title:          "Retro",
		StartTime:      start,
		EndTime:        start.Add(-time.Hour),
		EventType:      "startup",
		RecurrenceRule: "FREQ=SOMETIMES",
	})

	tags := map[string]string{}
	for _, e := range errs {
		tags[e.Field] = e.Tag
		assert.NotEmpty(t, e.Msg)
	}
	assert.Equal(t, map[string]string{"EndTime": "gtfield", "RecurrenceRule": "rrule"}, tags)
}

func TestValidateStruct_Role(t *testing.T) {
	errs := ValidateStruct(models.UserRegisterPayload{
		Username: "alice",
		Password: "long-enough",
		Name:     "Alice",
		Role:     "Wizard",
		Email:    "alice@example.com",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "Role", errs[0].Field)
	assert.Equal(t, "Field 'Role' is not a known role.", errs[0].Msg)
}

func TestGenerateBase64Key(t *testing.T) {
	key, err := GenerateBase64Key()
	require.NoError(t, err)

	raw, err := base64.URLEncoding.DecodeString(key)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	other, err := GenerateBase64Key()
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}
