package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "valid lowercase", username: "alice"},
		{name: "valid mixed", username: "Alice_42"},
		{name: "empty", username: "", wantErr: true},
		{name: "too short", username: "ab", wantErr: true},
		{name: "too long", username: strings.Repeat("a", 33), wantErr: true},
		{name: "forbidden characters", username: "alice!", wantErr: true},
		{name: "spaces", username: "alice smith", wantErr: true},
		{name: "cyrillic", username: "алиса", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("long enough pass"))
}

func TestValidateHabitName(t *testing.T) {
	assert.Error(t, ValidateHabitName(""))
	assert.Error(t, ValidateHabitName("   "))
	assert.Error(t, ValidateHabitName(strings.Repeat("x", 101)))
	assert.NoError(t, ValidateHabitName("Morning run"))
}

func TestValidateColor(t *testing.T) {
	assert.NoError(t, ValidateColor(""))
	assert.NoError(t, ValidateColor("#1a2B3c"))
	assert.Error(t, ValidateColor("red"))
	assert.Error(t, ValidateColor("#12345"))
	assert.Error(t, ValidateColor("#12345g"))
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2026-08-29"))
	assert.Error(t, ValidateDate("29.08.2026"))
	assert.Error(t, ValidateDate("2026-13-01"))
	assert.Error(t, ValidateDate("today"))
}
