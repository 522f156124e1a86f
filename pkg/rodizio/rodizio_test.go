package rodizio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayForPlate(t *testing.T) {
	tests := []struct {
		plate string
		want  string
	}{
		{"ABC1233", Tuesday},
		{"ABC1043", Tuesday},
		{"ABC1234", Tuesday},
		{"ABC1201", Monday},
		{"ABC5D23", Monday},
		{"XYZ9856", Wednesday},
		{"XYZ9877", Thursday},
		{"XYZ9890", Friday},
		{"XYZ9D9A", Friday},
		{"ABCDEFG", None},
		{"ABC12", None},
		{"", None},
	}

	for _, tt := range tests {
		t.Run(tt.plate, func(t *testing.T) {
			assert.Equal(t, tt.want, DayForPlate(tt.plate))
		})
	}
}

func TestIsRestrictedOn(t *testing.T) {
	tuesday := time.Date(2024, time.June, 4, 10, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, time.June, 2, 10, 0, 0, 0, time.UTC)

	assert.True(t, IsRestrictedOn(Tuesday, tuesday))
	assert.False(t, IsRestrictedOn(Monday, tuesday))
	assert.False(t, IsRestrictedOn(None, sunday))
	assert.False(t, IsRestrictedOn(Monday, sunday))
}
