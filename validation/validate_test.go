package validation

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("Senha@123"))
	assert.False(t, ValidatePassword("Se@1"))
	assert.False(t, ValidatePassword("senha@123"))
	assert.False(t, ValidatePassword("Senha@abc"))
	assert.False(t, ValidatePassword("Senha1234"))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("ana@logiflow.com.br"))
	assert.False(t, ValidateEmail("ana"))
	assert.False(t, ValidateEmail("Ana <ana@logiflow.com.br>"))
	assert.False(t, ValidateEmail(""))
}

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "ABC1234", NormalizePlate("abc-1234"))
	assert.Equal(t, "BRA2E19", NormalizePlate(" bra 2e19 "))
}

func TestValidatePlate(t *testing.T) {
	tests := map[string]bool{
		"ABC1234":  true,
		"BRA2E19":  true,
		"AB12345":  false,
		"ABC12345": false,
		"ABC1D2E":  false,
		"":         false,
	}
	for plate, want := range tests {
		assert.Equal(t, want, ValidatePlate(plate), plate)
	}
}

func TestConvert(t *testing.T) {
	id, err := ParseStringToInt64("")
	require.NoError(t, err)
	assert.Zero(t, id)

	id, err = ParseStringToInt64("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseStringToInt64("x")
	assert.Error(t, err)

	assert.Equal(t, "", GetStringFromNull(sql.NullString{}))
	assert.Equal(t, sql.NullString{String: "a", Valid: true}, NullString("a"))
	assert.False(t, NullString("").Valid)
}
