package validation

import (
	"database/sql"
	"strconv"

	"github.com/google/uuid"
)

func ParseStringToInt64(str string) (int64, error) {
	if str == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func ParseStringToUUID(str string) (uuid.UUID, error) {
	return uuid.Parse(str)
}

func GetStringFromNull(nullString sql.NullString) string {
	if nullString.Valid {
		return nullString.String
	}
	return ""
}

func NullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
