package repositories

import (
	"database/sql"

	"github.com/volatiletech/null/v8"
)

func toNullString(s null.String) sql.NullString {
	return sql.NullString{String: s.String, Valid: s.Valid}
}

func fromNullString(s sql.NullString) null.String {
	return null.NewString(s.String, s.Valid)
}

func fromNullTime(t sql.NullTime) null.Time {
	return null.NewTime(t.Time, t.Valid)
}

func optionalString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
