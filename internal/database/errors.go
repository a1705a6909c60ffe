package database

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// uniqueViolation reports whether err is a unique constraint failure and
// returns the constraint (postgres) or column list (sqlite) it names.
func uniqueViolation(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23505" {
			return pqErr.Constraint + " " + pqErr.Message, true
		}
		return "", false
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY ||
			strings.Contains(sqliteErr.Error(), "UNIQUE constraint failed") {
			return sqliteErr.Error(), true
		}
		return "", false
	}

	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return err.Error(), true
	}
	return "", false
}

// mapUnique translates a unique violation on one of the given columns into
// the matching domain error. Unmatched errors are returned unchanged.
func mapUnique(err error, byColumn map[string]error) error {
	detail, ok := uniqueViolation(err)
	if !ok {
		return err
	}
	for column, domainErr := range byColumn {
		if strings.Contains(detail, column) {
			return domainErr
		}
	}
	return err
}
