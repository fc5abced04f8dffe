package repos

import (
	"database/sql"
	"errors"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Sentinel errors returned by the data-access layer. Handlers and the HTTP
// error translator match on these instead of driver-specific error codes, so
// the mapping survives a storage-engine change.
var (
	ErrNotFound         = errors.New("item not found")
	ErrAlreadyExists    = errors.New("item already exists")
	ErrInvalidReference = errors.New("invalid reference")
	ErrConstraint       = errors.New("constraint violation")
)

// translate converts driver errors into the sentinels above. Unrecognized
// errors pass through untouched.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return ErrAlreadyExists
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return ErrInvalidReference
		}
		// Primary result code lives in the low byte of extended codes.
		if se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
			return ErrConstraint
		}
	}
	return err
}
