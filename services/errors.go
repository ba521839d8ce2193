package services

import (
	"fmt"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Kinds of failure the HTTP layer knows how to map.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

// Error carries the client-facing message next to its kind.
type Error struct {
	Kind    error
	Msg     string
	Details map[string]string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func notFound(msg string) error {
	return &Error{Kind: ErrNotFound, Msg: msg}
}

func invalid(msg string) error {
	return &Error{Kind: ErrValidation, Msg: msg}
}

func invalidf(format string, args ...any) error {
	return invalid(fmt.Sprintf(format, args...))
}

func conflict(msg string) error {
	return &Error{Kind: ErrConflict, Msg: msg}
}

// isDuplicateKey recognises unique-index violations from every supported driver.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *mysqldriver.MySQLError
	if errors.As(err, &me) && me.Number == 1062 {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
