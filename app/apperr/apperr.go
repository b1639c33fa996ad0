// Package apperr defines the closed set of error variants the API can surface
// and the single mapping from variant to HTTP status.
package apperr

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindAuth
	KindForbidden
	KindNotFound
	KindStore
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }
func Conflict(msg string) *Error   { return &Error{Kind: KindConflict, Message: msg} }
func Auth(msg string) *Error       { return &Error{Kind: KindAuth, Message: msg} }
func Forbidden(msg string) *Error  { return &Error{Kind: KindForbidden, Message: msg} }
func NotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Message: msg} }
func Store(err error) *Error       { return &Error{Kind: KindStore, Message: "storage failure", Err: err} }

var statusByKind = map[Kind]int{
	KindValidation: http.StatusBadRequest,
	KindConflict:   http.StatusBadRequest,
	KindAuth:       http.StatusUnauthorized,
	KindForbidden:  http.StatusForbidden,
	KindNotFound:   http.StatusNotFound,
	KindStore:      http.StatusInternalServerError,
}

// HTTPStatus maps an error to its response status. Untagged errors are
// treated as storage failures.
func HTTPStatus(err error) int {
	if s, ok := statusByKind[KindOf(err)]; ok {
		return s
	}
	return http.StatusInternalServerError
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStore
}

// FromGorm converts a store-layer error into a tagged variant.
func FromGorm(err error, notFoundMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound(notFoundMsg)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Conflict("duplicate entry")
	}
	return Store(err)
}
