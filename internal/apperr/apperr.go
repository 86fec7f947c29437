// Package apperr defines the error kinds the gateway surfaces to clients and
// their HTTP mapping. Everything returned to a caller goes through these types
// so internal detail (driver errors, stack traces) never leaks by accident.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation is a malformed or out-of-bound input field. HTTP 422.
type Validation struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (e *Validation) Error() string { return e.Detail }

// InvalidArgument is a malformed identifier token or an update the store
// rejected. HTTP 400.
type InvalidArgument struct {
	Detail string `json:"detail"`
}

func (e *InvalidArgument) Error() string { return e.Detail }

// Unavailable means the document store is not initialized or reachable. HTTP 500.
type Unavailable struct {
	Detail string `json:"detail"`
}

func (e *Unavailable) Error() string { return e.Detail }

func NewValidation(fields map[string]string) *Validation {
	return &Validation{Detail: "validation failed", Fields: fields}
}

func NewInvalidArgument(format string, args ...any) *InvalidArgument {
	return &InvalidArgument{Detail: fmt.Sprintf(format, args...)}
}

func NewUnavailable(detail string) *Unavailable {
	return &Unavailable{Detail: detail}
}

// FromFieldErrors converts validator.ValidationErrors into the canonical
// field->message map, keyed by the struct namespace below the payload root
// (e.g. "price", "items[1].sku").
func FromFieldErrors(err error) *Validation {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &Validation{Detail: err.Error()}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		ns := fe.Namespace()
		if i := strings.Index(ns, "."); i >= 0 {
			ns = ns[i+1:]
		}
		key := strings.ToLower(ns)
		switch fe.Tag() {
		case "required":
			fields[key] = "field is required"
		case "gte":
			fields[key] = "must be greater than or equal to " + fe.Param()
		case "lte":
			fields[key] = "must be less than or equal to " + fe.Param()
		default:
			fields[key] = "failed on " + fe.Tag()
		}
	}
	return NewValidation(fields)
}

// Status maps an error to its HTTP status code.
func Status(err error) int {
	var (
		v  *Validation
		ia *InvalidArgument
		un *Unavailable
	)
	switch {
	case errors.As(err, &v):
		return http.StatusUnprocessableEntity
	case errors.As(err, &ia):
		return http.StatusBadRequest
	case errors.As(err, &un):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
