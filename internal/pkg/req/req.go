/*
Package req provides helper functions for HTTP request parsing and data binding.

It decodes strictly-formed JSON bodies and validates the bound structs with
go-playground/validator struct tags.
*/
package req

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"meetgate/internal/pkg/errs"
)

// MaxJSONBodySize limits the size of JSON request bodies (16 KB).
const MaxJSONBodySize int64 = 16 << 10

var validate = validator.New(validator.WithRequiredStructEnabled())

// BindJSON binds the JSON body of r into dst and validates dst's `validate` tags.
// The body must be a single JSON value without unknown fields.
func BindJSON(w http.ResponseWriter, r *http.Request, dst any) *errs.CustomError {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxJSONBodySize)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return errs.NewError(errs.ErrRequestEntityTooLarge)
		}
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrExtraContentInBody)
	}

	return Validate(dst)
}

// Validate checks the `validate` struct tags of v.
func Validate(v any) *errs.CustomError {
	if err := validate.Struct(v); err != nil {
		return errs.NewError(errs.ErrInvalidParams)
	}
	return nil
}
