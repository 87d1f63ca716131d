package helpers

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
)

// FormatValidationErrors turns validator errors into field -> messages,
// keyed by the field's json name. overrides maps "field.tag" to a fixed
// message.
func FormatValidationErrors(errs validator.ValidationErrors, overrides map[string]string) map[string][]string {
	errorMessages := make(map[string][]string)
	for _, err := range errs {
		field := err.Field()
		if msg, ok := overrides[field+"."+err.Tag()]; ok {
			errorMessages[field] = append(errorMessages[field], msg)
			continue
		}

		var msg string
		switch err.Tag() {
		case "required":
			msg = "This field is required."
		case "email", "simple_email":
			msg = "Enter a valid email address."
		case "numeric":
			msg = "A valid number is required."
		case "min":
			msg = fmt.Sprintf("Ensure this field has at least %s characters.", err.Param())
		case "max":
			msg = fmt.Sprintf("Ensure this field has no more than %s characters.", err.Param())
		case "oneof":
			msg = fmt.Sprintf("Must be one of: %s.", strings.ReplaceAll(err.Param(), " ", ", "))
		default:
			msg = fmt.Sprintf("Invalid value for %s.", field)
		}
		errorMessages[field] = append(errorMessages[field], msg)
	}
	return errorMessages
}

// JSONFieldName reports a struct field under its json name, for
// validator.RegisterTagNameFunc.
func JSONFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

// GenerateSlug makes a URL-safe slug, transliterating non-Latin scripts.
func GenerateSlug(s string) string {
	return slug.Make(strings.TrimSpace(s))
}

func IsValidSlug(s string) bool {
	return slug.IsSlug(s)
}

// ParseBoolParam accepts true/false/1/0 in the usual spellings. Anything else
// yields nil, meaning "no filter".
func ParseBoolParam(s string) *bool {
	switch strings.TrimSpace(s) {
	case "true", "True", "TRUE", "1":
		v := true
		return &v
	case "false", "False", "FALSE", "0":
		v := false
		return &v
	}
	return nil
}

// ParsePage reads a 1-based page number; missing or invalid input is page 1.
// Numbers too large for an int clamp to math.MaxInt so they still land past
// the last page.
func ParsePage(s string) int {
	page, err := strconv.Atoi(strings.TrimSpace(s))
	if errors.Is(err, strconv.ErrRange) && page > 0 {
		return math.MaxInt
	}
	if err != nil || page < 1 {
		return 1
	}
	return page
}
