package contract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MsgMobileNumber     = "Enter a valid 10-digit mobile number"
	MsgAtLeastOneField  = "Provide at least one field to update"
	MsgInvalidJSON      = "Invalid JSON body"
	MsgInvalidInput     = "Invalid input"
	MsgUnauthorized     = "Unauthorized"
	MsgInternal         = "Internal Server Error"
	MsgInvalidPlan      = "Invalid plan"
	MsgPlanTypeMismatch = "Plan type mismatch"
)

var mobilePattern = regexp.MustCompile(`^\d{10}$`)

// FieldError is the structured validation failure shared by server and client.
// It is also the 400 response body.
type FieldError struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// AsFieldError unwraps err into a *FieldError.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// IsMobileNumber reports whether s is exactly ten ASCII digits.
func IsMobileNumber(s string) bool {
	return mobilePattern.MatchString(s)
}

// checker is implemented by schemas with rules that span fields.
type checker interface {
	check() *FieldError
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names for validation errors
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return IsMobileNumber(fl.Field().String())
	})
}

// fieldMessages pins the user-facing message of fields whose wording is part of the
// contract, whatever rule failed.
var fieldMessages = map[string]string{
	"mobileNumber": MsgMobileNumber,
	"planId":       "Plan id must be a positive integer",
	"rechargeType": "Recharge type must be 'topup' or 'special'",
	"planType":     "Plan type must be 'topup' or 'special'",
	"type":         "Plan type must be 'topup' or 'special'",
	"activeOnly":   "activeOnly must be 'true' or 'false'",
	"date":         "Date must be a calendar date in YYYY-MM-DD format",
	"message":      "Message is required",
}

// Validate checks v against its validate tags and cross-field rules and returns the
// first violation as a *FieldError.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return toFieldError(verrs[0])
		}
		return &FieldError{Message: MsgInvalidInput}
	}
	if c, ok := v.(checker); ok {
		if fe := c.check(); fe != nil {
			return fe
		}
	}
	return nil
}

// Decode unmarshals a JSON payload into dst, mapping decoder failures to *FieldError.
// Unknown keys are ignored.
func Decode(raw []byte, dst any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return &FieldError{Message: MsgInvalidJSON}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field := typeErr.Field
			if msg, ok := fieldMessages[field]; ok {
				return &FieldError{Field: field, Message: msg}
			}
			return &FieldError{
				Field:   field,
				Message: fmt.Sprintf("Expected %s, received %s", kindName(typeErr.Type), typeErr.Value),
			}
		}
		return &FieldError{Message: MsgInvalidJSON}
	}
	return nil
}

// Parse decodes then validates.
func Parse(raw []byte, dst any) error {
	if err := Decode(raw, dst); err != nil {
		return err
	}
	return Validate(dst)
}

// ParseReader reads the whole body and parses it into dst.
func ParseReader(r io.Reader, dst any) error {
	if r == nil {
		return &FieldError{Message: MsgInvalidJSON}
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return &FieldError{Message: MsgInvalidJSON}
	}
	return Parse(raw, dst)
}

func toFieldError(fe validator.FieldError) *FieldError {
	field := fe.Field()
	if msg, ok := fieldMessages[field]; ok {
		return &FieldError{Field: field, Message: msg}
	}
	return &FieldError{Field: field, Message: tagMessage(fe)}
}

func tagMessage(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "datetime":
		return fmt.Sprintf("%s must match the format %s", field, param)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Ptr:
		return kindName(t.Elem())
	default:
		return "object"
	}
}
