package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationErrorResponse is the 422 envelope: a message plus per-field
// message lists keyed by the wire field name.
type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ServerErrorResponse struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func SendMessage(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}

func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, MessageResponse{Message: message})
}

func SendConflict(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, MessageResponse{Message: message})
}

// SendValidationError translates a binding error into the 422 envelope.
// validator.ValidationErrors become field-level messages; anything else (bad
// JSON, type mismatches) is reported under "body".
func SendValidationError(c *gin.Context, err error) {
	fieldErrors := make(map[string][]string)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			field := snakeCase(fe.Field())
			fieldErrors[field] = append(fieldErrors[field], validationMessage(field, fe))
		}
	} else {
		fieldErrors["body"] = []string{err.Error()}
	}

	c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
		Message: "Validation failed",
		Errors:  fieldErrors,
	})
}

// SendFieldError reports a single failed rule (uniqueness, file checks) in
// the same 422 shape as binding failures.
func SendFieldError(c *gin.Context, field, message string) {
	c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
		Message: "Validation failed",
		Errors:  map[string][]string{field: {message}},
	})
}

// SendServerError answers 500 with {message, type}. The underlying message is
// exposed only in debug mode.
func SendServerError(c *gin.Context, err error, debug bool) {
	message := "Server Error"
	if debug && err != nil {
		message = err.Error()
	}
	c.JSON(http.StatusInternalServerError, ServerErrorResponse{
		Message: message,
		Type:    fmt.Sprintf("%T", err),
	})
}

func validationMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", field)
	case "min":
		return fmt.Sprintf("The %s field must be at least %s.", field, fe.Param())
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s.", field, fe.Param())
	case "gte":
		return fmt.Sprintf("The %s field must be at least %s.", field, fe.Param())
	case "lte":
		return fmt.Sprintf("The %s field must not be greater than %s.", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("The %s field does not match the format %s.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	case "numeric":
		return fmt.Sprintf("The %s field must be a number.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}

// snakeCase maps a Go struct field name to its wire name (LocAddress ->
// loc_address, ActID -> act_id).
func snakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (i > 0 && nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
