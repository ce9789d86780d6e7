package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"swipe_server/models"
	"swipe_server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeAndValidate reads a JSON body into dst and runs its validate tags.
// On failure it writes the error response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &typeErr):
			utils.WriteErrors(w, http.StatusUnprocessableEntity, []models.ErrorDetail{{
				Code:    models.ErrorCodeValidation,
				Message: fmt.Sprintf("%s must be %s", typeErr.Field, typeErr.Type),
				Field:   typeErr.Field,
			}})
		case errors.Is(err, io.EOF):
			utils.WriteError(w, http.StatusBadRequest, models.ErrorCodeInvalidBody, "request body is empty")
		default:
			utils.WriteError(w, http.StatusBadRequest, models.ErrorCodeInvalidBody, "invalid request body")
		}
		return false
	}

	if err := validate.Struct(dst); err != nil {
		utils.WriteErrors(w, http.StatusUnprocessableEntity, validationDetails(err))
		return false
	}
	return true
}

func validationDetails(err error) []models.ErrorDetail {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []models.ErrorDetail{{Code: models.ErrorCodeValidation, Message: err.Error()}}
	}
	details := make([]models.ErrorDetail, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, models.ErrorDetail{
			Code:    models.ErrorCodeValidation,
			Message: describeFieldError(fe),
			Field:   fe.Field(),
		})
	}
	return details
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "uuid", "uuid_rfc4122":
		return fe.Field() + " must be a UUID"
	}
	return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
}

// parseUserID parses an identifier from a path or query value. On failure it
// writes the error response and returns false.
func parseUserID(w http.ResponseWriter, raw, field string) (uuid.UUID, bool) {
	if raw == "" {
		utils.WriteErrors(w, http.StatusUnprocessableEntity, []models.ErrorDetail{{
			Code: models.ErrorCodeValidation, Message: field + " is required", Field: field,
		}})
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.WriteErrors(w, http.StatusUnprocessableEntity, []models.ErrorDetail{{
			Code: models.ErrorCodeValidation, Message: field + " must be a UUID", Field: field,
		}})
		return uuid.Nil, false
	}
	return id, true
}
