package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/ElenaG518/wdconnect-server/internal/schemas"
	"github.com/ElenaG518/wdconnect-server/internal/utils"
)

// fieldMessager lets a request type supply the user-facing message for a
// failed field.
type fieldMessager interface {
	ValidationMessage(field string) string
}

var invalidBody = &schemas.ErrorListDTO{Errors: []schemas.FieldError{{Msg: "Invalid request body"}}}

// ValidateAndSanitizeStruct binds the JSON request body into a fresh copy of
// the given template struct, sanitizes its string fields, validates it, and
// stores the result in the context for the handler. Validation failures
// produce the itemized {"errors":[...]} response.
func ValidateAndSanitizeStruct(template interface{}) gin.HandlerFunc {
	templateType := reflect.TypeOf(template).Elem()

	return func(c *gin.Context) {
		obj := reflect.New(templateType).Interface()

		if err := c.ShouldBindJSON(obj); err != nil {
			utils.WriteAndLogError(c, invalidBody, http.StatusBadRequest, err)
			c.Abort()
			return
		}

		v := utils.GetValidator()
		if err := v.SanitizeData(obj); err != nil {
			utils.WriteAndLogError(c, invalidBody, http.StatusBadRequest, err)
			c.Abort()
			return
		}

		if err := v.Validate.Struct(obj); err != nil {
			var validationErrors validator.ValidationErrors
			if !errors.As(err, &validationErrors) {
				utils.WriteAndLogError(c, invalidBody, http.StatusBadRequest, err)
				c.Abort()
				return
			}

			utils.WriteAndLogError(c, itemize(obj, validationErrors), http.StatusBadRequest, err)
			c.Abort()
			return
		}

		c.Set(utils.SanitizedPayloadKey.String(), obj)
		c.Next()
	}
}

// itemize maps each failed field to its request-type-specific message.
func itemize(obj interface{}, validationErrors validator.ValidationErrors) *schemas.ErrorListDTO {
	messager, _ := obj.(fieldMessager)

	fieldErrors := make([]schemas.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msg := "Invalid value"
		if messager != nil {
			msg = messager.ValidationMessage(fe.Field())
		}
		fieldErrors = append(fieldErrors, schemas.FieldError{
			Msg:   msg,
			Param: strings.ToLower(fe.Field()),
		})
	}

	return &schemas.ErrorListDTO{Errors: fieldErrors}
}
