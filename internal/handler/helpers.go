package handler

import (
	"net/http"
	"reflect"

	"productstore/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// requireJSON enforces the Content-Type: application/json contract.
// Returns false and writes the 415 response if the media type is missing or
// wrong — the caller should return immediately.
func requireJSON(c *gin.Context) bool {
	if ct := c.ContentType(); ct != "application/json" {
		log.Error().Str("content_type", ct).Msg("invalid content type")
		c.JSON(http.StatusUnsupportedMediaType, apierror.New("Content-Type must be application/json"))
		return false
	}
	return true
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the 400 response if binding or validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}
