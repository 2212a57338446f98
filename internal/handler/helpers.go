package handler

import (
	"net/http"
	"reflect"

	"github.com/campneus/auditoria-campneus/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so validator tags like min=0
	// work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// On failure it writes the 400 response listing every violated field and
// returns false; the caller must return immediately.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var fields []apierror.FieldError
		for _, fe := range err.(validator.ValidationErrors) {
			fields = append(fields, apierror.FieldError{
				Field:   fe.Field(),
				Message: fe.Tag(),
			})
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps a service-layer error to its HTTP status. Unrecognized
// errors become an opaque 500; the real cause goes through the error-handler
// middleware log, never to the client.
func respondError(c *gin.Context, err error) {
	status := apierror.Status(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.JSON(status, apierror.New("erro interno do servidor"))
		return
	}
	c.JSON(status, apierror.New(err.Error()))
}

// queryUUID reads an optional UUID query parameter. Absent is fine (empty
// string); a malformed value writes the 400 response and returns false so the
// bad literal never reaches a uuid cast in SQL.
func queryUUID(c *gin.Context, name string) (string, bool) {
	v := c.Query(name)
	if v == "" {
		return "", true
	}
	if _, err := uuid.Parse(v); err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewValidation([]apierror.FieldError{
			{Field: name, Message: "uuid"},
		}))
		return "", false
	}
	return v, true
}

// pathUUID parses the :id path parameter. On failure it writes the 404
// response and returns false.
func pathUUID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("registro não encontrado"))
		return uuid.Nil, false
	}
	return id, true
}
