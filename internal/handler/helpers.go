package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"jhris/internal/apierror"
	"jhris/internal/dto"
	"jhris/internal/middleware"
	"jhris/internal/model"
	"jhris/internal/security"
	"jhris/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gte=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Optional fields validate as their inner value; absent or null skips
	// every rule behind omitempty.
	validate.RegisterCustomTypeFunc(optionalValue[string], dto.Optional[string]{})
	validate.RegisterCustomTypeFunc(optionalValue[decimal.Decimal], dto.Optional[decimal.Decimal]{})
	validate.RegisterCustomTypeFunc(optionalValue[model.Gender], dto.Optional[model.Gender]{})
	validate.RegisterCustomTypeFunc(optionalValue[model.MaritalStatus], dto.Optional[model.MaritalStatus]{})

	// Report fields by their JSON / query names.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
}

func optionalValue[T any](field reflect.Value) interface{} {
	if o, ok := field.Interface().(dto.Optional[T]); ok && o.Value != nil {
		return *o.Value
	}
	return nil
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	return validateStruct(c, req)
}

// bindQuery binds query parameters (with their defaults) and validates them.
func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New("Invalid query parameters: "+err.Error()))
		return false
	}
	return validateStruct(c, req)
}

func validateStruct(c *gin.Context, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			_ = c.Error(err)
			return false
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid "+name))
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors onto status codes. Anything unknown is
// attached to the context for ErrorHandler to log and turn into a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, service.ErrDuplicateKey),
		errors.Is(err, service.ErrInvalidReference),
		errors.Is(err, service.ErrHierarchyCycle):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	case errors.Is(err, service.ErrDepartmentInUse):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		middleware.Unauthorized(c, err.Error())
	case errors.Is(err, security.ErrInvalidToken):
		middleware.Unauthorized(c, apierror.DetailBadCredentials)
	case errors.Is(err, service.ErrInactiveAccount):
		c.JSON(http.StatusBadRequest, apierror.New(apierror.DetailInactiveUser))
	case errors.Is(err, security.ErrPasswordTooLong):
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(map[string]string{"password": "max"}))
	default:
		_ = c.Error(err)
	}
}

// respondDeleted writes 204 for a removed row and 404 otherwise.
func respondDeleted(c *gin.Context, deleted bool, err error, notFound error) {
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, apierror.New(notFound.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
