package handlers

import (
	"errors"

	"github.com/cgcym1234/authserver/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindError maps a binding failure to the domain validation codes. Validation
// runs before any persistence attempt.
func bindError(err error) *apperrors.APIError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Tag() {
			case "email":
				return apperrors.New(apperrors.CodeEmailInvalid)
			case "userpassword":
				return apperrors.New(apperrors.CodePasswordInvalid)
			}
		}
	}
	return apperrors.Newf(apperrors.CodeCustom, "invalid request body")
}

// bindJSON binds and validates the JSON body, writing the failure envelope
// itself. Returns false when the request was rejected.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		Fail(c, bindError(err))
		return false
	}
	return true
}

// bindQuery binds and validates query parameters.
func bindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		Fail(c, bindError(err))
		return false
	}
	return true
}
