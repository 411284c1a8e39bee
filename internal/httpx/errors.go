// Package httpx maps the service error taxonomy onto JSON responses.
package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrExpiredCode  = errors.New("expired code")
	ErrInvalidCode  = errors.New("code is not valid")
	ErrRateLimited  = errors.New("too many requests")
	// ErrUpstream marks a failed or unreachable external service call.
	// Upstream failures are surfaced explicitly, never swallowed.
	ErrUpstream = errors.New("upstream service failure")
)

// Abort writes the JSON response matching err's place in the taxonomy.
func Abort(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"message": "User Not Found"})
	case errors.Is(err, ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "error"})
	case errors.Is(err, ErrExpiredCode):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Expired code"})
	case errors.Is(err, ErrInvalidCode):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Code is not valid"})
	case errors.Is(err, ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests"})
	case errors.Is(err, ErrUpstream):
		c.JSON(http.StatusBadGateway, gin.H{"message": "upstream service unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}

// ValidationErrors flattens binding failures into a field -> message map,
// mirroring the error body shape the frontend already consumes.
func ValidationErrors(c *gin.Context, err error) {
	out := gin.H{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[fe.Field()] = validationMessage(fe)
		}
	} else {
		out["request"] = err.Error()
	}

	c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": out, "status": true})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return "Value is too short (min " + fe.Param() + ")"
	case "max":
		return "Value is too long (max " + fe.Param() + ")"
	default:
		return "Invalid value"
	}
}
