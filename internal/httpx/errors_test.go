package httpx

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func abortStatus(err error) int {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Abort(c, err)
	return w.Code
}

func TestAbort_TaxonomyMapping(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusBadRequest, abortStatus(ErrNotFound))
	assert.Equal(t, http.StatusUnauthorized, abortStatus(ErrUnauthorized))
	assert.Equal(t, http.StatusUnprocessableEntity, abortStatus(ErrExpiredCode))
	assert.Equal(t, http.StatusUnprocessableEntity, abortStatus(ErrInvalidCode))
	assert.Equal(t, http.StatusTooManyRequests, abortStatus(ErrRateLimited))
	assert.Equal(t, http.StatusBadGateway, abortStatus(ErrUpstream))
	assert.Equal(t, http.StatusInternalServerError, abortStatus(fmt.Errorf("boom")))
}

func TestAbort_WrappedErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%w: connection refused", ErrUpstream)
	assert.Equal(t, http.StatusBadGateway, abortStatus(wrapped))
}
