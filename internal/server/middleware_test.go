package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthRequired_MissingHeader(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.GET("/x", AuthRequired(nil, []byte("secret")), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_MalformedToken(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.GET("/x", AuthRequired(nil, []byte("secret")), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminIPAllowlist(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.GET("/x", AdminIPAllowlist([]string{"10.0.0.0/8"}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.RemoteAddr = "192.168.1.5:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.RemoteAddr = "10.1.2.3:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminIPAllowlist_EmptyListAllowsAll(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.GET("/x", AdminIPAllowlist(nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.RemoteAddr = "203.0.113.9:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStrongPassword(t *testing.T) {
	t.Parallel()

	cases := []struct {
		password string
		want     bool
	}{
		{"Abcdef1!", true},
		{"abcdef1!", false},
		{"ABCDEF1!", false},
		{"Abcdefgh!", false},
		{"Abcdefg1", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, strongPassword(tc.password), tc.password)
	}
}
