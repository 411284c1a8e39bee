package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexiva1995/Networkx-back/internal/httpx"
)

func TestChangeData_SendsPayloadAndHeaders(t *testing.T) {
	t.Parallel()

	var gotPath, gotKey string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("apikey")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"status": true, "user_id": 7})
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "test-key")
	resp, err := c.ChangeData(context.Background(), 7, "Johnathan", "Doerty", "j@example.com")
	require.NoError(t, err)

	assert.True(t, resp.Status)
	assert.Equal(t, uint(7), resp.UserID)
	assert.Equal(t, "/change-data", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "j@example.com", gotBody["email"])
}

func TestChangePassword_NegativeDecision(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"status": false})
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "k")
	resp, err := c.ChangePassword(context.Background(), 3, "N3w-Passw0rd!")
	require.NoError(t, err)
	assert.False(t, resp.Status)
}

func TestCheckCredentials_UpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "k")
	_, err := c.CheckCredentials(context.Background(), 3, "a@b.c", "pw")
	assert.ErrorIs(t, err, httpx.ErrUpstream)
}

func TestDoRequest_Unreachable(t *testing.T) {
	t.Parallel()

	c := NewClient("http://127.0.0.1:1/", "k")
	_, err := c.ChangePassword(context.Background(), 1, "pw")
	assert.ErrorIs(t, err, httpx.ErrUpstream)
}
