package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecaptchaVerify_FailsOpenWithoutSecret(t *testing.T) {
	svc := NewRecaptchaService("", "https://unused.invalid")

	resp, err := svc.Verify("any-token")
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestRecaptchaVerify_ForwardsToSiteverify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "secret-key", r.FormValue("secret"))
		assert.Equal(t, "user-token", r.FormValue("response"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "score": 0.9, "action": "submit_review"}`))
	}))
	defer server.Close()

	svc := NewRecaptchaService("secret-key", server.URL)

	resp, err := svc.Verify("user-token")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 0.9, resp.Score)
	assert.Equal(t, "submit_review", resp.Action)
}

func TestRecaptchaVerify_FailureCodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
	}))
	defer server.Close()

	svc := NewRecaptchaService("secret-key", server.URL)

	resp, err := svc.Verify("bad-token")
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "invalid-input-response", resp.Error)
}

func TestRecaptchaVerify_EmptyTokenWithSecret(t *testing.T) {
	svc := NewRecaptchaService("secret-key", "https://unused.invalid")

	resp, err := svc.Verify("")
	require.NoError(t, err)
	assert.False(t, resp.Success)
}
