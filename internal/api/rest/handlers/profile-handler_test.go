package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SundayYogurt/alumni_service/internal/domain"
	"github.com/SundayYogurt/alumni_service/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const onboardingBody = `{
	"full_name": "Asha Rao",
	"graduation_year": 2018,
	"degree": "B.Tech",
	"branch": "CSE",
	"employment_type": "Employed",
	"interests": ["Mentorship"],
	"has_consented_terms": true,
	"has_consented_privacy": true
}`

func TestSubmitOnboardingHandler(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()
	env.store.put(domain.Profile{ID: id, Email: "asha@example.com", Approval: approval(domain.ApprovalPending)})

	req := httptest.NewRequest(http.MethodPut, "/api/profile", strings.NewReader(onboardingBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", env.bearer(t, id, "asha@example.com"))

	resp, body := env.do(t, req)
	require.Equal(t, http.StatusOK, resp.StatusCode, body.Error)

	var out dto.ProfileResponse
	require.NoError(t, json.Unmarshal(body.Data, &out))
	assert.True(t, out.Profile.Onboarded)
	assert.Equal(t, "Pending", out.Status.Label)
	assert.Equal(t, "Public profile", out.Visibility)

	// onboarding now unlocks the dashboard
	req = httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set("Authorization", env.bearer(t, id, "asha@example.com"))
	resp, _ = env.do(t, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSubmitOnboardingHandlerValidation(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodPut, "/api/profile", strings.NewReader(`{"full_name":" ","graduation_year":2018}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", env.bearer(t, id, "asha@example.com"))

	resp, body := env.do(t, req)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Enter your name", body.Fields["full_name"])
	assert.Equal(t, "Select degree", body.Fields["degree"])
	assert.Equal(t, "You must agree to the Terms", body.Fields["has_consented_terms"])
	assert.NotContains(t, body.Fields, "graduation_year")
}

func TestGetProfileHandler(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/profile/me", nil)
	req.Header.Set("Authorization", env.bearer(t, id, "asha@example.com"))
	resp, body := env.do(t, req)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "/onboarding", body.Redirect)

	env.store.put(domain.Profile{ID: id, Email: "asha@example.com", FullName: strPtr("Asha")})
	req = httptest.NewRequest(http.MethodGet, "/api/profile/me", nil)
	req.Header.Set("Authorization", env.bearer(t, id, "asha@example.com"))
	resp, body = env.do(t, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ProfileResponse
	require.NoError(t, json.Unmarshal(body.Data, &out))
	assert.Equal(t, 13, out.Completeness.Percent)
	assert.Equal(t, "Hidden from directory", out.Visibility)
}

func avatarRequest(t *testing.T, env *testEnv, filename string, data []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/profile/avatar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", env.bearer(t, uuid.New(), "asha@example.com"))
	return req
}

func TestUploadAvatarHandler(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, avatarRequest(t, env, "", nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "file is required", body.Error)

	resp, body = env.do(t, avatarRequest(t, env, "me.gif", []byte("GIF89a")))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "only jpg/jpeg/png/webp images are allowed", body.Error)

	// the test environment has no image storage configured
	resp, _ = env.do(t, avatarRequest(t, env, "me.png", []byte("png-bytes")))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
