package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/campushub/forum-server/internal/service"
	"github.com/campushub/forum-server/internal/store"
	"github.com/campushub/forum-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// getProfile
// ─────────────────────────────────────────────

func TestGetProfile_ByUID(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.profiles.getFn = func(_ context.Context, query service.ProfileQuery) (models.Profile, error) {
		assert.Equal(t, int64(42), query.UID)
		assert.False(t, query.UserPage)
		return models.Profile{Account: models.Account{UID: 42, Name: "Alexandria", Code: 1234}}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/user?uid=42", nil)
	rec := httptest.NewRecorder()

	h.getProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	data, isMap := env.Data.(map[string]any)
	require.True(t, isMap)
	assert.Equal(t, float64(42), data["uid"])
	assert.Equal(t, "Alexandria", data["name"])
}

func TestGetProfile_UserpageFlagSelectsPageBody(t *testing.T) {
	h, mocks := newTestHandler(t)

	var seen service.ProfileQuery
	mocks.profiles.getFn = func(_ context.Context, query service.ProfileQuery) (models.Profile, error) {
		seen = query
		return models.Profile{Account: models.Account{UID: 7, UserPage: "# page"}}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/user?uid=7&userpage=1", nil)
	rec := httptest.NewRecorder()

	h.getProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, seen.UserPage, "the userpage flag must request the page body")
}

func TestGetProfile_ByHandleWithUserPage(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.profiles.getFn = func(_ context.Context, query service.ProfileQuery) (models.Profile, error) {
		assert.Equal(t, "Alexandria", query.Name)
		assert.Equal(t, 1234, query.Code)
		assert.True(t, query.UserPage)
		return models.Profile{Account: models.Account{UID: 42, UserPage: "# hi"}}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/user?name=Alexandria&code=1234&userpage=1", nil)
	rec := httptest.NewRecorder()

	h.getProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetProfile_OwnProfileViaSession(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.profiles.getFn = func(_ context.Context, query service.ProfileQuery) (models.Profile, error) {
		assert.Zero(t, query.UID)
		assert.Equal(t, int64(7), query.SessionUID)
		return models.Profile{Account: models.Account{UID: 7}}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req = withSessionCtx(req, models.Session{SID: "live", UID: 7})
	rec := httptest.NewRecorder()

	h.getProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetProfile_AnonymousWithoutIdentifier_NotSignedInPayload(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.profiles.getFn = func(_ context.Context, query service.ProfileQuery) (models.Profile, error) {
		return models.Profile{}, service.ErrNoIdentifier
	}

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	rec := httptest.NewRecorder()

	h.getProfile(rec, req)

	// Lacking a session is not a protocol error.
	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, map[string]any{"empty": true}, env.Data)
}

func TestGetProfile_UnknownUser(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.profiles.getFn = func(_ context.Context, _ service.ProfileQuery) (models.Profile, error) {
		return models.Profile{}, store.ErrNoAccountFound
	}

	req := httptest.NewRequest(http.MethodGet, "/user?uid=404", nil)
	rec := httptest.NewRecorder()

	h.getProfile(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Success)
}

func TestGetProfile_MalformedParams(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"uid not a number", "/user?uid=abc"},
		{"code not a number", "/user?name=Alexandria&code=12x4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			h.getProfile(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// updateProfile
// ─────────────────────────────────────────────

func TestUpdateProfile_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	var gotUID int64
	var gotFields map[string]string
	mocks.profiles.updateFn = func(_ context.Context, uid int64, fields map[string]string) error {
		gotUID = uid
		gotFields = fields
		return nil
	}

	req := httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(`{"bio":"hello","name":"Alexandria"}`))
	req = withSessionCtx(req, models.Session{SID: "live", UID: 42})
	rec := httptest.NewRecorder()

	h.updateProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeEnvelope(t, rec).Success)
	assert.Equal(t, int64(42), gotUID)
	assert.Equal(t, map[string]string{"bio": "hello", "name": "Alexandria"}, gotFields)
}

func TestUpdateProfile_RequiresSession(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.profiles.updateFn = func(_ context.Context, _ int64, _ map[string]string) error {
		t.Fatal("an anonymous update must not reach the service")
		return nil
	}

	req := httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(`{"bio":"x"}`))
	rec := httptest.NewRecorder()

	h.updateProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, map[string]any{"empty": true}, env.Data)
}

func TestUpdateProfile_ValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"unknown field", service.ErrUnknownField, http.StatusBadRequest},
		{"invalid value", service.ErrInvalidFieldValue, http.StatusBadRequest},
		{"empty submission", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"handle conflict", store.ErrHandleTaken, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			mocks.profiles.updateFn = func(_ context.Context, _ int64, _ map[string]string) error {
				return tt.serviceErr
			}

			req := httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(`{"name":"x"}`))
			req = withSessionCtx(req, models.Session{SID: "live", UID: 42})
			rec := httptest.NewRecorder()

			h.updateProfile(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, decodeEnvelope(t, rec).Success)
		})
	}
}

func TestUpdateProfile_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/user", strings.NewReader("{broken"))
	req = withSessionCtx(req, models.Session{SID: "live", UID: 42})
	rec := httptest.NewRecorder()

	h.updateProfile(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// checkHandle
// ─────────────────────────────────────────────

func TestCheckHandle_Available(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.profiles.checkHandleFn = func(_ context.Context, name string, code int) (bool, error) {
		assert.Equal(t, "Alexandria", name)
		assert.Equal(t, 1234, code)
		return true, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/user/check?name=Alexandria&code=1234", nil)
	rec := httptest.NewRecorder()

	h.checkHandle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, map[string]any{"available": true}, env.Data)
}

func TestCheckHandle_Taken(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.profiles.checkHandleFn = func(_ context.Context, _ string, _ int) (bool, error) {
		return false, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/user/check?name=Alexandria&code=1234", nil)
	rec := httptest.NewRecorder()

	h.checkHandle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, map[string]any{"available": false}, env.Data)
}

func TestCheckHandle_NameRequired(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.profiles.checkHandleFn = func(_ context.Context, name string, _ int) (bool, error) {
		return false, service.ErrInvalidDataProvided
	}

	req := httptest.NewRequest(http.MethodGet, "/user/check?code=1234", nil)
	rec := httptest.NewRecorder()

	h.checkHandle(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
