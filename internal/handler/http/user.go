package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/campushub/forum-server/internal/logger"
	"github.com/campushub/forum-server/internal/service"
	"github.com/campushub/forum-server/internal/store"
	"github.com/campushub/forum-server/models"
)

// getProfile handles GET /user.
//
// The target account is chosen by query parameters: ?uid= resolves by id,
// ?name=&code= resolves by handle, and with neither the caller's own
// session decides. An anonymous request with no identifier is not an error:
// it gets the empty "not signed in" payload so clients can check their
// sign-in state with the same call. ?userpage=1 includes the profile page
// body in the response.
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := service.ProfileQuery{
		Name:     r.URL.Query().Get("name"),
		UserPage: r.URL.Query().Get("userpage") != "",
	}

	if rawUID := r.URL.Query().Get("uid"); rawUID != "" {
		uid, err := strconv.ParseInt(rawUID, 10, 64)
		if err != nil {
			fail(w, http.StatusBadRequest, "invalid uid")
			return
		}
		query.UID = uid
	}

	if rawCode := r.URL.Query().Get("code"); rawCode != "" {
		code, err := strconv.Atoi(rawCode)
		if err != nil {
			fail(w, http.StatusBadRequest, "invalid code")
			return
		}
		query.Code = code
	}

	if session, signedIn := sessionFrom(r); signedIn {
		query.SessionUID = session.UID
	}

	profile, err := h.services.ProfileService.Get(ctx, query)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoIdentifier):
			notSignedIn(w)
			return
		case errors.Is(err, store.ErrNoAccountFound):
			fail(w, http.StatusNotFound, "User not found.")
			return
		default:
			log.Err(err).Msg("profile lookup failed")
			fail(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			return
		}
	}

	ok(w, profile)
}

// updateProfile handles POST /user: apply profile field edits to the
// caller's own account. Requires a session.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, signedIn := sessionFrom(r)
	if !signedIn {
		notSignedIn(w)
		return
	}

	var fields map[string]string
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		fail(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	if err := h.services.ProfileService.Update(ctx, session.UID, fields); err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownField),
			errors.Is(err, service.ErrInvalidFieldValue),
			errors.Is(err, service.ErrInvalidDataProvided):
			fail(w, http.StatusBadRequest, err.Error())
			return
		case errors.Is(err, store.ErrHandleTaken):
			fail(w, http.StatusConflict, "handle already taken")
			return
		default:
			log.Err(err).Msg("profile update failed")
			fail(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			return
		}
	}

	okMessage(w, "profile updated")
}

// checkHandle handles GET /user/check?name=&code=: report whether the
// (name, code) handle is still free to claim.
func (h *Handler) checkHandle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	name := r.URL.Query().Get("name")

	var code int
	if rawCode := r.URL.Query().Get("code"); rawCode != "" {
		parsed, err := strconv.Atoi(rawCode)
		if err != nil {
			fail(w, http.StatusBadRequest, "invalid code")
			return
		}
		code = parsed
	}

	available, err := h.services.ProfileService.CheckHandle(ctx, name, code)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			fail(w, http.StatusBadRequest, "name is required")
			return
		}

		log.Err(err).Msg("handle check failed")
		fail(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	ok(w, models.Availability{Available: available})
}
