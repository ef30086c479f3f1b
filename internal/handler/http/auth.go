package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campushub/forum-server/internal/identity"
	"github.com/campushub/forum-server/internal/logger"
	"github.com/campushub/forum-server/internal/service"
	"github.com/campushub/forum-server/models"
)

// signInRequest is the body of POST /auth.
type signInRequest struct {
	// Token is the raw ID token obtained from the provider's sign-in flow.
	Token string `json:"token"`
}

// signIn handles POST /auth: verify the submitted ID token, find or create
// the matching account, and issue a session cookie.
//
// A request that already carries a valid session short-circuits: the
// existing session is kept and no new account work happens.
func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if session, signedIn := sessionFrom(r); signedIn {
		// Idempotent: the live session is kept, only the cookie hint is
		// refreshed.
		h.setSessionCookie(w, session.SID)
		ok(w, models.AuthResult{Newbie: false})
		return
	}

	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		fail(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}
	if req.Token == "" {
		fail(w, http.StatusBadRequest, "token is required")
		return
	}

	claims, err := h.verifier.Verify(ctx, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrWrongDomain):
			log.Warn().Msg("sign-in attempt from outside the allowed domain")
			fail(w, http.StatusForbidden, "account outside the allowed domain")
			return
		case errors.Is(err, identity.ErrKeyFetch):
			log.Err(err).Msg("signing keys unavailable")
			fail(w, http.StatusBadGateway, "identity provider unavailable")
			return
		default:
			log.Err(err).Msg("id token rejected")
			fail(w, http.StatusUnauthorized, "Token is invalid.")
			return
		}
	}

	uid, newbie, err := h.services.AccountService.Provision(ctx, claims)
	if err != nil {
		if errors.Is(err, service.ErrHandleExhausted) {
			log.Err(err).Msg("no free handle for new account")
			fail(w, http.StatusConflict, "no free handle available, try again")
			return
		}

		log.Err(err).Msg("account provisioning failed")
		fail(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	sid, err := h.services.SessionService.Issue(ctx, uid, parseClientInfo(r.UserAgent()))
	if err != nil {
		log.Err(err).Msg("session issue failed")
		fail(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	h.setSessionCookie(w, sid)
	ok(w, models.AuthResult{Newbie: newbie})
}
