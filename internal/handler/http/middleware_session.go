package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/campushub/forum-server/internal/logger"
	"github.com/campushub/forum-server/internal/service"
	"github.com/campushub/forum-server/internal/utils"
)

// withSession resolves the session cookie, if any, and stores the validated
// [models.Session] in the request context under [utils.SessionCtxKey].
//
// A missing, unknown, or expired cookie does NOT reject the request: several
// endpoints serve anonymous callers, so each handler decides for itself how
// to treat the absence of a session. An invalid cookie is cleared so the
// client stops resending a dead token. Only a storage failure during the
// lookup terminates the request, with HTTP 500.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(h.cfg.SessionCookie)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		session, err := h.services.SessionService.Validate(ctx, cookie.Value)
		if err != nil {
			if errors.Is(err, service.ErrNoSession) {
				log.Debug().Msg("stale session cookie, clearing")
				h.clearSessionCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			log.Err(err).Msg("session validation failed")
			fail(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			return
		}

		// Re-set the cookie so the client's expiry hint slides along with
		// the server-side window.
		h.setSessionCookie(w, session.SID)

		ctx = context.WithValue(ctx, utils.SessionCtxKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// setSessionCookie installs the session token as an HttpOnly cookie scoped
// to the whole site. Max-Age mirrors the idle TTL so the browser keeps the
// cookie at least as long as the server would honor it.
func (h *Handler) setSessionCookie(w http.ResponseWriter, sid string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.SessionCookie,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionTTL.Seconds()),
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
