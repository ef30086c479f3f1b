package http

import (
	"net/http"

	"github.com/campushub/forum-server/internal/config"
	"github.com/campushub/forum-server/internal/identity"
	"github.com/campushub/forum-server/internal/logger"
	"github.com/campushub/forum-server/internal/service"
)

type Handler struct {
	services *service.Services
	verifier identity.Verifier
	cfg      config.Auth

	logger *logger.Logger
}

func NewHandler(services *service.Services, verifier identity.Verifier, cfg config.Auth, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		verifier: verifier,
		cfg:      cfg,
		logger:   logger,
	}
}

// root answers GET / with a pointer to the API surface.
func (h *Handler) root(w http.ResponseWriter, _ *http.Request) {
	okMessage(w, "campushub forum API; see /forum, /user, /auth")
}
