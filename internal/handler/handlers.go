package handler

import (
	"github.com/campushub/forum-server/internal/config"
	"github.com/campushub/forum-server/internal/handler/http"
	"github.com/campushub/forum-server/internal/identity"
	"github.com/campushub/forum-server/internal/logger"
	"github.com/campushub/forum-server/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, verifier identity.Verifier, cfg config.StructuredConfig, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, verifier, cfg.Auth, logger),
	}
}
