package service

import (
	"github.com/campushub/forum-server/internal/config"
	"github.com/campushub/forum-server/internal/logger"
	"github.com/campushub/forum-server/internal/store"
)

type Services struct {
	SessionService SessionService
	AccountService AccountService
	ProfileService ProfileService
	ForumService   ForumService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		SessionService: NewSessionService(repositories.SessionRepository, cfg.Auth, logger),
		AccountService: NewAccountService(repositories.AccountRepository, logger),
		ProfileService: NewProfileService(repositories.AccountRepository, logger),
		ForumService:   NewForumService(repositories.ForumRepository, logger),
	}
}
