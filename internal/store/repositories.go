package store

import "github.com/campushub/forum-server/internal/logger"

// Repositories bundles every repository behind one construction point so
// main can wire the service layer in a single call.
type Repositories struct {
	AccountRepository AccountRepository
	SessionRepository SessionRepository
	ForumRepository   ForumRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		AccountRepository: NewAccountRepository(db, logger),
		SessionRepository: NewSessionRepository(db, logger),
		ForumRepository:   NewForumRepository(db, logger),
	}
}
