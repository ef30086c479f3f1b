package service

import (
	"context"
	"errors"
	"time"

	"github.com/campushub/forum-server/models"
)

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// Mock: store.AccountRepository
// ─────────────────────────────────────────────

type mockAccountRepository struct {
	findBySubjectFn func(ctx context.Context, gid string) (models.Account, error)
	findByIDFn      func(ctx context.Context, uid int64, includeUserPage bool) (models.Account, error)
	findByHandleFn  func(ctx context.Context, name string, code int, includeUserPage bool) (models.Account, error)
	handleTakenFn   func(ctx context.Context, name string, code int) (bool, error)
	createFn        func(ctx context.Context, account models.Account) (models.Account, error)
	updateProfileFn func(ctx context.Context, uid int64, fields map[string]string) error
	getLevelFn      func(ctx context.Context, id int) (models.Level, error)
	getBadgeFn      func(ctx context.Context, id int) (models.Badge, error)
}

func (m *mockAccountRepository) FindBySubject(ctx context.Context, gid string) (models.Account, error) {
	if m.findBySubjectFn != nil {
		return m.findBySubjectFn(ctx, gid)
	}
	return models.Account{}, nil
}

func (m *mockAccountRepository) FindByID(ctx context.Context, uid int64, includeUserPage bool) (models.Account, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, uid, includeUserPage)
	}
	return models.Account{}, nil
}

func (m *mockAccountRepository) FindByHandle(ctx context.Context, name string, code int, includeUserPage bool) (models.Account, error) {
	if m.findByHandleFn != nil {
		return m.findByHandleFn(ctx, name, code, includeUserPage)
	}
	return models.Account{}, nil
}

func (m *mockAccountRepository) HandleTaken(ctx context.Context, name string, code int) (bool, error) {
	if m.handleTakenFn != nil {
		return m.handleTakenFn(ctx, name, code)
	}
	return false, nil
}

func (m *mockAccountRepository) Create(ctx context.Context, account models.Account) (models.Account, error) {
	if m.createFn != nil {
		return m.createFn(ctx, account)
	}
	return account, nil
}

func (m *mockAccountRepository) UpdateProfile(ctx context.Context, uid int64, fields map[string]string) error {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, uid, fields)
	}
	return nil
}

func (m *mockAccountRepository) GetLevel(ctx context.Context, id int) (models.Level, error) {
	if m.getLevelFn != nil {
		return m.getLevelFn(ctx, id)
	}
	return models.Level{}, nil
}

func (m *mockAccountRepository) GetBadge(ctx context.Context, id int) (models.Badge, error) {
	if m.getBadgeFn != nil {
		return m.getBadgeFn(ctx, id)
	}
	return models.Badge{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.SessionRepository
// ─────────────────────────────────────────────

type mockSessionRepository struct {
	findFn   func(ctx context.Context, sid string) (models.Session, error)
	touchFn  func(ctx context.Context, sid string, at time.Time) error
	deleteFn func(ctx context.Context, sid string) error
	createFn func(ctx context.Context, session models.Session) error
}

func (m *mockSessionRepository) Find(ctx context.Context, sid string) (models.Session, error) {
	if m.findFn != nil {
		return m.findFn(ctx, sid)
	}
	return models.Session{}, nil
}

func (m *mockSessionRepository) Touch(ctx context.Context, sid string, at time.Time) error {
	if m.touchFn != nil {
		return m.touchFn(ctx, sid, at)
	}
	return nil
}

func (m *mockSessionRepository) Delete(ctx context.Context, sid string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, sid)
	}
	return nil
}

func (m *mockSessionRepository) Create(ctx context.Context, session models.Session) error {
	if m.createFn != nil {
		return m.createFn(ctx, session)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ForumRepository
// ─────────────────────────────────────────────

type mockForumRepository struct {
	categoriesFn func(ctx context.Context) ([]models.Category, error)
	blocksFn     func(ctx context.Context) ([]models.Block, error)
	countPostsFn func(ctx context.Context) (int, error)
	listPostsFn  func(ctx context.Context, block int, limit, offset uint64) ([]models.Post, error)
}

func (m *mockForumRepository) Categories(ctx context.Context) ([]models.Category, error) {
	if m.categoriesFn != nil {
		return m.categoriesFn(ctx)
	}
	return nil, nil
}

func (m *mockForumRepository) Blocks(ctx context.Context) ([]models.Block, error) {
	if m.blocksFn != nil {
		return m.blocksFn(ctx)
	}
	return nil, nil
}

func (m *mockForumRepository) CountPosts(ctx context.Context) (int, error) {
	if m.countPostsFn != nil {
		return m.countPostsFn(ctx)
	}
	return 0, nil
}

func (m *mockForumRepository) ListPosts(ctx context.Context, block int, limit, offset uint64) ([]models.Post, error) {
	if m.listPostsFn != nil {
		return m.listPostsFn(ctx, block, limit, offset)
	}
	return nil, nil
}
