package http

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/campushub/forum-server/internal/config"
	"github.com/campushub/forum-server/internal/identity"
	"github.com/campushub/forum-server/internal/logger"
	"github.com/campushub/forum-server/internal/service"
	"github.com/campushub/forum-server/internal/utils"
	"github.com/campushub/forum-server/models"
)

var errBoom = errors.New("boom")

// ─────────────────────────────────────────────
// Mocks: service layer
// ─────────────────────────────────────────────

type mockSessionService struct {
	validateFn func(ctx context.Context, sid string) (models.Session, error)
	issueFn    func(ctx context.Context, uid int64, client models.ClientInfo) (string, error)
}

func (m *mockSessionService) Validate(ctx context.Context, sid string) (models.Session, error) {
	if m.validateFn != nil {
		return m.validateFn(ctx, sid)
	}
	return models.Session{}, service.ErrNoSession
}

func (m *mockSessionService) Issue(ctx context.Context, uid int64, client models.ClientInfo) (string, error) {
	if m.issueFn != nil {
		return m.issueFn(ctx, uid, client)
	}
	return "issued-token", nil
}

type mockAccountService struct {
	provisionFn func(ctx context.Context, claims models.Claims) (int64, bool, error)
}

func (m *mockAccountService) Provision(ctx context.Context, claims models.Claims) (int64, bool, error) {
	if m.provisionFn != nil {
		return m.provisionFn(ctx, claims)
	}
	return 1, false, nil
}

type mockProfileService struct {
	getFn         func(ctx context.Context, query service.ProfileQuery) (models.Profile, error)
	updateFn      func(ctx context.Context, uid int64, fields map[string]string) error
	checkHandleFn func(ctx context.Context, name string, code int) (bool, error)
}

func (m *mockProfileService) Get(ctx context.Context, query service.ProfileQuery) (models.Profile, error) {
	if m.getFn != nil {
		return m.getFn(ctx, query)
	}
	return models.Profile{}, nil
}

func (m *mockProfileService) Update(ctx context.Context, uid int64, fields map[string]string) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, uid, fields)
	}
	return nil
}

func (m *mockProfileService) CheckHandle(ctx context.Context, name string, code int) (bool, error) {
	if m.checkHandleFn != nil {
		return m.checkHandleFn(ctx, name, code)
	}
	return true, nil
}

type mockForumService struct {
	overviewFn func(ctx context.Context) (models.ForumOverview, error)
	postsFn    func(ctx context.Context, block, page, size int) (models.PostPage, error)
}

func (m *mockForumService) Overview(ctx context.Context) (models.ForumOverview, error) {
	if m.overviewFn != nil {
		return m.overviewFn(ctx)
	}
	return models.ForumOverview{}, nil
}

func (m *mockForumService) Posts(ctx context.Context, block, page, size int) (models.PostPage, error) {
	if m.postsFn != nil {
		return m.postsFn(ctx, block, page, size)
	}
	return models.PostPage{}, nil
}

// ─────────────────────────────────────────────
// Mock: identity.Verifier
// ─────────────────────────────────────────────

type mockVerifier struct {
	verifyFn func(ctx context.Context, rawToken string) (models.Claims, error)
}

func (m *mockVerifier) Verify(ctx context.Context, rawToken string) (models.Claims, error) {
	if m.verifyFn != nil {
		return m.verifyFn(ctx, rawToken)
	}
	return models.Claims{}, identity.ErrInvalidToken
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testAuthConfig = config.Auth{
	GoogleClientID: "client-id",
	AllowedDomain:  "winchesterthurston.org",
	SessionTTL:     7 * 24 * time.Hour,
	SessionCookie:  "__sid",
}

type handlerMocks struct {
	sessions *mockSessionService
	accounts *mockAccountService
	profiles *mockProfileService
	forum    *mockForumService
	verifier *mockVerifier
}

// newTestHandler builds a Handler over zero-value mocks; tests override the
// function fields they care about.
func newTestHandler(t *testing.T) (*Handler, *handlerMocks) {
	t.Helper()

	mocks := &handlerMocks{
		sessions: &mockSessionService{},
		accounts: &mockAccountService{},
		profiles: &mockProfileService{},
		forum:    &mockForumService{},
		verifier: &mockVerifier{},
	}

	h := NewHandler(&service.Services{
		SessionService: mocks.sessions,
		AccountService: mocks.accounts,
		ProfileService: mocks.profiles,
		ForumService:   mocks.forum,
	}, mocks.verifier, testAuthConfig, logger.Nop())

	return h, mocks
}

// withSessionCtx attaches a validated session to the request context the way
// the session middleware would.
func withSessionCtx(r *http.Request, session models.Session) *http.Request {
	ctx := context.WithValue(r.Context(), utils.SessionCtxKey, session)
	return r.WithContext(ctx)
}
