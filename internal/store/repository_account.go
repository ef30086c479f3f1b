package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/campushub/forum-server/internal/logger"
	"github.com/campushub/forum-server/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. It handles account creation, handle bookkeeping, and
// profile lookups against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner abstracts *sql.Row and *sql.Rows for account scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanAccount reads one account row in accountColumns order, folding the
// nullable columns (gid, verify, join_time) into their zero values.
func scanAccount(row rowScanner, includeUserPage bool) (models.Account, error) {
	var account models.Account
	var gid sql.NullString
	var verify sql.NullInt64
	var joinTime sql.NullTime

	dest := []any{
		&account.UID, &gid, &account.Name, &account.Code, &account.Email,
		&account.Bio, &account.Picture, &account.Level, &account.Exp,
		&account.IsMember, &account.IsModerator, &verify,
		&account.RegisterTime, &joinTime,
	}
	if includeUserPage {
		dest = append(dest, &account.UserPage)
	}

	if err := row.Scan(dest...); err != nil {
		return models.Account{}, err
	}

	account.GID = gid.String
	account.Verify = int(verify.Int64)
	if joinTime.Valid {
		account.JoinTime = joinTime.Time
	}

	return account, nil
}

// FindBySubject retrieves the account owning the given external subject id.
//
// Error handling:
//   - No matching row → [ErrNoAccountFound].
//   - Any other driver-level error → wrapped in [ErrScanningRow].
func (r *accountRepository) FindBySubject(ctx context.Context, gid string) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findAccountBySubject, gid)

	account, err := scanAccount(row, false)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNoAccountFound
		}

		log.Err(err).Str("func", "*accountRepository.FindBySubject").Msg("error: scanning error")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}

// FindByID retrieves a visible account by internal id.
func (r *accountRepository) FindByID(ctx context.Context, uid int64, includeUserPage bool) (models.Account, error) {
	return r.findOne(ctx, sq.Eq{"uid": uid}, includeUserPage)
}

// FindByHandle retrieves a visible account by its (name, code) handle.
func (r *accountRepository) FindByHandle(ctx context.Context, name string, code int, includeUserPage bool) (models.Account, error) {
	return r.findOne(ctx, sq.Eq{"name": name, "code": code}, includeUserPage)
}

func (r *accountRepository) findOne(ctx context.Context, pred sq.Sqlizer, includeUserPage bool) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAccountSelectQuery(pred, includeUserPage)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.findOne").Msg("failed to build lookup query")
		return models.Account{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	account, err := scanAccount(row, includeUserPage)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNoAccountFound
		}

		log.Err(err).Str("func", "*accountRepository.findOne").Msg("error: scanning error")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}

// HandleTaken reports whether the (name, code) pair is already owned by any
// account, visible or placeholder.
func (r *accountRepository) HandleTaken(ctx context.Context, name string, code int) (bool, error) {
	log := logger.FromContext(ctx)

	var uid int64
	err := r.db.QueryRowContext(ctx, handleTaken, name, code).Scan(&uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		log.Err(err).Str("func", "*accountRepository.HandleTaken").Msg("error checking handle")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

// Create persists a new account and returns it with UID and RegisterTime
// populated from the RETURNING clause.
//
// Error handling:
//   - unique_violation (23505) on the subject id → [ErrSubjectExists].
//   - unique_violation on the handle → [ErrHandleTaken]. The unique
//     constraint is the real uniqueness guarantee; the provisioner's
//     pre-insert check only avoids the retry in the common case.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) Create(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, insertAccount,
		account.GID, account.Name, account.Code, account.Email, account.Picture)

	if err := row.Scan(&account.UID, &account.RegisterTime); err != nil {
		log.Err(err).Str("func", "*accountRepository.Create").Msg("error creating account")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			if postgresConstraint(err) == "users_gid_key" {
				return models.Account{}, ErrSubjectExists
			}
			return models.Account{}, ErrHandleTaken
		default:
			return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return account, nil
}

// UpdateProfile applies the given whitelisted column values to one account
// in a single UPDATE. Targeting an absent account returns
// [ErrNoAccountFound].
func (r *accountRepository) UpdateProfile(ctx context.Context, uid int64, fields map[string]string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildProfileUpdateQuery(uid, fields)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateProfile").Msg("failed to build update query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateProfile").Int64("uid", uid).Msg("error updating profile")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoAccountFound
	}

	return nil
}

// GetLevel returns the display attributes of a membership level.
func (r *accountRepository) GetLevel(ctx context.Context, id int) (models.Level, error) {
	var level models.Level

	err := r.db.QueryRowContext(ctx, getLevel, id).
		Scan(&level.ID, &level.Name, &level.Color, &level.TextColor)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Level{}, ErrNoLevelFound
		}
		return models.Level{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return level, nil
}

// GetBadge returns a verification badge record.
func (r *accountRepository) GetBadge(ctx context.Context, id int) (models.Badge, error) {
	var badge models.Badge

	err := r.db.QueryRowContext(ctx, getBadge, id).
		Scan(&badge.ID, &badge.Name, &badge.Color, &badge.Icon)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Badge{}, ErrNoBadgeFound
		}
		return models.Badge{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return badge, nil
}
