package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// placeholders. Every dynamically assembled query goes through it so that
// values — including update SET lists — are always bound, never
// interpolated.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	insertAccount = `INSERT INTO users (gid, name, code, email, picture)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING uid, register_time;`

	findAccountBySubject = `SELECT uid, gid, name, code, email, bio, picture, lv, exp,
        is_member, is_moderator, verify, register_time, join_time
    FROM users
    WHERE gid = $1;`

	handleTaken = `SELECT uid FROM users WHERE name = $1 AND code = $2;`

	findSession = `SELECT sid, uid, last_request, platform, browser
    FROM sessions
    WHERE sid = $1;`

	touchSession = `UPDATE sessions SET last_request = $2 WHERE sid = $1;`

	deleteSession = `DELETE FROM sessions WHERE sid = $1;`

	insertSession = `INSERT INTO sessions (sid, uid, last_request, platform, browser)
    VALUES ($1, $2, $3, $4, $5);`

	getLevel = `SELECT id, name, color, text_color FROM levels WHERE id = $1;`

	getBadge = `SELECT id, name, color, icon FROM verify WHERE id = $1;`

	selectCategories = `SELECT id, name, hidden FROM categories ORDER BY id;`

	selectBlocks = `SELECT id, category, name, hidden FROM blocks ORDER BY id;`

	countPosts = `SELECT COUNT(*) FROM posts;`
)

// accountColumns returns the column list for account lookups. The user_page
// column is heavy free text and only fetched when the caller asked for it.
func accountColumns(includeUserPage bool) []string {
	cols := []string{
		"uid", "gid", "name", "code", "email", "bio", "picture",
		"lv", "exp", "is_member", "is_moderator", "verify",
		"register_time", "join_time",
	}

	if includeUserPage {
		cols = append(cols, "user_page")
	}

	return cols
}

// buildAccountSelectQuery assembles a visible-account lookup for the given
// predicate. Rows without a subject id are placeholders and never match.
func buildAccountSelectQuery(pred sq.Sqlizer, includeUserPage bool) (string, []any, error) {
	query, args, err := psql.
		Select(accountColumns(includeUserPage)...).
		From("users").
		Where(pred).
		Where("gid IS NOT NULL").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildProfileUpdateQuery assembles a single all-or-nothing UPDATE applying
// the given whitelisted column values to one account. Returns
// ErrBuildingSQLQuery when fields is empty.
func buildProfileUpdateQuery(uid int64, fields map[string]string) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("%w: empty update set", ErrBuildingSQLQuery)
	}

	setMap := make(map[string]any, len(fields))
	for column, value := range fields {
		setMap[column] = value
	}

	query, args, err := psql.
		Update("users").
		SetMap(setMap).
		Where(sq.Eq{"uid": uid}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildPostsQuery assembles one page of the post listing, newest activity
// first. A zero block means no block filter.
func buildPostsQuery(block int, limit, offset uint64) (string, []any, error) {
	builder := psql.
		Select("pid", "author", "block", "title", "content", "hidden",
			"creation_time", "latest_comment").
		From("posts").
		OrderBy("latest_comment DESC").
		Limit(limit).
		Offset(offset)

	if block != 0 {
		builder = builder.Where(sq.Eq{"block": block})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
