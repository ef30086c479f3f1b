package store

import (
	"context"
	"fmt"

	"github.com/campushub/forum-server/internal/logger"
	"github.com/campushub/forum-server/models"
)

// forumRepository is the PostgreSQL-backed implementation of
// [ForumRepository]. Forum content is read-only from this service's point of
// view; writes happen elsewhere.
type forumRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewForumRepository constructs a [ForumRepository] backed by the provided
// database connection and logger.
func NewForumRepository(db *DB, logger *logger.Logger) ForumRepository {
	logger.Debug().Msg("creating forum repository")
	return &forumRepository{
		db:     db,
		logger: logger,
	}
}

func (r *forumRepository) Categories(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, selectCategories)
	if err != nil {
		log.Err(err).Str("func", "*forumRepository.Categories").Msg("error listing categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Hidden); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

func (r *forumRepository) Blocks(ctx context.Context) ([]models.Block, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, selectBlocks)
	if err != nil {
		log.Err(err).Str("func", "*forumRepository.Blocks").Msg("error listing blocks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var blocks []models.Block
	for rows.Next() {
		var b models.Block
		if err := rows.Scan(&b.ID, &b.Category, &b.Name, &b.Hidden); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		blocks = append(blocks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return blocks, nil
}

func (r *forumRepository) CountPosts(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, countPosts).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// ListPosts returns one page of posts ordered by latest comment, newest
// first.
func (r *forumRepository) ListPosts(ctx context.Context, block int, limit, offset uint64) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPostsQuery(block, limit, offset)
	if err != nil {
		log.Err(err).Str("func", "*forumRepository.ListPosts").Msg("failed to build posts query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*forumRepository.ListPosts").Int("block", block).Msg("error listing posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, limit)
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.PID, &p.Author, &p.Block, &p.Title, &p.Content,
			&p.Hidden, &p.CreationTime, &p.LatestComment); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}
