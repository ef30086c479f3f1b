package service

import (
	"context"
	"fmt"

	"github.com/campushub/forum-server/internal/logger"
	"github.com/campushub/forum-server/internal/store"
	"github.com/campushub/forum-server/models"
)

const (
	defaultPageSize = 32
	maxPageSize     = 100
)

// forumService implements ForumService over the read-only forum repository.
type forumService struct {
	// forumRepository is the data-access layer for forum content.
	forumRepository store.ForumRepository

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewForumService constructs a ForumService backed by forumRepository.
func NewForumService(forumRepository store.ForumRepository, logger *logger.Logger) ForumService {
	return &forumService{forumRepository: forumRepository, logger: logger}
}

// Overview assembles the category/block hierarchy. Hidden categories and
// blocks are filtered out; blocks whose category is missing or hidden fold
// into the implicit category 0 so they stay reachable.
func (s *forumService) Overview(ctx context.Context) (models.ForumOverview, error) {
	log := logger.FromContext(ctx)

	categories, err := s.forumRepository.Categories(ctx)
	if err != nil {
		log.Err(err).Msg("category listing failed")
		return models.ForumOverview{}, fmt.Errorf("category listing failed: %w", err)
	}

	blocks, err := s.forumRepository.Blocks(ctx)
	if err != nil {
		log.Err(err).Msg("block listing failed")
		return models.ForumOverview{}, fmt.Errorf("block listing failed: %w", err)
	}

	overview := models.ForumOverview{Categories: make(map[int]*models.Category, len(categories)+1)}

	// Category 0 always exists, even when nothing lands in it, so clients
	// can index it unconditionally.
	overview.Categories[0] = &models.Category{ID: 0, Blocks: []models.Block{}}

	for _, category := range categories {
		if category.Hidden {
			continue
		}

		c := category
		c.Blocks = []models.Block{}
		overview.Categories[c.ID] = &c
	}

	for _, block := range blocks {
		if block.Hidden {
			continue
		}

		category, ok := overview.Categories[block.Category]
		if !ok {
			category = overview.Categories[0]
		}

		category.Blocks = append(category.Blocks, block)
	}

	return overview, nil
}

// Posts returns one page of the post listing, newest activity first. Page
// numbers start at 1 and out-of-range paging inputs fall back to defaults.
// Hidden posts are stripped down to their identifying fields. The total
// count is computed only for unfiltered listings.
func (s *forumService) Posts(ctx context.Context, block, page, size int) (models.PostPage, error) {
	log := logger.FromContext(ctx)

	if page < 1 {
		page = 1
	}
	if size < 1 || size > maxPageSize {
		size = defaultPageSize
	}

	limit := uint64(size)
	offset := uint64(page-1) * limit

	posts, err := s.forumRepository.ListPosts(ctx, block, limit, offset)
	if err != nil {
		log.Err(err).Int("block", block).Msg("post listing failed")
		return models.PostPage{}, fmt.Errorf("post listing failed: %w", err)
	}

	for i, post := range posts {
		if post.Hidden {
			posts[i] = models.Post{
				PID:          post.PID,
				Author:       post.Author,
				Block:        post.Block,
				CreationTime: post.CreationTime,
				Hidden:       true,
			}
		}
	}

	result := models.PostPage{Posts: posts}

	if block == 0 {
		count, err := s.forumRepository.CountPosts(ctx)
		if err != nil {
			log.Err(err).Msg("post count failed")
			return models.PostPage{}, fmt.Errorf("post count failed: %w", err)
		}
		result.Count = count
	}

	return result, nil
}
