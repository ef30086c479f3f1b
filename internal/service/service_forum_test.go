package service

import (
	"context"
	"testing"
	"time"

	"github.com/campushub/forum-server/internal/logger"
	"github.com/campushub/forum-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestForumService(repo *mockForumRepository) *forumService {
	return &forumService{forumRepository: repo, logger: logger.Nop()}
}

// ─────────────────────────────────────────────
// Overview
// ─────────────────────────────────────────────

func TestForumService_Overview_GroupsBlocksByCategory(t *testing.T) {
	repo := &mockForumRepository{
		categoriesFn: func(_ context.Context) ([]models.Category, error) {
			return []models.Category{
				{ID: 1, Name: "General"},
				{ID: 2, Name: "Academics"},
			}, nil
		},
		blocksFn: func(_ context.Context) ([]models.Block, error) {
			return []models.Block{
				{ID: 10, Category: 1, Name: "Lounge"},
				{ID: 11, Category: 1, Name: "Announcements"},
				{ID: 20, Category: 2, Name: "Homework"},
			}, nil
		},
	}
	svc := newTestForumService(repo)

	overview, err := svc.Overview(context.Background())

	require.NoError(t, err)
	require.Len(t, overview.Categories, 3)
	assert.Len(t, overview.Categories[1].Blocks, 2)
	assert.Len(t, overview.Categories[2].Blocks, 1)
	assert.Equal(t, "Homework", overview.Categories[2].Blocks[0].Name)

	// Category 0 is always present, empty here.
	require.Contains(t, overview.Categories, 0)
	assert.Empty(t, overview.Categories[0].Blocks)
}

func TestForumService_Overview_HiddenEntriesFiltered(t *testing.T) {
	repo := &mockForumRepository{
		categoriesFn: func(_ context.Context) ([]models.Category, error) {
			return []models.Category{
				{ID: 1, Name: "General"},
				{ID: 2, Name: "Secret", Hidden: true},
			}, nil
		},
		blocksFn: func(_ context.Context) ([]models.Block, error) {
			return []models.Block{
				{ID: 10, Category: 1, Name: "Lounge"},
				{ID: 11, Category: 1, Name: "Backstage", Hidden: true},
			}, nil
		},
	}
	svc := newTestForumService(repo)

	overview, err := svc.Overview(context.Background())

	require.NoError(t, err)
	require.Len(t, overview.Categories, 2)
	assert.Len(t, overview.Categories[1].Blocks, 1)
	assert.Equal(t, "Lounge", overview.Categories[1].Blocks[0].Name)
	assert.Empty(t, overview.Categories[0].Blocks)
}

func TestForumService_Overview_OrphanBlocksFoldIntoCategoryZero(t *testing.T) {
	repo := &mockForumRepository{
		categoriesFn: func(_ context.Context) ([]models.Category, error) {
			return []models.Category{
				{ID: 2, Name: "Hidden parent", Hidden: true},
			}, nil
		},
		blocksFn: func(_ context.Context) ([]models.Block, error) {
			return []models.Block{
				{ID: 10, Category: 2, Name: "Orphaned"},
				{ID: 11, Category: 99, Name: "Dangling"},
			}, nil
		},
	}
	svc := newTestForumService(repo)

	overview, err := svc.Overview(context.Background())

	require.NoError(t, err)
	require.Contains(t, overview.Categories, 0)
	assert.Len(t, overview.Categories[0].Blocks, 2)
}

func TestForumService_Overview_StorageError(t *testing.T) {
	repo := &mockForumRepository{
		categoriesFn: func(_ context.Context) ([]models.Category, error) {
			return nil, errStorage
		},
	}
	svc := newTestForumService(repo)

	_, err := svc.Overview(context.Background())

	require.ErrorIs(t, err, errStorage)
}

// ─────────────────────────────────────────────
// Posts
// ─────────────────────────────────────────────

func TestForumService_Posts_DefaultsAndOffset(t *testing.T) {
	var gotLimit, gotOffset uint64
	repo := &mockForumRepository{
		listPostsFn: func(_ context.Context, block int, limit, offset uint64) ([]models.Post, error) {
			gotLimit, gotOffset = limit, offset
			return nil, nil
		},
		countPostsFn: func(_ context.Context) (int, error) {
			return 0, nil
		},
	}
	svc := newTestForumService(repo)

	tests := []struct {
		name       string
		page, size int
		wantLimit  uint64
		wantOffset uint64
	}{
		{"defaults", 0, 0, 32, 0},
		{"explicit page", 3, 10, 10, 20},
		{"negative page falls back", -5, 10, 10, 0},
		{"oversized page size falls back", 1, 1000, 32, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Posts(context.Background(), 0, tt.page, tt.size)

			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, gotLimit)
			assert.Equal(t, tt.wantOffset, gotOffset)
		})
	}
}

func TestForumService_Posts_UnfilteredListingIncludesCount(t *testing.T) {
	repo := &mockForumRepository{
		listPostsFn: func(_ context.Context, block int, _, _ uint64) ([]models.Post, error) {
			assert.Equal(t, 0, block)
			return []models.Post{{PID: 1}}, nil
		},
		countPostsFn: func(_ context.Context) (int, error) {
			return 123, nil
		},
	}
	svc := newTestForumService(repo)

	page, err := svc.Posts(context.Background(), 0, 1, 32)

	require.NoError(t, err)
	assert.Equal(t, 123, page.Count)
	assert.Len(t, page.Posts, 1)
}

func TestForumService_Posts_BlockFilteredListingSkipsCount(t *testing.T) {
	repo := &mockForumRepository{
		listPostsFn: func(_ context.Context, block int, _, _ uint64) ([]models.Post, error) {
			assert.Equal(t, 10, block)
			return []models.Post{{PID: 1, Block: 10}}, nil
		},
		countPostsFn: func(_ context.Context) (int, error) {
			t.Fatal("count must not run for block-filtered listings")
			return 0, nil
		},
	}
	svc := newTestForumService(repo)

	page, err := svc.Posts(context.Background(), 10, 1, 32)

	require.NoError(t, err)
	assert.Zero(t, page.Count)
}

func TestForumService_Posts_HiddenPostsStripped(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	repo := &mockForumRepository{
		listPostsFn: func(_ context.Context, _ int, _, _ uint64) ([]models.Post, error) {
			return []models.Post{
				{PID: 1, Author: 5, Block: 10, Title: "visible", Content: "body", CreationTime: created},
				{PID: 2, Author: 6, Block: 10, Title: "secret", Content: "body", Hidden: true, CreationTime: created},
			}, nil
		},
		countPostsFn: func(_ context.Context) (int, error) {
			return 2, nil
		},
	}
	svc := newTestForumService(repo)

	page, err := svc.Posts(context.Background(), 0, 1, 32)

	require.NoError(t, err)
	require.Len(t, page.Posts, 2)
	assert.Equal(t, "visible", page.Posts[0].Title)

	hidden := page.Posts[1]
	assert.True(t, hidden.Hidden)
	assert.Empty(t, hidden.Title)
	assert.Empty(t, hidden.Content)
	assert.Equal(t, int64(2), hidden.PID)
	assert.Equal(t, int64(6), hidden.Author)
	assert.Equal(t, created, hidden.CreationTime)
}

func TestForumService_Posts_StorageError(t *testing.T) {
	repo := &mockForumRepository{
		listPostsFn: func(_ context.Context, _ int, _, _ uint64) ([]models.Post, error) {
			return nil, errStorage
		},
	}
	svc := newTestForumService(repo)

	_, err := svc.Posts(context.Background(), 0, 1, 32)

	require.ErrorIs(t, err, errStorage)
}
