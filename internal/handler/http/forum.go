package http

import (
	"net/http"
	"strconv"

	"github.com/campushub/forum-server/internal/logger"
)

// forumOverview handles GET /forum: the visible category/block hierarchy.
func (h *Handler) forumOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	overview, err := h.services.ForumService.Overview(ctx)
	if err != nil {
		log.Err(err).Msg("forum overview failed")
		fail(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	ok(w, overview)
}

// forumPosts handles GET /forum/posts?block=&page=&size=: one page of the
// post listing, newest activity first. All parameters are optional;
// malformed numbers are rejected, out-of-range values fall back to
// defaults downstream.
func (h *Handler) forumPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	block, err := queryInt(r, "block")
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid block")
		return
	}
	page, err := queryInt(r, "page")
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid page")
		return
	}
	size, err := queryInt(r, "size")
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid size")
		return
	}

	posts, err := h.services.ForumService.Posts(ctx, block, page, size)
	if err != nil {
		log.Err(err).Msg("post listing failed")
		fail(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	ok(w, posts)
}

// queryInt parses an optional integer query parameter, zero when absent.
func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
