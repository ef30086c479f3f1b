package models

import "time"

// Category is a top-level forum grouping. Hidden categories are filtered out
// of listings; their blocks fold into the implicit category 0.
type Category struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Hidden bool   `json:"-"`

	// Blocks is populated by the forum overview; it is not a stored column.
	Blocks []Block `json:"blocks"`
}

// Block is a posting board inside a category.
type Block struct {
	ID       int    `json:"id"`
	Category int    `json:"category"`
	Name     string `json:"name"`
	Hidden   bool   `json:"-"`
}

// Post is a forum thread head. Hidden posts are reduced to their bare
// identifying fields before leaving the service layer.
type Post struct {
	PID           int64     `json:"pid"`
	Author        int64     `json:"author"`
	Block         int       `json:"block"`
	Title         string    `json:"title,omitempty"`
	Content       string    `json:"content,omitempty"`
	Hidden        bool      `json:"hidden,omitempty"`
	CreationTime  time.Time `json:"creation_time"`
	LatestComment time.Time `json:"latest_comment,omitzero"`
}

// ForumOverview is the category/block hierarchy returned by GET /forum.
// Categories are keyed by id; key 0 collects blocks whose category is
// missing or hidden.
type ForumOverview struct {
	Categories map[int]*Category `json:"categories"`
}

// PostPage is one page of the post listing. Count is only populated for
// unfiltered listings.
type PostPage struct {
	Count int    `json:"count,omitempty"`
	Posts []Post `json:"posts"`
}
