package feeds

import (
	"yatube/storage/models"
)

type Post struct {
	ID        uint   `json:"id"`
	Text      string `json:"text"`
	Author    string `json:"author"`
	Group     string `json:"group,omitempty"`
	Image     string `json:"image,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

type Response struct {
	Posts      []Post `json:"posts"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalPages int    `json:"total_pages"`
	TotalPosts int64  `json:"total_posts"`
}

// NewResponse builds the serialized page plus pagination metadata shared by
// the feed, home, group and profile listings.
func NewResponse(posts []models.Post, page int, size int, total int64) Response {
	serialized := make([]Post, len(posts))
	for i, post := range posts {
		serialized[i] = SerializePost(post)
	}
	return Response{
		Posts:      serialized,
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages(total, size),
		TotalPosts: total,
	}
}

func SerializePost(post models.Post) Post {
	result := Post{
		ID:        post.ID,
		Text:      post.Text,
		Author:    post.Author.Username,
		Image:     post.Image,
		CreatedAt: post.CreatedAt.UTC().Unix(),
	}
	if post.Group != nil {
		result.Group = post.Group.Slug
	}
	return result
}

func totalPages(total int64, size int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
