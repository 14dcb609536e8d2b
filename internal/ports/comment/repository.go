package comment

import (
	"context"
	"time"

	"github.com/gofrs/uuid"

	"yatube/internal/core/comment"
	userPort "yatube/internal/ports/user"
)

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error)
	// ListByPostID returns comments oldest first (created_at, then id, ascending).
	ListByPostID(ctx context.Context, postID uuid.UUID) ([]*comment.Comment, error)
}

type CommentDTO struct {
	ID        string            `json:"id"`
	PostID    string            `json:"post_id"`
	Author    *userPort.UserDTO `json:"author"`
	Text      string            `json:"text"`
	CreatedAt time.Time         `json:"created_at"`
}

func NewCommentDTO(c *comment.Comment) *CommentDTO {
	if c == nil {
		return nil
	}
	return &CommentDTO{
		ID:        c.ID.String(),
		PostID:    c.PostID.String(),
		Author:    userPort.NewUserDTO(&c.Author),
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}
