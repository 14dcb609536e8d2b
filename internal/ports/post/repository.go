package post

import (
	"context"
	"time"

	"github.com/gofrs/uuid"

	"yatube/internal/core/post"
	groupPort "yatube/internal/ports/group"
	userPort "yatube/internal/ports/user"
)

// PostFilter narrows a listing. Nil fields do not filter; FollowerID keeps posts whose
// author is followed by that user.
type PostFilter struct {
	GroupID    *uuid.UUID
	AuthorID   *uuid.UUID
	FollowerID *uuid.UUID
}

// PostRepository پورت برای ذخیره‌سازی و بازیابی پست‌ها
type PostRepository interface {
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	Update(ctx context.Context, post *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error)
	Count(ctx context.Context, filter PostFilter) (int64, error)
	// List returns posts newest first (created_at, then id, descending).
	List(ctx context.Context, filter PostFilter, limit, offset int) ([]*post.Post, error)
}

// PostInput is what a user submits when creating or editing a post.
type PostInput struct {
	Text    string `json:"text"`
	GroupID string `json:"group_id"`
	Image   string `json:"image"`
}

// DTOها برای UseCase
type PostDTO struct {
	ID        string              `json:"id"`
	Text      string              `json:"text"`
	Author    *userPort.UserDTO   `json:"author"`
	Group     *groupPort.GroupDTO `json:"group,omitempty"`
	Image     string              `json:"image,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

func NewPostDTO(p *post.Post) *PostDTO {
	if p == nil {
		return nil
	}
	return &PostDTO{
		ID:        p.ID.String(),
		Text:      p.Text,
		Author:    userPort.NewUserDTO(&p.Author),
		Group:     groupPort.NewGroupDTO(p.Group),
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
	}
}

func NewPostDTOs(posts []*post.Post) []*PostDTO {
	out := make([]*PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostDTO(p))
	}
	return out
}
