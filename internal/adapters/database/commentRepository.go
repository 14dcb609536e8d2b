package database

import (
	"context"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"yatube/internal/core/comment"
)

type CommentRepositoryDatabase struct {
	db *gorm.DB
}

func NewCommentRepositoryDatabase(db *gorm.DB) *CommentRepositoryDatabase {
	return &CommentRepositoryDatabase{db: db}
}

func (repo *CommentRepositoryDatabase) Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	if err := repo.db.WithContext(ctx).Omit("Author").Create(c).Error; err != nil {
		return nil, err
	}

	var stored comment.Comment
	if err := repo.db.WithContext(ctx).Preload("Author").Where("id = ?", c.ID).First(&stored).Error; err != nil {
		return nil, notFound(err, "comment "+c.ID.String())
	}
	return &stored, nil
}

func (repo *CommentRepositoryDatabase) ListByPostID(ctx context.Context, postID uuid.UUID) ([]*comment.Comment, error) {
	comments := []*comment.Comment{}
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
