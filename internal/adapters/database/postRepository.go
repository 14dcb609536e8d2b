package database

import (
	"context"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"yatube/internal/core/follower"
	"yatube/internal/core/post"
	postPort "yatube/internal/ports/post"
)

// PostRepositoryDatabase پیاده‌سازی PostRepository برای دیتابیس
type PostRepositoryDatabase struct {
	db *gorm.DB
}

// NewPostRepositoryDatabase سازنده PostRepositoryDatabase
func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := repo.db.WithContext(ctx).Omit("Author", "Group").Create(p).Error; err != nil {
		return nil, err
	}
	return repo.FindByID(ctx, p.ID)
}

// Update writes the editable columns only; author and created_at never change.
func (repo *PostRepositoryDatabase) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	var groupID any
	if p.GroupID != nil {
		groupID = *p.GroupID
	}

	err := repo.db.WithContext(ctx).
		Model(&post.Post{ID: p.ID}).
		Updates(map[string]any{
			"text":     p.Text,
			"group_id": groupID,
			"image":    p.Image,
		}).Error
	if err != nil {
		return nil, err
	}
	return repo.FindByID(ctx, p.ID)
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	var p post.Post
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, notFound(err, "post "+id.String())
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) Count(ctx context.Context, filter postPort.PostFilter) (int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Model(&post.Post{}).
		Scopes(repo.filtered(filter)).
		Count(&total).Error
	return total, err
}

func (repo *PostRepositoryDatabase) List(ctx context.Context, filter postPort.PostFilter, limit, offset int) ([]*post.Post, error) {
	posts := make([]*post.Post, 0, limit)
	err := repo.db.WithContext(ctx).
		Scopes(repo.filtered(filter)).
		Preload("Author").
		Preload("Group").
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) filtered(filter postPort.PostFilter) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if filter.GroupID != nil {
			q = q.Where("group_id = ?", *filter.GroupID)
		}
		if filter.AuthorID != nil {
			q = q.Where("author_id = ?", *filter.AuthorID)
		}
		if filter.FollowerID != nil {
			followed := repo.db.Model(&follower.Follower{}).
				Select("author_id").
				Where("follower_id = ?", *filter.FollowerID)
			q = q.Where("author_id IN (?)", followed)
		}
		return q
	}
}
