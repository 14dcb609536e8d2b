package database

import (
	"context"
	"errors"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"yatube/internal/core/follower"
)

// FollowerRepositoryDatabase پیاده‌سازی FollowerRepository برای دیتابیس
type FollowerRepositoryDatabase struct {
	db *gorm.DB
}

// NewFollowerRepositoryDatabase سازنده FollowerRepositoryDatabase
func NewFollowerRepositoryDatabase(db *gorm.DB) *FollowerRepositoryDatabase {
	return &FollowerRepositoryDatabase{db: db}
}

// FollowUser inserts the edge unless the (follower, author) pair already exists.
// A unique violation from a concurrent insert of the same pair counts as success.
func (repo *FollowerRepositoryDatabase) FollowUser(ctx context.Context, f *follower.Follower) error {
	err := repo.db.WithContext(ctx).
		Omit("Follower", "Author").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(f).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (repo *FollowerRepositoryDatabase) UnfollowUser(ctx context.Context, followerID, authorID uuid.UUID) error {
	return repo.db.WithContext(ctx).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Delete(&follower.Follower{}).Error
}

func (repo *FollowerRepositoryDatabase) GetFollowersByUserID(ctx context.Context, authorID uuid.UUID) ([]*follower.Follower, error) {
	followers := []*follower.Follower{}
	err := repo.db.WithContext(ctx).
		Preload("Follower").
		Where("author_id = ?", authorID).
		Order("created_at ASC").
		Find(&followers).Error
	if err != nil {
		return nil, err
	}
	return followers, nil
}

func (repo *FollowerRepositoryDatabase) GetFollowingByUserID(ctx context.Context, followerID uuid.UUID) ([]*follower.Follower, error) {
	following := []*follower.Follower{}
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("follower_id = ?", followerID).
		Order("created_at ASC").
		Find(&following).Error
	if err != nil {
		return nil, err
	}
	return following, nil
}

func (repo *FollowerRepositoryDatabase) IsFollowing(ctx context.Context, followerID, authorID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&follower.Follower{}).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
