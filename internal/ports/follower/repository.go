package follower

import (
	"context"

	"github.com/gofrs/uuid"

	"yatube/internal/core/follower"
)

// FollowerRepository پورت برای ذخیره‌سازی و بازیابی دنبال‌کنندگان
type FollowerRepository interface {
	// FollowUser stores the edge; an already existing edge is not an error.
	FollowUser(ctx context.Context, follower *follower.Follower) error
	UnfollowUser(ctx context.Context, followerID, authorID uuid.UUID) error
	// GetFollowersByUserID lists edges pointing at authorID, with Follower loaded.
	GetFollowersByUserID(ctx context.Context, authorID uuid.UUID) ([]*follower.Follower, error)
	// GetFollowingByUserID lists edges starting at followerID, with Author loaded.
	GetFollowingByUserID(ctx context.Context, followerID uuid.UUID) ([]*follower.Follower, error)
	IsFollowing(ctx context.Context, followerID, authorID uuid.UUID) (bool, error)
}

// DTOها برای UseCase
type FollowerDTO struct {
	ID         string `json:"id"`
	FollowerID string `json:"followerId"`
	AuthorID   string `json:"authorId"`
	Username   string `json:"username"`
}
