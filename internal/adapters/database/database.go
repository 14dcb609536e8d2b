package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"yatube/internal/core/comment"
	"yatube/internal/core/errs"
	"yatube/internal/core/follower"
	"yatube/internal/core/group"
	"yatube/internal/core/post"
	"yatube/internal/core/user"
)

// Migrate creates or updates every table the app owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&group.Group{},
		&post.Post{},
		&comment.Comment{},
		&follower.Follower{},
	)
}

// notFound maps gorm's missing-row error onto errs.ErrNotFound and leaves others untouched.
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, errs.ErrNotFound)
	}
	return err
}
