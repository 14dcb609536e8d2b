package follower

import (
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"yatube/internal/core/user"
)

// Follower is a "FollowerID follows AuthorID" edge. The composite unique index keeps
// at most one edge per pair even when two requests insert it at once.
type Follower struct {
	ID         uuid.UUID `gorm:"primaryKey;type:char(36)"`
	FollowerID uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_follower_author,priority:1"`
	Follower   user.User `gorm:"foreignKey:FollowerID"`
	AuthorID   uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_follower_author,priority:2;index"`
	Author     user.User `gorm:"foreignKey:AuthorID"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (f *Follower) BeforeCreate(*gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}
