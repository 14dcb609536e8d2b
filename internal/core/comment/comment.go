package comment

import (
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"yatube/internal/core/user"
)

// Comment is append-only: nothing updates or deletes it once stored.
type Comment struct {
	ID        uuid.UUID `gorm:"primaryKey;type:char(36)"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;index"`
	AuthorID  uuid.UUID `gorm:"type:char(36);not null"`
	Author    user.User `gorm:"foreignKey:AuthorID"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (c *Comment) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}
