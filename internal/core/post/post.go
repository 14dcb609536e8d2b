package post

import (
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"yatube/internal/core/group"
	"yatube/internal/core/user"
)

type Post struct {
	ID        uuid.UUID    `gorm:"primaryKey;type:char(36)"`
	Text      string       `gorm:"type:text;not null"`
	AuthorID  uuid.UUID    `gorm:"type:char(36);not null;index"`
	Author    user.User    `gorm:"foreignKey:AuthorID"`
	GroupID   *uuid.UUID   `gorm:"type:char(36);index"`
	Group     *group.Group `gorm:"foreignKey:GroupID"`
	Image     string       `gorm:"type:varchar(255)"` // reference to an uploaded file, upload itself happens elsewhere
	CreatedAt time.Time    `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime"`
}

func (p *Post) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}
