// Package dbtest opens migrated in-memory SQLite databases and seeds fixtures for tests.
package dbtest

import (
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"yatube/internal/adapters/database"
	"yatube/internal/core/comment"
	"yatube/internal/core/follower"
	"yatube/internal/core/group"
	"yatube/internal/core/post"
	"yatube/internal/core/user"
)

// New returns a fresh migrated database that lives as long as the test.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to connect to in-memory SQLite")

	// every pooled connection to ":memory:" is its own database, so keep exactly one
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db), "Failed to migrate database schema")
	return db
}

func CreateUser(t testing.TB, db *gorm.DB, username string) *user.User {
	t.Helper()
	u := &user.User{Username: username, Name: username, Password: "password123"}
	require.NoError(t, db.Create(u).Error, "Failed to create test user")
	return u
}

func CreateGroup(t testing.TB, db *gorm.DB, slug string) *group.Group {
	t.Helper()
	g := &group.Group{Title: "Group " + slug, Slug: slug, Description: "Test group"}
	require.NoError(t, db.Create(g).Error, "Failed to create test group")
	return g
}

// CreatePost stores a post with an explicit creation time so ordering is predictable.
func CreatePost(t testing.TB, db *gorm.DB, author *user.User, g *group.Group, text string, createdAt time.Time) *post.Post {
	t.Helper()
	p := &post.Post{Text: text, AuthorID: author.ID, CreatedAt: createdAt}
	if g != nil {
		id := g.ID
		p.GroupID = &id
	}
	require.NoError(t, db.Omit("Author", "Group").Create(p).Error, "Failed to create test post")
	return p
}

func CreateComment(t testing.TB, db *gorm.DB, p *post.Post, author *user.User, text string, createdAt time.Time) *comment.Comment {
	t.Helper()
	c := &comment.Comment{PostID: p.ID, AuthorID: author.ID, Text: text, CreatedAt: createdAt}
	require.NoError(t, db.Omit("Author").Create(c).Error, "Failed to create test comment")
	return c
}

func Follow(t testing.TB, db *gorm.DB, who, author *user.User) {
	t.Helper()
	f := &follower.Follower{FollowerID: who.ID, AuthorID: author.ID}
	require.NoError(t, db.Omit("Follower", "Author").Create(f).Error, "Failed to create test follow")
}

// Base is a fixed timestamp tests offset from.
var Base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// IDs extracts post ids in order.
func IDs(posts []*post.Post) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}
