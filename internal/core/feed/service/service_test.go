package feedapp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"yatube/internal/adapters/database"
	"yatube/internal/adapters/database/dbtest"
	"yatube/internal/core/errs"
	postPort "yatube/internal/ports/post"
)

func newFeedService(t *testing.T) (*FeedService, *gorm.DB) {
	t.Helper()
	db := dbtest.New(t)
	svc := NewFeedService(
		database.NewPostRepositoryDatabase(db),
		database.NewGroupRepositoryDatabase(db),
		database.NewUserRepositoryDatabase(db),
	)
	return svc, db
}

func texts(posts []*postPort.PostDTO) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Text)
	}
	return out
}

func TestFeedService_GlobalFeed(t *testing.T) {
	ctx := context.Background()
	svc, db := newFeedService(t)
	author := dbtest.CreateUser(t, db, "leo")

	for i := 0; i < 23; i++ {
		dbtest.CreatePost(t, db, author, nil, fmt.Sprintf("post %02d", i), dbtest.Base.Add(time.Duration(i)*time.Minute))
	}

	t.Run("First page holds the ten newest posts", func(t *testing.T) {
		page, err := svc.GlobalFeed(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, 1, page.Number)
		assert.Equal(t, 3, page.TotalPages)
		require.Len(t, page.Items, 10)
		assert.Equal(t, "post 22", page.Items[0].Text)
		assert.Equal(t, "post 13", page.Items[9].Text)
		assert.Equal(t, "leo", page.Items[0].Author.Username)
	})

	t.Run("Last page holds the remainder", func(t *testing.T) {
		page, err := svc.GlobalFeed(ctx, "3")
		require.NoError(t, err)
		assert.Equal(t, []string{"post 02", "post 01", "post 00"}, texts(page.Items))
		assert.True(t, page.HasPrevious)
		assert.False(t, page.HasNext)
	})

	t.Run("Out of range page is clamped", func(t *testing.T) {
		page, err := svc.GlobalFeed(ctx, "42")
		require.NoError(t, err)
		assert.Equal(t, 3, page.Number)
		assert.Len(t, page.Items, 3)
	})

	t.Run("Pages cover every post once", func(t *testing.T) {
		seen := map[string]bool{}
		for p := 1; p <= 3; p++ {
			page, err := svc.GlobalFeed(ctx, strconv.Itoa(p))
			require.NoError(t, err)
			for _, item := range page.Items {
				assert.False(t, seen[item.ID], "duplicate %s", item.ID)
				seen[item.ID] = true
			}
		}
		assert.Len(t, seen, 23)
	})
}

func TestFeedService_GlobalFeedEmpty(t *testing.T) {
	svc, _ := newFeedService(t)

	page, err := svc.GlobalFeed(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
}

func TestFeedService_GroupFeed(t *testing.T) {
	ctx := context.Background()
	svc, db := newFeedService(t)
	author := dbtest.CreateUser(t, db, "leo")
	cats := dbtest.CreateGroup(t, db, "cats")
	dogs := dbtest.CreateGroup(t, db, "dogs")

	dbtest.CreatePost(t, db, author, cats, "cat 1", dbtest.Base)
	dbtest.CreatePost(t, db, author, dogs, "dog 1", dbtest.Base.Add(time.Minute))
	dbtest.CreatePost(t, db, author, cats, "cat 2", dbtest.Base.Add(2*time.Minute))
	dbtest.CreatePost(t, db, author, nil, "loose", dbtest.Base.Add(3*time.Minute))

	t.Run("Only the group's posts, newest first", func(t *testing.T) {
		feed, err := svc.GroupFeed(ctx, "cats", "")
		require.NoError(t, err)
		assert.Equal(t, "cats", feed.Group.Slug)
		assert.Equal(t, []string{"cat 2", "cat 1"}, texts(feed.Page.Items))
	})

	t.Run("Unknown slug is ErrNotFound", func(t *testing.T) {
		_, err := svc.GroupFeed(ctx, "birds", "")
		assert.True(t, errors.Is(err, errs.ErrNotFound))
	})
}

func TestFeedService_AuthorFeed(t *testing.T) {
	ctx := context.Background()
	svc, db := newFeedService(t)
	alice := dbtest.CreateUser(t, db, "alice")
	bob := dbtest.CreateUser(t, db, "bob")

	dbtest.CreatePost(t, db, alice, nil, "a1", dbtest.Base)
	dbtest.CreatePost(t, db, bob, nil, "b1", dbtest.Base.Add(time.Minute))
	dbtest.CreatePost(t, db, alice, nil, "a2", dbtest.Base.Add(2*time.Minute))

	t.Run("Only the author's posts", func(t *testing.T) {
		feed, err := svc.AuthorFeed(ctx, "alice", "")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, feed.Author.ID)
		assert.EqualValues(t, 2, feed.PostsCount)
		assert.Equal(t, []string{"a2", "a1"}, texts(feed.Page.Items))
	})

	t.Run("Unknown username is ErrNotFound", func(t *testing.T) {
		_, err := svc.AuthorFeed(ctx, "carol", "")
		assert.True(t, errors.Is(err, errs.ErrNotFound))
	})
}

func TestFeedService_FollowedFeed(t *testing.T) {
	ctx := context.Background()
	svc, db := newFeedService(t)
	reader := dbtest.CreateUser(t, db, "reader")
	followed := dbtest.CreateUser(t, db, "followed")
	stranger := dbtest.CreateUser(t, db, "stranger")

	mine := dbtest.CreatePost(t, db, followed, nil, "followed post", dbtest.Base)
	dbtest.CreatePost(t, db, stranger, nil, "stranger post", dbtest.Base.Add(time.Minute))

	t.Run("Nothing followed yields an empty page", func(t *testing.T) {
		page, err := svc.FollowedFeed(ctx, reader.ID, "")
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("Only followed authors' posts", func(t *testing.T) {
		dbtest.Follow(t, db, reader, followed)

		page, err := svc.FollowedFeed(ctx, reader.ID, "")
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, mine.ID.String(), page.Items[0].ID)
	})

	t.Run("Anonymous user", func(t *testing.T) {
		_, err := svc.FollowedFeed(ctx, uuid.Nil, "")
		assert.True(t, errors.Is(err, errs.ErrUnauthenticated))
	})
}
