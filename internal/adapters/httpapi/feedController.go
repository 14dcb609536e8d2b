package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"yatube/internal/adapters/httpapi/middleware"
	"yatube/internal/core/pagination"
	groupPort "yatube/internal/ports/group"
	userPort "yatube/internal/ports/user"
)

const (
	indexPageKeyPrefix = "index_page:"
	// pages past this are rendered on every request so the key space stays bounded
	maxCachedIndexPage = 100
)

type FeedController struct {
	feeds     FeedUseCase
	followers FollowerUseCase
	cache     PageCacheUseCase
	cacheTTL  time.Duration
}

func NewFeedController(feeds FeedUseCase, followers FollowerUseCase, cache PageCacheUseCase, cacheTTL time.Duration) *FeedController {
	return &FeedController{feeds: feeds, followers: followers, cache: cache, cacheTTL: cacheTTL}
}

// Index serves the global feed. The rendered body is cached per normalised page number, so
// new posts show up once the entry expires.
func (ctl *FeedController) Index(c *gin.Context) {
	ctx := c.Request.Context()
	rawPage := c.Query("page")

	render := func() ([]byte, error) {
		page, err := ctl.feeds.GlobalFeed(ctx, rawPage)
		if err != nil {
			return nil, err
		}
		return json.Marshal(page)
	}

	var (
		body []byte
		err  error
	)
	if n := pagination.ParsePageNumber(rawPage); n <= maxCachedIndexPage {
		body, err = ctl.cache.GetOrRender(ctx, indexPageKey(n), ctl.cacheTTL, render)
	} else {
		body, err = render()
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func indexPageKey(n int) string {
	return indexPageKeyPrefix + strconv.Itoa(n)
}

func (ctl *FeedController) GroupPosts(c *gin.Context) {
	feed, err := ctl.feeds.GroupFeed(c.Request.Context(), c.Param("slug"), c.Query("page"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"group": groupPort.NewGroupDTO(feed.Group),
		"page":  feed.Page,
	})
}

// Profile shows an author's posts and whether the current user follows them.
func (ctl *FeedController) Profile(c *gin.Context) {
	ctx := c.Request.Context()
	feed, err := ctl.feeds.AuthorFeed(ctx, c.Param("username"), c.Query("page"))
	if err != nil {
		respondError(c, err)
		return
	}

	following, err := ctl.followers.IsFollowing(ctx, middleware.CurrentUserID(c), feed.Author.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"author":      userPort.NewUserDTO(feed.Author),
		"posts_count": feed.PostsCount,
		"following":   following,
		"page":        feed.Page,
	})
}

func (ctl *FeedController) FollowIndex(c *gin.Context) {
	page, err := ctl.feeds.FollowedFeed(c.Request.Context(), middleware.CurrentUserID(c), c.Query("page"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
