package httpapi

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"

	"yatube/internal/adapters/httpapi/middleware"
	commentPort "yatube/internal/ports/comment"
	followerPort "yatube/internal/ports/follower"
	postPort "yatube/internal/ports/post"
	userPort "yatube/internal/ports/user"

	feedapp "yatube/internal/core/feed/service"
	postapp "yatube/internal/core/post/service"
)

// UserUseCase: اینترفیسِ لازم برای کنترلر/روتر (Inbound Port)
type UserUseCase interface {
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	RegisterUser(ctx context.Context, name, family, username, password string) (*userPort.UserDTO, error)
	GetByUsername(ctx context.Context, username string) (*userPort.UserDTO, error)
	ParseToken(raw string) (uuid.UUID, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, in postPort.PostInput) (*postPort.PostDTO, error)
	EditPost(ctx context.Context, actorID, postID uuid.UUID, in postPort.PostInput) (*postPort.PostDTO, error)
	GetPost(ctx context.Context, postID uuid.UUID) (*postapp.PostDetail, error)
}

type CommentUseCase interface {
	AddComment(ctx context.Context, postID, authorID uuid.UUID, text string) (*commentPort.CommentDTO, error)
}

type FollowerUseCase interface {
	FollowUser(ctx context.Context, followerID, authorID uuid.UUID) error
	UnfollowUser(ctx context.Context, followerID, authorID uuid.UUID) error
	IsFollowing(ctx context.Context, followerID, authorID uuid.UUID) (bool, error)
	GetFollowersByUserID(ctx context.Context, authorID uuid.UUID) ([]*followerPort.FollowerDTO, error)
	GetFollowingByUserID(ctx context.Context, followerID uuid.UUID) ([]*followerPort.FollowerDTO, error)
}

type FeedUseCase interface {
	GlobalFeed(ctx context.Context, rawPage string) (feedapp.PostPage, error)
	GroupFeed(ctx context.Context, slug, rawPage string) (*feedapp.GroupFeed, error)
	AuthorFeed(ctx context.Context, username, rawPage string) (*feedapp.AuthorFeed, error)
	FollowedFeed(ctx context.Context, userID uuid.UUID, rawPage string) (feedapp.PostPage, error)
}

type PageCacheUseCase interface {
	GetOrRender(ctx context.Context, key string, ttl time.Duration, render func() ([]byte, error)) ([]byte, error)
	Invalidate(ctx context.Context, key string)
	InvalidateAll(ctx context.Context)
}

// Deps is everything the router needs; use cases are injected from main.
type Deps struct {
	Users     UserUseCase
	Posts     PostUseCase
	Comments  CommentUseCase
	Followers FollowerUseCase
	Feeds     FeedUseCase
	PageCache PageCacheUseCase

	CacheTTL   time.Duration
	AdminToken string
}

// فقط روتینگ: UseCase از بیرون تزریق می‌شود
func SetupRoutes(d Deps) *gin.Engine {
	r := gin.Default()
	uc := NewUserController(d.Users)
	pc := NewPostController(d.Posts, d.Comments)
	fc := NewFollowerController(d.Followers, d.Users)
	feeds := NewFeedController(d.Feeds, d.Followers, d.PageCache, d.CacheTTL)
	ac := NewAdminController(d.PageCache)

	auth := middleware.JWTAuthMiddleware(d.Users)
	optionalAuth := middleware.OptionalJWTAuthMiddleware(d.Users)

	// مسیرهای ثبت‌نام و ورود بدون JWT Middleware
	r.POST("/register", uc.RegisterUser)
	r.POST("/login", uc.LoginUser)

	r.GET("/", optionalAuth, feeds.Index)
	r.GET("/group/:slug", optionalAuth, feeds.GroupPosts)
	r.GET("/profile/:username", optionalAuth, feeds.Profile)
	r.GET("/follow", auth, feeds.FollowIndex)

	r.GET("/posts/:post_id", optionalAuth, pc.PostDetail)
	r.POST("/create", auth, pc.CreatePost)
	r.POST("/posts/:post_id/edit", auth, pc.EditPost)
	r.POST("/posts/:post_id/comment", auth, pc.AddComment)

	// مسیرهای دنبال کردن و دریافت دنبال‌کنندگان با JWT Middleware
	r.POST("/profile/:username/follow", auth, fc.ProfileFollow)
	r.POST("/profile/:username/unfollow", auth, fc.ProfileUnfollow)
	r.GET("/followers", auth, fc.GetFollowersByUserID)
	r.GET("/following", auth, fc.GetFollowingByUserID)

	admin := r.Group("/admin", middleware.AdminToken(d.AdminToken))
	admin.POST("/cache/clear", ac.ClearCache)
	admin.DELETE("/cache/:key", ac.InvalidateKey)

	return r
}
