package feedapp

import (
	"context"

	"github.com/gofrs/uuid"

	"yatube/internal/core/errs"
	"yatube/internal/core/group"
	"yatube/internal/core/pagination"
	"yatube/internal/core/user"
	groupPort "yatube/internal/ports/group"
	postPort "yatube/internal/ports/post"
	userPort "yatube/internal/ports/user"
)

// PostPage is one page of a feed.
type PostPage = pagination.Page[*postPort.PostDTO]

// GroupFeed is a group's page of posts together with the group itself.
type GroupFeed struct {
	Group *group.Group
	Page  PostPage
}

// AuthorFeed is an author's page of posts together with the author and their post count.
type AuthorFeed struct {
	Author     *user.User
	PostsCount int64
	Page       PostPage
}

// FeedService builds the four post listings. Every listing is newest first and cut into
// pages of PageSize.
type FeedService struct {
	PostRepository  postPort.PostRepository
	GroupRepository groupPort.GroupRepository
	UserRepository  userPort.UserRepository
	PageSize        int
}

func NewFeedService(
	postRepo postPort.PostRepository,
	groupRepo groupPort.GroupRepository,
	userRepo userPort.UserRepository,
) *FeedService {
	return &FeedService{
		PostRepository:  postRepo,
		GroupRepository: groupRepo,
		UserRepository:  userRepo,
		PageSize:        pagination.DefaultPageSize,
	}
}

// GlobalFeed pages through every post.
func (s *FeedService) GlobalFeed(ctx context.Context, rawPage string) (PostPage, error) {
	page, _, err := s.page(ctx, postPort.PostFilter{}, rawPage)
	return page, err
}

// GroupFeed pages through the posts filed under the group with slug.
func (s *FeedService) GroupFeed(ctx context.Context, slug, rawPage string) (*GroupFeed, error) {
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	page, _, err := s.page(ctx, postPort.PostFilter{GroupID: &g.ID}, rawPage)
	if err != nil {
		return nil, err
	}
	return &GroupFeed{Group: g, Page: page}, nil
}

// AuthorFeed pages through the posts written by username.
func (s *FeedService) AuthorFeed(ctx context.Context, username, rawPage string) (*AuthorFeed, error) {
	author, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	page, total, err := s.page(ctx, postPort.PostFilter{AuthorID: &author.ID}, rawPage)
	if err != nil {
		return nil, err
	}
	return &AuthorFeed{Author: author, PostsCount: total, Page: page}, nil
}

// FollowedFeed pages through the posts of every author userID follows.
func (s *FeedService) FollowedFeed(ctx context.Context, userID uuid.UUID, rawPage string) (PostPage, error) {
	if userID == uuid.Nil {
		return PostPage{}, errs.ErrUnauthenticated
	}
	page, _, err := s.page(ctx, postPort.PostFilter{FollowerID: &userID}, rawPage)
	return page, err
}

func (s *FeedService) page(ctx context.Context, filter postPort.PostFilter, rawPage string) (PostPage, int64, error) {
	total, err := s.PostRepository.Count(ctx, filter)
	if err != nil {
		return PostPage{}, 0, err
	}

	w := pagination.Resolve(total, rawPage, s.PageSize)
	if total == 0 {
		return pagination.NewPage([]*postPort.PostDTO{}, w), 0, nil
	}

	posts, err := s.PostRepository.List(ctx, filter, w.Limit, w.Offset)
	if err != nil {
		return PostPage{}, 0, err
	}
	return pagination.NewPage(postPort.NewPostDTOs(posts), w), total, nil
}
