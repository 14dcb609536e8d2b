package postapp

import (
	"context"
	"errors"
	"strings"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"yatube/internal/core/errs"
	postEntity "yatube/internal/core/post"
	commentPort "yatube/internal/ports/comment"
	groupPort "yatube/internal/ports/group"
	postPort "yatube/internal/ports/post"
)

// PostDetail is a post with its discussion, oldest comment first.
type PostDetail struct {
	Post     *postPort.PostDTO        `json:"post"`
	Comments []*commentPort.CommentDTO `json:"comments"`
}

// CommentLister supplies a post's comments for the detail view.
type CommentLister interface {
	CommentsFor(ctx context.Context, postID uuid.UUID) ([]*commentPort.CommentDTO, error)
}

type PostService struct {
	PostRepository  postPort.PostRepository
	GroupRepository groupPort.GroupRepository
	Comments        CommentLister
	Logger          *zap.Logger
}

func NewPostService(
	postRepo postPort.PostRepository,
	groupRepo groupPort.GroupRepository,
	comments CommentLister,
	logger *zap.Logger,
) *PostService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostService{
		PostRepository:  postRepo,
		GroupRepository: groupRepo,
		Comments:        comments,
		Logger:          logger,
	}
}

// CreatePost ایجاد یک پست جدید
func (s *PostService) CreatePost(ctx context.Context, authorID uuid.UUID, in postPort.PostInput) (*postPort.PostDTO, error) {
	if authorID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}

	p := &postEntity.Post{AuthorID: authorID}
	if err := s.apply(ctx, p, in); err != nil {
		return nil, err
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		s.Logger.Error("Failed to create post", zap.String("authorID", authorID.String()), zap.Error(err))
		return nil, err
	}

	s.Logger.Info("Post created", zap.String("postID", created.ID.String()), zap.String("authorID", authorID.String()))
	return postPort.NewPostDTO(created), nil
}

// EditPost replaces text, group and image of a post. Only its author may do so.
func (s *PostService) EditPost(ctx context.Context, actorID, postID uuid.UUID, in postPort.PostInput) (*postPort.PostDTO, error) {
	if actorID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}

	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p.AuthorID != actorID {
		s.Logger.Warn("Edit rejected for non-author",
			zap.String("postID", postID.String()),
			zap.String("actorID", actorID.String()))
		return nil, errs.ErrForbidden
	}

	if err := s.apply(ctx, p, in); err != nil {
		return nil, err
	}

	updated, err := s.PostRepository.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	return postPort.NewPostDTO(updated), nil
}

func (s *PostService) GetPost(ctx context.Context, postID uuid.UUID) (*PostDetail, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.Comments.CommentsFor(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &PostDetail{Post: postPort.NewPostDTO(p), Comments: comments}, nil
}

// apply validates in and copies it onto p.
func (s *PostService) apply(ctx context.Context, p *postEntity.Post, in postPort.PostInput) error {
	if strings.TrimSpace(in.Text) == "" {
		return errs.Invalid("text", "this field is required")
	}

	var groupID *uuid.UUID
	if in.GroupID != "" {
		id, err := uuid.FromString(in.GroupID)
		if err != nil {
			return errs.Invalid("group", "select a valid group")
		}
		g, err := s.GroupRepository.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return errs.Invalid("group", "select a valid group")
			}
			return err
		}
		groupID = &g.ID
	}

	p.Text = in.Text
	p.GroupID = groupID
	p.Group = nil
	p.Image = in.Image
	return nil
}
