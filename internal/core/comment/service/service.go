package commentapp

import (
	"context"
	"strings"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	commentEntity "yatube/internal/core/comment"
	"yatube/internal/core/errs"
	commentPort "yatube/internal/ports/comment"
	postPort "yatube/internal/ports/post"
)

// CommentService appends comments to posts. Comments are never edited or removed.
type CommentService struct {
	CommentRepository commentPort.CommentRepository
	PostRepository    postPort.PostRepository
	Logger            *zap.Logger
}

func NewCommentService(commentRepo commentPort.CommentRepository, postRepo postPort.PostRepository, logger *zap.Logger) *CommentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommentService{
		CommentRepository: commentRepo,
		PostRepository:    postRepo,
		Logger:            logger,
	}
}

// AddComment stores text as authorID's comment on postID. The post must exist and the
// text must not be blank.
func (s *CommentService) AddComment(ctx context.Context, postID, authorID uuid.UUID, text string) (*commentPort.CommentDTO, error) {
	if authorID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}
	if _, err := s.PostRepository.FindByID(ctx, postID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, errs.Invalid("text", "this field is required")
	}

	c, err := s.CommentRepository.Create(ctx, &commentEntity.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     text,
	})
	if err != nil {
		s.Logger.Error("Failed to add comment", zap.String("postID", postID.String()), zap.Error(err))
		return nil, err
	}

	s.Logger.Info("Comment added", zap.String("postID", postID.String()), zap.String("commentID", c.ID.String()))
	return commentPort.NewCommentDTO(c), nil
}

func (s *CommentService) CommentsFor(ctx context.Context, postID uuid.UUID) ([]*commentPort.CommentDTO, error) {
	comments, err := s.CommentRepository.ListByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	out := make([]*commentPort.CommentDTO, 0, len(comments))
	for _, c := range comments {
		out = append(out, commentPort.NewCommentDTO(c))
	}
	return out, nil
}
