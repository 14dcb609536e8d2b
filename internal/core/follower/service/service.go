package followerapp

import (
	"context"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"yatube/internal/core/errs"
	followerEntity "yatube/internal/core/follower"
	"yatube/internal/core/user"
	followerPort "yatube/internal/ports/follower"
)

type FollowerService struct {
	FollowerRepository followerPort.FollowerRepository
	Logger             *zap.Logger
}

func NewFollowerService(repo followerPort.FollowerRepository, logger *zap.Logger) *FollowerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FollowerService{
		FollowerRepository: repo,
		Logger:             logger,
	}
}

// FollowUser makes followerID follow authorID. Following someone already followed is a no-op.
func (s *FollowerService) FollowUser(ctx context.Context, followerID, authorID uuid.UUID) error {
	if followerID == uuid.Nil {
		return errs.ErrUnauthenticated
	}
	if followerID == authorID {
		s.Logger.Debug("Cannot follow yourself", zap.String("userID", followerID.String()))
		return errs.ErrSelfFollow
	}

	f := &followerEntity.Follower{
		FollowerID: followerID,
		AuthorID:   authorID,
	}
	if err := s.FollowerRepository.FollowUser(ctx, f); err != nil {
		return err
	}

	s.Logger.Info("User followed", zap.String("followerID", followerID.String()), zap.String("authorID", authorID.String()))
	return nil
}

// UnfollowUser removes the edge if there is one.
func (s *FollowerService) UnfollowUser(ctx context.Context, followerID, authorID uuid.UUID) error {
	if followerID == uuid.Nil {
		return errs.ErrUnauthenticated
	}
	return s.FollowerRepository.UnfollowUser(ctx, followerID, authorID)
}

func (s *FollowerService) IsFollowing(ctx context.Context, followerID, authorID uuid.UUID) (bool, error) {
	if followerID == uuid.Nil {
		return false, nil
	}
	return s.FollowerRepository.IsFollowing(ctx, followerID, authorID)
}

// AuthorsFollowedBy lists the users followerID follows.
func (s *FollowerService) AuthorsFollowedBy(ctx context.Context, followerID uuid.UUID) ([]user.User, error) {
	following, err := s.FollowerRepository.GetFollowingByUserID(ctx, followerID)
	if err != nil {
		return nil, err
	}

	authors := make([]user.User, 0, len(following))
	for _, f := range following {
		authors = append(authors, f.Author)
	}
	return authors, nil
}

func (s *FollowerService) GetFollowersByUserID(ctx context.Context, authorID uuid.UUID) ([]*followerPort.FollowerDTO, error) {
	followers, err := s.FollowerRepository.GetFollowersByUserID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	followerDTOs := make([]*followerPort.FollowerDTO, 0, len(followers))
	for _, f := range followers {
		followerDTOs = append(followerDTOs, &followerPort.FollowerDTO{
			ID:         f.ID.String(),
			FollowerID: f.FollowerID.String(),
			AuthorID:   f.AuthorID.String(),
			Username:   f.Follower.Username,
		})
	}
	return followerDTOs, nil
}

func (s *FollowerService) GetFollowingByUserID(ctx context.Context, followerID uuid.UUID) ([]*followerPort.FollowerDTO, error) {
	following, err := s.FollowerRepository.GetFollowingByUserID(ctx, followerID)
	if err != nil {
		return nil, err
	}

	followingDTOs := make([]*followerPort.FollowerDTO, 0, len(following))
	for _, f := range following {
		followingDTOs = append(followingDTOs, &followerPort.FollowerDTO{
			ID:         f.ID.String(),
			FollowerID: f.FollowerID.String(),
			AuthorID:   f.AuthorID.String(),
			Username:   f.Author.Username,
		})
	}
	return followingDTOs, nil
}
