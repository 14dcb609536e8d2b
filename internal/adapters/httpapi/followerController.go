package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"

	"yatube/internal/adapters/httpapi/middleware"
	"yatube/internal/core/errs"
)

type FollowerController struct {
	fc FollowerUseCase
	uc UserUseCase
}

func NewFollowerController(fc FollowerUseCase, uc UserUseCase) *FollowerController {
	return &FollowerController{fc: fc, uc: uc}
}

// ProfileFollow follows the profile's author. Following yourself is ignored.
func (ctl *FollowerController) ProfileFollow(c *gin.Context) {
	authorID, ok := ctl.profileUserID(c)
	if !ok {
		return
	}

	// گرفتن userID از context
	userID := middleware.CurrentUserID(c)
	err := ctl.fc.FollowUser(c.Request.Context(), userID, authorID)
	if errors.Is(err, errs.ErrSelfFollow) {
		c.JSON(http.StatusOK, gin.H{"following": false})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": true})
}

func (ctl *FollowerController) ProfileUnfollow(c *gin.Context) {
	authorID, ok := ctl.profileUserID(c)
	if !ok {
		return
	}

	if err := ctl.fc.UnfollowUser(c.Request.Context(), middleware.CurrentUserID(c), authorID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": false})
}

func (ctl *FollowerController) GetFollowersByUserID(c *gin.Context) {
	followers, err := ctl.fc.GetFollowersByUserID(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, followers)
}

func (ctl *FollowerController) GetFollowingByUserID(c *gin.Context) {
	following, err := ctl.fc.GetFollowingByUserID(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, following)
}

func (ctl *FollowerController) profileUserID(c *gin.Context) (uuid.UUID, bool) {
	author, err := ctl.uc.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return uuid.Nil, false
	}
	id, err := uuid.FromString(author.ID)
	if err != nil {
		respondError(c, err)
		return uuid.Nil, false
	}
	return id, true
}
