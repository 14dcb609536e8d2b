package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"

	"yatube/internal/adapters/httpapi/middleware"
	"yatube/internal/core/errs"
	postPort "yatube/internal/ports/post"
)

type PostController struct {
	pc PostUseCase
	cc CommentUseCase
}

func NewPostController(pc PostUseCase, cc CommentUseCase) *PostController {
	return &PostController{pc: pc, cc: cc}
}

func (ctl *PostController) PostDetail(c *gin.Context) {
	postID, ok := pathUUID(c, "post_id")
	if !ok {
		return
	}
	detail, err := ctl.pc.GetPost(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	var req postPort.PostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := ctl.pc.CreatePost(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// EditPost sends anyone but the author back to the untouched post.
func (ctl *PostController) EditPost(c *gin.Context) {
	postID, ok := pathUUID(c, "post_id")
	if !ok {
		return
	}
	var req postPort.PostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	res, err := ctl.pc.EditPost(c.Request.Context(), middleware.CurrentUserID(c), postID, req)
	if errors.Is(err, errs.ErrForbidden) {
		c.Redirect(http.StatusSeeOther, "/posts/"+postID.String())
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) AddComment(c *gin.Context) {
	postID, ok := pathUUID(c, "post_id")
	if !ok {
		return
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	res, err := ctl.cc.AddComment(c.Request.Context(), postID, middleware.CurrentUserID(c), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// pathUUID reads a uuid path parameter; a malformed one cannot name anything, so it is a 404.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.FromString(c.Param(name))
	if err != nil {
		respondError(c, errs.ErrNotFound)
		return uuid.Nil, false
	}
	return id, true
}
