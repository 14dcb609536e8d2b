package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AdminController struct{ cache PageCacheUseCase }

func NewAdminController(cache PageCacheUseCase) *AdminController {
	return &AdminController{cache: cache}
}

func (ctl *AdminController) ClearCache(c *gin.Context) {
	ctl.cache.InvalidateAll(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func (ctl *AdminController) InvalidateKey(c *gin.Context) {
	ctl.cache.Invalidate(c.Request.Context(), c.Param("key"))
	c.Status(http.StatusNoContent)
}
