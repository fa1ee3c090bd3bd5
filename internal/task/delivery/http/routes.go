package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the form paths to Handler methods. The form lives at
// the site root, which is also where it posts back to.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("", h.ShowForm)
	rg.POST("", h.Submit)
}
