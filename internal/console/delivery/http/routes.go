package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Page routes
// require the X-Console-Session header.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/sessions", h.CreateSession)
	rg.GET("/entities", h.ListEntities)

	pages := rg.Group("/pages/:entity", h.requireSession())
	{
		pages.GET("", h.GetPage)
		pages.POST("/load", h.LoadPage)
		pages.PUT("/selection", h.Select)
		pages.POST("/modals/:modal/open", h.OpenModal)
		pages.POST("/modals/:modal/close", h.CloseModal)
		pages.POST("/create", h.Create)
		pages.POST("/update", h.Update)
		pages.POST("/removals", h.RequestRemoval)
		pages.POST("/removals/:token/confirm", h.ConfirmRemoval)
		pages.DELETE("/removals/:token", h.CancelRemoval)
		pages.GET("/notices", h.Notices)
	}
}
