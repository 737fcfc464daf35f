package leads_module

import (
	"github.com/gin-gonic/gin"

	"leadcapture/metrics"
	"leadcapture/views"
)

// RegisterRoutes mounts the pages, the lead API and the ops endpoints.
func (h *Controller) RegisterRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(views.Templates())

	r.GET("/", h.indexPage)
	r.GET("/leads", h.leadsPage)

	api := r.Group("/api/leads")
	api.POST("", h.create)
	api.GET("", h.list)
	api.GET("/export", h.export)
	api.GET("/duplicates", h.duplicates)
	api.GET("/:id", h.get)
	api.PUT("/:id", h.update)
	api.DELETE("/:id", h.remove)

	r.GET("/healthz", h.healthz)
	r.GET("/metrics", metrics.Exposer())
}
