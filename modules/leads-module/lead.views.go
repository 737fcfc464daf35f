package leads_module

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Controller) indexPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"title": "Register your interest"})
}

// leadsPage renders the listing. A failed read shows an error notice instead
// of an empty table.
func (h *Controller) leadsPage(c *gin.Context) {
	leads, err := h.store.GetAll(c.Request.Context())
	if err != nil {
		status, message := classify(err)
		_ = c.Error(err)
		log.WithError(err).Error("render leads page")
		c.HTML(status, "leads.html", gin.H{"title": "Registered leads", "error": message})
		return
	}
	c.HTML(http.StatusOK, "leads.html", gin.H{"title": "Registered leads", "leads": leads})
}
