package leads_module

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"leadcapture/commons"
	"leadcapture/commons/enums"
	"leadcapture/database/entities"
	"leadcapture/metrics"
	"leadcapture/middlewares"
)

// Store is what the controller needs from the storage layer.
type Store interface {
	Create(ctx context.Context, in LeadPayload) (uint, error)
	GetAll(ctx context.Context) ([]entities.Lead, error)
	GetByID(ctx context.Context, id uint) (entities.Lead, error)
	Update(ctx context.Context, id uint, in LeadPayload) error
	Delete(ctx context.Context, id uint) error
	Ping(ctx context.Context) error
}

type Controller struct {
	store Store
}

func NewController(store Store) *Controller {
	return &Controller{store: store}
}

func (h *Controller) create(c *gin.Context) {
	in, err := bindLead(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	id, err := h.store.Create(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	metrics.LeadsCreated.Inc()
	commons.Success(c, http.StatusCreated, enums.LEAD_CREATED, gin.H{"lead_id": id})
}

func (h *Controller) list(c *gin.Context) {
	leads, err := h.store.GetAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	commons.Success(c, http.StatusOK, "", gin.H{"leads": leads})
}

func (h *Controller) get(c *gin.Context) {
	id, ok := leadID(c)
	if !ok {
		h.fail(c, ErrNotFound)
		return
	}
	lead, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	commons.Success(c, http.StatusOK, "", gin.H{"lead": lead})
}

func (h *Controller) update(c *gin.Context) {
	id, ok := leadID(c)
	if !ok {
		h.fail(c, ErrNotFound)
		return
	}
	in, err := bindLead(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.store.Update(c.Request.Context(), id, in); err != nil {
		// a missing target on update is a rejected write, not a missing resource
		if errors.Is(err, ErrNotFound) {
			commons.Fail(c, http.StatusBadRequest, enums.LEAD_NOT_FOUND)
			return
		}
		h.fail(c, err)
		return
	}
	commons.Success(c, http.StatusOK, enums.LEAD_UPDATED, nil)
}

func (h *Controller) remove(c *gin.Context) {
	id, ok := leadID(c)
	if !ok {
		h.fail(c, ErrNotFound)
		return
	}
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	commons.Success(c, http.StatusOK, enums.LEAD_DELETED, nil)
}

func (h *Controller) export(c *gin.Context) {
	leads, err := h.store.GetAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="leads.csv"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)
	if err := ExportCSV(c.Writer, leads); err != nil {
		_ = c.Error(err)
		log.WithError(err).Error("export leads")
	}
}

func (h *Controller) duplicates(c *gin.Context) {
	leads, err := h.store.GetAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	dups, err := DuplicatePhones(leads)
	if err != nil {
		h.fail(c, err)
		return
	}
	commons.Success(c, http.StatusOK, "", gin.H{"duplicates": dups})
}

func (h *Controller) healthz(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		log.WithError(err).Warn("health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": enums.HEALTH_UNAVAILABLE})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": enums.HEALTH_OK})
}

// leadID parses the :id path segment. Anything but a positive integer is
// treated as an unknown lead.
func leadID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// fail maps an error onto the response envelope. Internal detail is logged,
// never returned.
func (h *Controller) fail(c *gin.Context, err error) {
	status, message := classify(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		log.WithError(err).WithField("request_id", c.GetString(middlewares.RequestIDKey)).Error("lead request failed")
	}
	commons.Fail(c, status, message)
}

func classify(err error) (int, string) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		metrics.LeadsRejected.WithLabelValues("validation").Inc()
		return http.StatusBadRequest, verr.Error()
	case errors.Is(err, ErrDuplicateEmail):
		metrics.LeadsRejected.WithLabelValues("duplicate_email").Inc()
		return http.StatusBadRequest, enums.EMAIL_REGISTERED
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, enums.LEAD_NOT_FOUND
	case errors.Is(err, ErrStoreUnavailable):
		metrics.StoreErrors.WithLabelValues("unavailable").Inc()
		return http.StatusServiceUnavailable, enums.STORE_UNAVAILABLE
	}
	metrics.StoreErrors.WithLabelValues("internal").Inc()
	return http.StatusInternalServerError, enums.SERVER_ERROR
}
