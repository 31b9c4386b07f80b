package handler

import (
	"net/http"

	"club-portal/internal/dispatch"
	"club-portal/internal/model"

	"github.com/gin-gonic/gin"
)

// CollectionHandler serves the bulk whole-collection replacement endpoints.
// The dispatcher infers the single intended mutation by identity diffing, so
// a bulk body should differ from the current collection by one element; a
// body that both adds and edits persists only the first detected change
// remotely (the full body is still committed locally).
type CollectionHandler struct {
	d *dispatch.Dispatcher
}

func NewCollectionHandler(d *dispatch.Dispatcher) *CollectionHandler {
	return &CollectionHandler{d: d}
}

// PUT /api/collections/:name
func (h *CollectionHandler) Replace(c *gin.Context) {
	ctx := c.Request.Context()
	switch c.Param("name") {
	case "supervisors":
		var rows []*model.Supervisor
		if err := c.ShouldBindJSON(&rows); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		h.d.SetSupervisors(ctx, replace(rows))
	case "plans":
		var rows []*model.ProgramPlan
		if err := c.ShouldBindJSON(&rows); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		h.d.SetPlans(ctx, replace(rows))
	case "members":
		var rows []*model.Member
		if err := c.ShouldBindJSON(&rows); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		h.d.SetMembers(ctx, replace(rows))
	case "reports":
		var rows []*model.ProgramReport
		if err := c.ShouldBindJSON(&rows); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		h.d.SetReports(ctx, replace(rows))
	case "daily-reports":
		var rows []*model.DailyReport
		if err := c.ShouldBindJSON(&rows); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		h.d.SetDailyReports(ctx, replace(rows))
	case "distinguished":
		var rows []*model.DistinguishedSupervisor
		if err := c.ShouldBindJSON(&rows); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		h.d.SetDistinguished(ctx, replace(rows))
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown collection"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// replace wraps a literal collection in the updater form the dispatcher
// resolves against the latest snapshot.
func replace[T any](rows []T) func([]T) []T {
	return func([]T) []T { return rows }
}
