package handler

import (
	"net/http"

	"club-portal/internal/dispatch"
	"club-portal/internal/model"
	"club-portal/internal/store"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	d    *dispatch.Dispatcher
	snap *store.Snapshot
}

func NewReportHandler(d *dispatch.Dispatcher, snap *store.Snapshot) *ReportHandler {
	return &ReportHandler{d: d, snap: snap}
}

// GET /api/reports
func (h *ReportHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.snap.Reports())
}

// POST /api/reports — saving a report also marks its plan executed.
func (h *ReportHandler) Save(c *gin.Context) {
	var r model.ProgramReport
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if r.PlanID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plan_id is required"})
		return
	}
	if len(r.Images) > dispatch.ReportImageLimit {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at most 4 images"})
		return
	}
	c.JSON(http.StatusOK, h.d.SaveReport(c.Request.Context(), &r))
}
