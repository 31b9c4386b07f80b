package handler

import (
	"net/http"
	"time"

	"club-portal/internal/dispatch"
	"club-portal/internal/model"
	"club-portal/internal/store"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type PlanHandler struct {
	d    *dispatch.Dispatcher
	snap *store.Snapshot
}

func NewPlanHandler(d *dispatch.Dispatcher, snap *store.Snapshot) *PlanHandler {
	return &PlanHandler{d: d, snap: snap}
}

// GET /api/plans
func (h *PlanHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.snap.Plans())
}

// POST /api/plans — create or update one plan.
func (h *PlanHandler) Save(c *gin.Context) {
	var p model.ProgramPlan
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if _, err := time.Parse(dateLayout, p.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	if p.ParticipantsCount < 0 || p.Budget < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "participants and budget must be non-negative"})
		return
	}
	c.JSON(http.StatusOK, h.d.SavePlan(c.Request.Context(), &p))
}

// DELETE /api/plans/:id
func (h *PlanHandler) Delete(c *gin.Context) {
	h.d.RemovePlan(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
