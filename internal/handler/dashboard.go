package handler

import (
	"net/http"

	"club-portal/internal/model"
	"club-portal/internal/store"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	snap *store.Snapshot
}

func NewDashboardHandler(snap *store.Snapshot) *DashboardHandler {
	return &DashboardHandler{snap: snap}
}

// GET /api/dashboard — the public landing-view figures.
func (h *DashboardHandler) Stats(c *gin.Context) {
	plans := h.snap.Plans()
	stats := model.DashboardStats{
		MembersCount:     len(h.snap.Members()),
		SupervisorsCount: len(h.snap.Supervisors()),
		TotalPrograms:    len(plans),
		ProgramsByDomain: make(map[string]int),
		ProgramsByStatus: make(map[string]int),
	}
	for _, p := range plans {
		stats.ProgramsByDomain[p.Domain]++
		stats.ProgramsByStatus[string(p.Status)]++
	}
	c.JSON(http.StatusOK, stats)
}
