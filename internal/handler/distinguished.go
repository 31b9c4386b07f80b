package handler

import (
	"net/http"
	"regexp"

	"club-portal/internal/dispatch"
	"club-portal/internal/model"
	"club-portal/internal/store"

	"github.com/gin-gonic/gin"
)

var monthYearRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

type DistinguishedHandler struct {
	d    *dispatch.Dispatcher
	snap *store.Snapshot
}

func NewDistinguishedHandler(d *dispatch.Dispatcher, snap *store.Snapshot) *DistinguishedHandler {
	return &DistinguishedHandler{d: d, snap: snap}
}

// GET /api/distinguished
func (h *DistinguishedHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.snap.Distinguished())
}

// POST /api/distinguished — replaces any prior award for the same month.
func (h *DistinguishedHandler) Save(c *gin.Context) {
	var item model.DistinguishedSupervisor
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if !monthYearRe.MatchString(item.MonthYear) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month_year must be YYYY-MM"})
		return
	}
	if item.SupervisorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "supervisor_id is required"})
		return
	}
	c.JSON(http.StatusOK, h.d.SaveDistinguished(c.Request.Context(), &item))
}

// DELETE /api/distinguished/:id
func (h *DistinguishedHandler) Delete(c *gin.Context) {
	h.d.RemoveDistinguished(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
