package handler

import (
	"net/http"

	"club-portal/internal/dispatch"
	"club-portal/internal/model"
	"club-portal/internal/store"

	"github.com/gin-gonic/gin"
)

type SupervisorHandler struct {
	d    *dispatch.Dispatcher
	snap *store.Snapshot
}

func NewSupervisorHandler(d *dispatch.Dispatcher, snap *store.Snapshot) *SupervisorHandler {
	return &SupervisorHandler{d: d, snap: snap}
}

// GET /api/supervisors
func (h *SupervisorHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, sanitizeAll(h.snap.Supervisors()))
}

// POST /api/supervisors
func (h *SupervisorHandler) Save(c *gin.Context) {
	var s model.Supervisor
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if s.Name == "" || s.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and email are required"})
		return
	}
	saved := h.d.SaveSupervisor(c.Request.Context(), &s)
	c.JSON(http.StatusOK, sanitize(saved))
}

// DELETE /api/supervisors/:id
func (h *SupervisorHandler) Delete(c *gin.Context) {
	h.d.RemoveSupervisor(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
