package handler

import (
	"net/http"

	"club-portal/internal/dispatch"
	"club-portal/internal/model"
	"club-portal/internal/store"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	d    *dispatch.Dispatcher
	snap *store.Snapshot
}

func NewSettingsHandler(d *dispatch.Dispatcher, snap *store.Snapshot) *SettingsHandler {
	return &SettingsHandler{d: d, snap: snap}
}

// GET /api/settings — public; the landing view needs it before login.
func (h *SettingsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.snap.Settings())
}

// PUT /api/settings — overwrites the singleton wholesale.
func (h *SettingsHandler) Save(c *gin.Context) {
	var s model.SystemSettings
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if s.ClubName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "club_name is required"})
		return
	}
	h.d.SaveSettings(c.Request.Context(), &s)
	c.JSON(http.StatusOK, &s)
}
