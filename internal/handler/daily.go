package handler

import (
	"net/http"

	"club-portal/internal/dispatch"
	"club-portal/internal/model"
	"club-portal/internal/store"

	"github.com/gin-gonic/gin"
)

type DailyReportHandler struct {
	d    *dispatch.Dispatcher
	snap *store.Snapshot
}

func NewDailyReportHandler(d *dispatch.Dispatcher, snap *store.Snapshot) *DailyReportHandler {
	return &DailyReportHandler{d: d, snap: snap}
}

// GET /api/daily-reports
func (h *DailyReportHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.snap.DailyReports())
}

// POST /api/daily-reports
func (h *DailyReportHandler) Save(c *gin.Context) {
	var r model.DailyReport
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if len(r.Activities) > dispatch.DailyActivitySlots {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at most 6 activity rows"})
		return
	}
	if len(r.Images) > dispatch.DailyImageLimit {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at most 3 images"})
		return
	}
	c.JSON(http.StatusOK, h.d.SaveDailyReport(c.Request.Context(), &r))
}

// DELETE /api/daily-reports/:id
func (h *DailyReportHandler) Delete(c *gin.Context) {
	h.d.RemoveDailyReport(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/daily-reports/activities?date=YYYY-MM-DD — seeds the activities
// table from plans scheduled on the same day.
func (h *DailyReportHandler) SuggestActivities(c *gin.Context) {
	date := c.Query("date")
	rows := make([]model.ActivityRow, 0, dispatch.DailyActivitySlots)
	for _, p := range h.snap.Plans() {
		if p.Date == date {
			rows = append(rows, model.ActivityRow{Activity: p.ProgramName, Beneficiaries: p.ParticipantsCount})
			if len(rows) == dispatch.DailyActivitySlots {
				break
			}
		}
	}
	c.JSON(http.StatusOK, rows)
}
