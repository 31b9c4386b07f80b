package handler

import (
	"fmt"
	"net/http"

	"club-portal/internal/logger"
	"club-portal/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type ExportHandler struct {
	snap *store.Snapshot
}

func NewExportHandler(snap *store.Snapshot) *ExportHandler {
	return &ExportHandler{snap: snap}
}

// GET /api/export/plans.xlsx — the printable plan register.
func (h *ExportHandler) Plans(c *gin.Context) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Plans"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Month", "Date", "Program", "Domain", "Supervisor",
		"Audience", "Participants", "Budget", "Executor", "Status", "Notes"}
	for i, hd := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, hd)
	}

	for row, p := range h.snap.Plans() {
		values := []any{p.MonthYear, p.Date, p.ProgramName, p.Domain, p.SupervisorName,
			p.TargetAudience, p.ParticipantsCount, p.Budget, p.ExecutorName, string(p.Status), p.Notes}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Disposition", `attachment; filename="plans.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		logger.Error("export failed", "op", "export_plans", "err", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	logger.Info("export.ok", "op", "export_plans", "rows", fmt.Sprint(len(h.snap.Plans())))
}
