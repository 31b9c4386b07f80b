// Package lifecycle derives the status of program plans from the calendar and
// from the existence of execution reports.
package lifecycle

import (
	"time"

	"club-portal/internal/model"
)

const dateLayout = "2006-01-02"

// NotExecutedAfterDays is how long a plan may stay unreported past its date
// before it is written off.
const NotExecutedAfterDays = 14

// Midnight strips t to its calendar date. All reconciliation math runs on
// UTC midnights so day counts are exact regardless of zone or DST.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Reconcile computes the corrected status of every plan for the given day.
// It returns the full collection with corrected plans replaced by fresh
// instances, plus the changed plans themselves so the caller can mirror each
// one to the store exactly once. Running it again on its own output for the
// same day changes nothing.
func Reconcile(today time.Time, plans []*model.ProgramPlan, reports []*model.ProgramReport) (updated, changed []*model.ProgramPlan) {
	reported := make(map[string]bool, len(reports))
	for _, r := range reports {
		reported[r.PlanID] = true
	}

	day := Midnight(today)
	updated = make([]*model.ProgramPlan, len(plans))
	for i, p := range plans {
		next := nextStatus(day, p, reported[p.ID])
		if next == p.Status {
			updated[i] = p
			continue
		}
		cp := *p
		cp.Status = next
		updated[i] = &cp
		changed = append(changed, &cp)
	}
	return updated, changed
}

// nextStatus applies the transition rules in priority order: a linked report
// always forces EXECUTED; an unreported plan more than NotExecutedAfterDays
// past its date is written off; a pending plan whose date has arrived starts.
func nextStatus(today time.Time, p *model.ProgramPlan, hasReport bool) model.PlanStatus {
	if hasReport {
		return model.PlanExecuted
	}
	date, err := time.Parse(dateLayout, p.Date)
	if err != nil {
		return p.Status
	}
	if days := int(today.Sub(date) / (24 * time.Hour)); days > NotExecutedAfterDays {
		return model.PlanNotExecuted
	}
	if !today.Before(date) && p.Status == model.PlanPending {
		return model.PlanInProgress
	}
	return p.Status
}
