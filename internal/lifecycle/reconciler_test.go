package lifecycle

import (
	"testing"
	"time"

	"club-portal/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 3, 20, 15, 4, 5, 0, time.Local) // mid-afternoon on purpose

func plan(id, date string, status model.PlanStatus) *model.ProgramPlan {
	return &model.ProgramPlan{ID: id, Date: date, Status: status}
}

func report(planID string) *model.ProgramReport {
	return &model.ProgramReport{ID: "r_" + planID, PlanID: planID}
}

func TestReportAlwaysWins(t *testing.T) {
	// A linked report forces EXECUTED regardless of where the date sits.
	for _, date := range []string{"2024-01-01", "2024-03-20", "2024-12-31"} {
		for _, status := range []model.PlanStatus{model.PlanPending, model.PlanInProgress, model.PlanNotExecuted} {
			updated, changed := Reconcile(today, []*model.ProgramPlan{plan("p1", date, status)}, []*model.ProgramReport{report("p1")})
			require.Len(t, changed, 1, "date=%s status=%s", date, status)
			assert.Equal(t, model.PlanExecuted, updated[0].Status)
		}
	}
}

func TestReportedExecutedPlanUnchanged(t *testing.T) {
	updated, changed := Reconcile(today, []*model.ProgramPlan{plan("p1", "2024-01-01", model.PlanExecuted)}, []*model.ProgramReport{report("p1")})
	assert.Empty(t, changed)
	assert.Equal(t, model.PlanExecuted, updated[0].Status)
}

func TestFourteenDayLapse(t *testing.T) {
	cases := []struct {
		name string
		date string
		from model.PlanStatus
		want model.PlanStatus
	}{
		{"15 days ago lapses", "2024-03-05", model.PlanPending, model.PlanNotExecuted},
		{"15 days ago lapses from in_progress", "2024-03-05", model.PlanInProgress, model.PlanNotExecuted},
		{"exactly 14 days ago holds, pending starts", "2024-03-06", model.PlanPending, model.PlanInProgress},
		{"exactly 14 days ago holds in_progress", "2024-03-06", model.PlanInProgress, model.PlanInProgress},
		{"already written off stays", "2024-03-01", model.PlanNotExecuted, model.PlanNotExecuted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			updated, _ := Reconcile(today, []*model.ProgramPlan{plan("p1", tc.date, tc.from)}, nil)
			assert.Equal(t, tc.want, updated[0].Status)
		})
	}
}

func TestInProgressRollover(t *testing.T) {
	updated, changed := Reconcile(today, []*model.ProgramPlan{
		plan("due", "2024-03-20", model.PlanPending),
		plan("future", "2024-03-21", model.PlanPending),
	}, nil)
	assert.Equal(t, model.PlanInProgress, updated[0].Status)
	assert.Equal(t, model.PlanPending, updated[1].Status)
	require.Len(t, changed, 1)
	assert.Equal(t, "due", changed[0].ID)
}

func TestIdempotentForFixedDay(t *testing.T) {
	plans := []*model.ProgramPlan{
		plan("p1", "2024-03-01", model.PlanPending),
		plan("p2", "2024-03-20", model.PlanPending),
		plan("p3", "2024-03-25", model.PlanPending),
		plan("p4", "2024-02-01", model.PlanExecuted),
	}
	reports := []*model.ProgramReport{report("p3")}

	first, changedFirst := Reconcile(today, plans, reports)
	assert.NotEmpty(t, changedFirst)

	second, changedSecond := Reconcile(today, first, reports)
	assert.Empty(t, changedSecond, "second pass must produce no further transitions")
	for i := range first {
		assert.Same(t, first[i], second[i], "unchanged plans keep their instances")
	}
}

func TestUnchangedPlansKeepIdentity(t *testing.T) {
	p := plan("p1", "2024-03-21", model.PlanPending)
	updated, changed := Reconcile(today, []*model.ProgramPlan{p}, nil)
	assert.Empty(t, changed)
	assert.Same(t, p, updated[0])
}

func TestUnparseableDateLeftAlone(t *testing.T) {
	p := plan("p1", "soon", model.PlanPending)
	updated, changed := Reconcile(today, []*model.ProgramPlan{p}, nil)
	assert.Empty(t, changed)
	assert.Same(t, p, updated[0])
}

func TestChangedPlansAreFreshInstances(t *testing.T) {
	p := plan("p1", "2024-03-20", model.PlanPending)
	updated, changed := Reconcile(today, []*model.ProgramPlan{p}, nil)
	require.Len(t, changed, 1)
	assert.NotSame(t, p, updated[0])
	assert.Equal(t, model.PlanPending, p.Status, "input is never mutated in place")
}
