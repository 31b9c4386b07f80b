package dispatch

import (
	"context"
	"fmt"
	"testing"
	"time"

	"club-portal/internal/model"
	"club-portal/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRemote records every write the dispatcher issues.
type fakeRemote struct {
	calls []string
}

func (f *fakeRemote) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeRemote) UpsertSupervisor(_ context.Context, s *model.Supervisor) {
	f.record("upsert supervisor %s", s.ID)
}
func (f *fakeRemote) DeleteSupervisor(_ context.Context, id string) {
	f.record("delete supervisor %s", id)
}
func (f *fakeRemote) UpsertPlan(_ context.Context, p *model.ProgramPlan) {
	f.record("upsert plan %s %s", p.ID, p.Status)
}
func (f *fakeRemote) DeletePlan(_ context.Context, id string) { f.record("delete plan %s", id) }
func (f *fakeRemote) UpsertMember(_ context.Context, m *model.Member) {
	f.record("upsert member %s", m.ID)
}
func (f *fakeRemote) DeleteMember(_ context.Context, id string) { f.record("delete member %s", id) }
func (f *fakeRemote) UpsertReport(_ context.Context, r *model.ProgramReport) {
	f.record("upsert report %s", r.ID)
}
func (f *fakeRemote) UpsertDailyReport(_ context.Context, r *model.DailyReport) {
	f.record("upsert daily %s", r.ID)
}
func (f *fakeRemote) DeleteDailyReport(_ context.Context, id string) {
	f.record("delete daily %s", id)
}
func (f *fakeRemote) UpsertDistinguished(_ context.Context, d *model.DistinguishedSupervisor) {
	f.record("upsert distinguished %s", d.ID)
}
func (f *fakeRemote) DeleteDistinguished(_ context.Context, id string) {
	f.record("delete distinguished %s", id)
}
func (f *fakeRemote) SaveSettings(_ context.Context, s *model.SystemSettings) {
	f.record("save settings")
}

func newTestDispatcher(t *testing.T) (*Dispatcher, *fakeRemote, *store.Snapshot) {
	t.Helper()
	remote := &fakeRemote{}
	snap := store.New()
	d := New(remote, snap)
	d.now = func() time.Time { return time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC) }
	return d, remote, snap
}

func seedPlans(snap *store.Snapshot, plans ...*model.ProgramPlan) {
	snap.UpdatePlans(func([]*model.ProgramPlan) []*model.ProgramPlan { return plans })
}

func TestSetPlansDeletion(t *testing.T) {
	d, remote, snap := newTestDispatcher(t)
	a := &model.ProgramPlan{ID: "a"}
	b := &model.ProgramPlan{ID: "b"}
	c := &model.ProgramPlan{ID: "c"}
	seedPlans(snap, a, b, c)
	remote.calls = nil

	d.SetPlans(context.Background(), func(cur []*model.ProgramPlan) []*model.ProgramPlan {
		return []*model.ProgramPlan{a, c}
	})

	assert.Equal(t, []string{"delete plan b"}, remote.calls)
	require.Len(t, snap.Plans(), 2)
	assert.Same(t, a, snap.Plans()[0])
	assert.Same(t, c, snap.Plans()[1])
}

func TestSetPlansUpdate(t *testing.T) {
	d, remote, snap := newTestDispatcher(t)
	a := &model.ProgramPlan{ID: "a"}
	b := &model.ProgramPlan{ID: "b", ProgramName: "old", Status: model.PlanPending}
	seedPlans(snap, a, b)
	remote.calls = nil

	// Edited in place as a new instance under the same id.
	edited := *b
	edited.ProgramName = "new"
	d.SetPlans(context.Background(), func(cur []*model.ProgramPlan) []*model.ProgramPlan {
		return []*model.ProgramPlan{a, &edited}
	})

	assert.Equal(t, []string{"upsert plan b pending"}, remote.calls)
	assert.Equal(t, "new", snap.Plans()[1].ProgramName)
}

func TestSetPlansNoOp(t *testing.T) {
	d, remote, snap := newTestDispatcher(t)
	a := &model.ProgramPlan{ID: "a"}
	b := &model.ProgramPlan{ID: "b"}
	seedPlans(snap, a, b)
	remote.calls = nil

	d.SetPlans(context.Background(), func(cur []*model.ProgramPlan) []*model.ProgramPlan {
		return cur // same instances, harmless re-render
	})

	assert.Empty(t, remote.calls, "identical collections issue no remote call")
	require.Len(t, snap.Plans(), 2)
}

func TestSetPlansUpdaterSeesLatestSnapshot(t *testing.T) {
	d, _, snap := newTestDispatcher(t)
	a := &model.ProgramPlan{ID: "a"}
	seedPlans(snap, a)

	var seen []*model.ProgramPlan
	d.SetPlans(context.Background(), func(cur []*model.ProgramPlan) []*model.ProgramPlan {
		seen = cur
		return cur
	})
	require.Len(t, seen, 1)
	assert.Same(t, a, seen[0])
}

func TestSetPlansAddIsUpsert(t *testing.T) {
	d, remote, snap := newTestDispatcher(t)
	a := &model.ProgramPlan{ID: "a"}
	seedPlans(snap, a)
	remote.calls = nil

	added := &model.ProgramPlan{ID: "n", Status: model.PlanPending}
	d.SetPlans(context.Background(), func(cur []*model.ProgramPlan) []*model.ProgramPlan {
		return append(cur, added)
	})

	assert.Equal(t, []string{"upsert plan n pending"}, remote.calls)
}

func TestSaveReportMarksPlanExecuted(t *testing.T) {
	d, remote, snap := newTestDispatcher(t)
	seedPlans(snap, &model.ProgramPlan{ID: "p1", Date: "2024-03-01", Status: model.PlanInProgress})
	remote.calls = nil

	d.SaveReport(context.Background(), &model.ProgramReport{ID: "r1", PlanID: "p1"})

	assert.Equal(t, []string{"upsert report r1", "upsert plan p1 executed"}, remote.calls)
	assert.Equal(t, model.PlanExecuted, snap.Plans()[0].Status)
}

func TestSaveReportExecutedPlanNotRewritten(t *testing.T) {
	d, remote, snap := newTestDispatcher(t)
	seedPlans(snap, &model.ProgramPlan{ID: "p1", Date: "2024-03-01", Status: model.PlanExecuted})
	remote.calls = nil

	d.SaveReport(context.Background(), &model.ProgramReport{ID: "r1", PlanID: "p1"})

	assert.Equal(t, []string{"upsert report r1"}, remote.calls)
}

func TestSavePlanNormalizesMonthYear(t *testing.T) {
	d, _, snap := newTestDispatcher(t)
	p := d.SavePlan(context.Background(), &model.ProgramPlan{Date: "2024-07-09"})
	assert.Equal(t, "2024-07", p.MonthYear)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, model.PlanPending, p.Status)
	require.Len(t, snap.Plans(), 1)
}

func TestDistinguishedMonthReplaced(t *testing.T) {
	d, remote, snap := newTestDispatcher(t)
	prior := d.SaveDistinguished(context.Background(), &model.DistinguishedSupervisor{
		ID: "d1", SupervisorID: "s1", MonthYear: "2024-03",
	})
	remote.calls = nil

	d.SaveDistinguished(context.Background(), &model.DistinguishedSupervisor{
		ID: "d2", SupervisorID: "s2", MonthYear: "2024-03",
	})

	assert.Equal(t, []string{"delete distinguished d1", "upsert distinguished d2"}, remote.calls)
	entries := snap.Distinguished()
	require.Len(t, entries, 1)
	assert.Equal(t, "d2", entries[0].ID)
	assert.NotEqual(t, prior.ID, entries[0].ID)
}

func TestDistinguishedOtherMonthsKept(t *testing.T) {
	d, _, snap := newTestDispatcher(t)
	d.SaveDistinguished(context.Background(), &model.DistinguishedSupervisor{ID: "d1", SupervisorID: "s1", MonthYear: "2024-02"})
	d.SaveDistinguished(context.Background(), &model.DistinguishedSupervisor{ID: "d2", SupervisorID: "s2", MonthYear: "2024-03"})
	assert.Len(t, snap.Distinguished(), 2)
}

func TestMembershipNumbering(t *testing.T) {
	d, _, snap := newTestDispatcher(t)
	for i := 1; i <= 3; i++ {
		m := d.SaveMember(context.Background(), &model.Member{FullName: fmt.Sprintf("member %d", i)})
		assert.Equal(t, fmt.Sprintf("MEM-2024-%04d", i), m.MembershipNumber)
		assert.Equal(t, model.MemberPending, m.Status)
	}
	assert.Len(t, snap.Members(), 3)
}

func TestMembershipNumberKeptWhenSupplied(t *testing.T) {
	d, _, _ := newTestDispatcher(t)
	m := d.SaveMember(context.Background(), &model.Member{FullName: "x", MembershipNumber: "MEM-2020-0042"})
	assert.Equal(t, "MEM-2020-0042", m.MembershipNumber)
}

func TestSaveDailyReportDerivesDayName(t *testing.T) {
	d, _, _ := newTestDispatcher(t)
	r := d.SaveDailyReport(context.Background(), &model.DailyReport{ReportDate: "2024-03-20"})
	assert.Equal(t, "Wednesday", r.DayName)
	assert.NotEmpty(t, r.ClubName, "club name defaults from settings")
}

func TestSaveDailyReportClampsCapacities(t *testing.T) {
	d, _, _ := newTestDispatcher(t)
	rows := make([]model.ActivityRow, 9)
	images := make([]string, 5)
	r := d.SaveDailyReport(context.Background(), &model.DailyReport{ReportDate: "2024-03-20", Activities: rows, Images: images})
	assert.Len(t, r.Activities, DailyActivitySlots)
	assert.Len(t, r.Images, DailyImageLimit)
}

func TestSaveSupervisorHashesPlainPassword(t *testing.T) {
	d, _, snap := newTestDispatcher(t)
	s := d.SaveSupervisor(context.Background(), &model.Supervisor{Name: "n", Email: "n@x.com", Password: "secret"})
	assert.NotEqual(t, "secret", s.Password)
	assert.Contains(t, s.Password, "$2")
	require.Len(t, snap.Supervisors(), 1)

	// Re-saving the record does not double-hash.
	again := d.SaveSupervisor(context.Background(), s)
	assert.Equal(t, s.Password, again.Password)
}

func TestSetDistinguishedUpsertKeepsMonthRule(t *testing.T) {
	d, remote, snap := newTestDispatcher(t)
	d1 := &model.DistinguishedSupervisor{ID: "d1", SupervisorID: "s1", MonthYear: "2024-03"}
	snap.UpdateDistinguished(func([]*model.DistinguishedSupervisor) []*model.DistinguishedSupervisor {
		return []*model.DistinguishedSupervisor{d1}
	})
	remote.calls = nil

	d2 := &model.DistinguishedSupervisor{ID: "d2", SupervisorID: "s2", MonthYear: "2024-03"}
	d.SetDistinguished(context.Background(), func(cur []*model.DistinguishedSupervisor) []*model.DistinguishedSupervisor {
		return append(cur, d2)
	})

	entries := snap.Distinguished()
	require.Len(t, entries, 1)
	assert.Equal(t, "d2", entries[0].ID)
}
