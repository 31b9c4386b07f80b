// Package dispatch propagates local mutations to the remote store. Every
// mutation commits to the snapshot first (writes are optimistic; the gateway
// swallows remote failures), then mirrors at most one record per change.
//
// The explicit Save*/Remove* intents are the primary API. The Set* methods
// keep the legacy whole-collection replacement contract alive for bulk
// callers, inferring the single intended mutation by object identity.
package dispatch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"club-portal/internal/model"
	"club-portal/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const dateLayout = "2006-01-02"

// Capacity limits carried over from the printable document layouts.
const (
	ReportImageLimit   = 4
	DailyImageLimit    = 3
	DailyActivitySlots = 6
)

// Remote is the write surface of the persistence gateway. Calls never fail.
type Remote interface {
	UpsertSupervisor(ctx context.Context, s *model.Supervisor)
	DeleteSupervisor(ctx context.Context, id string)
	UpsertPlan(ctx context.Context, p *model.ProgramPlan)
	DeletePlan(ctx context.Context, id string)
	UpsertMember(ctx context.Context, m *model.Member)
	DeleteMember(ctx context.Context, id string)
	UpsertReport(ctx context.Context, r *model.ProgramReport)
	UpsertDailyReport(ctx context.Context, r *model.DailyReport)
	DeleteDailyReport(ctx context.Context, id string)
	UpsertDistinguished(ctx context.Context, d *model.DistinguishedSupervisor)
	DeleteDistinguished(ctx context.Context, id string)
	SaveSettings(ctx context.Context, s *model.SystemSettings)
}

type Dispatcher struct {
	remote Remote
	snap   *store.Snapshot
	now    func() time.Time
}

func New(remote Remote, snap *store.Snapshot) *Dispatcher {
	return &Dispatcher{remote: remote, snap: snap, now: time.Now}
}

// --- Supervisors ---

func (d *Dispatcher) SaveSupervisor(ctx context.Context, s *model.Supervisor) *model.Supervisor {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	// Plain passwords are hashed on the way in; seed accounts keep theirs.
	if s.Password != "" && !strings.HasPrefix(s.Password, "$2") {
		if h, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost); err == nil {
			s.Password = string(h)
		}
	}
	d.snap.UpdateSupervisors(upsertByID(s))
	d.remote.UpsertSupervisor(ctx, s)
	return s
}

func (d *Dispatcher) RemoveSupervisor(ctx context.Context, id string) {
	d.snap.UpdateSupervisors(removeByID[*model.Supervisor](id))
	d.remote.DeleteSupervisor(ctx, id)
}

func (d *Dispatcher) SetSupervisors(ctx context.Context, update func([]*model.Supervisor) []*model.Supervisor) {
	old, cur := d.snap.UpdateSupervisors(update)
	switch ch := diff(old, cur); ch.op {
	case opDelete:
		d.remote.DeleteSupervisor(ctx, ch.deleteID)
	case opUpsert:
		d.remote.UpsertSupervisor(ctx, ch.upsert)
	}
}

// --- Plans ---

func (d *Dispatcher) SavePlan(ctx context.Context, p *model.ProgramPlan) *model.ProgramPlan {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = model.PlanPending
	}
	if len(p.Date) >= 7 {
		p.MonthYear = p.Date[:7]
	}
	d.snap.UpdatePlans(upsertByID(p))
	d.remote.UpsertPlan(ctx, p)
	return p
}

func (d *Dispatcher) RemovePlan(ctx context.Context, id string) {
	d.snap.UpdatePlans(removeByID[*model.ProgramPlan](id))
	d.remote.DeletePlan(ctx, id)
}

func (d *Dispatcher) SetPlans(ctx context.Context, update func([]*model.ProgramPlan) []*model.ProgramPlan) {
	old, cur := d.snap.UpdatePlans(update)
	switch ch := diff(old, cur); ch.op {
	case opDelete:
		d.remote.DeletePlan(ctx, ch.deleteID)
	case opUpsert:
		d.remote.UpsertPlan(ctx, ch.upsert)
	}
}

// --- Reports ---

// SaveReport documents a plan's execution. The linked plan is forced to
// EXECUTED before this returns, independent of the periodic reconciliation.
func (d *Dispatcher) SaveReport(ctx context.Context, r *model.ProgramReport) *model.ProgramReport {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.ReportNumber == "" {
		r.ReportNumber = fmt.Sprintf("RPT-%d-%04d", d.now().Year(), len(d.snap.Reports())+1)
	}
	if len(r.Images) > ReportImageLimit {
		r.Images = r.Images[:ReportImageLimit]
	}
	d.snap.UpdateReports(upsertByID(r))
	d.remote.UpsertReport(ctx, r)
	d.markPlanExecuted(ctx, r.PlanID)
	return r
}

func (d *Dispatcher) SetReports(ctx context.Context, update func([]*model.ProgramReport) []*model.ProgramReport) {
	old, cur := d.snap.UpdateReports(update)
	if ch := diff(old, cur); ch.op == opUpsert {
		d.remote.UpsertReport(ctx, ch.upsert)
		d.markPlanExecuted(ctx, ch.upsert.PlanID)
	}
}

func (d *Dispatcher) markPlanExecuted(ctx context.Context, planID string) {
	for _, p := range d.snap.Plans() {
		if p.ID != planID {
			continue
		}
		if p.Status != model.PlanExecuted {
			cp := *p
			cp.Status = model.PlanExecuted
			d.SavePlan(ctx, &cp)
		}
		return
	}
}

// --- Members ---

func (d *Dispatcher) SaveMember(ctx context.Context, m *model.Member) *model.Member {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Status == "" {
		m.Status = model.MemberPending
	}
	if m.MembershipNumber == "" {
		m.MembershipNumber = d.NextMembershipNumber()
	}
	if m.RegistrationDate == "" {
		m.RegistrationDate = d.now().Format(dateLayout)
	}
	d.snap.UpdateMembers(upsertByID(m))
	d.remote.UpsertMember(ctx, m)
	return m
}

func (d *Dispatcher) RemoveMember(ctx context.Context, id string) {
	d.snap.UpdateMembers(removeByID[*model.Member](id))
	d.remote.DeleteMember(ctx, id)
}

func (d *Dispatcher) SetMembers(ctx context.Context, update func([]*model.Member) []*model.Member) {
	old, cur := d.snap.UpdateMembers(update)
	switch ch := diff(old, cur); ch.op {
	case opDelete:
		d.remote.DeleteMember(ctx, ch.deleteID)
	case opUpsert:
		d.remote.UpsertMember(ctx, ch.upsert)
	}
}

// NextMembershipNumber numbers new members sequentially within the current
// collection, scoped to the current year.
func (d *Dispatcher) NextMembershipNumber() string {
	return fmt.Sprintf("MEM-%d-%04d", d.now().Year(), len(d.snap.Members())+1)
}

// --- Daily reports ---

func (d *Dispatcher) SaveDailyReport(ctx context.Context, r *model.DailyReport) *model.DailyReport {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.ReportDate == "" {
		r.ReportDate = d.now().Format(dateLayout)
	}
	if day, err := time.Parse(dateLayout, r.ReportDate); err == nil {
		r.DayName = day.Weekday().String()
	}
	if r.ClubName == "" {
		r.ClubName = d.snap.Settings().ClubName
	}
	if len(r.Activities) > DailyActivitySlots {
		r.Activities = r.Activities[:DailyActivitySlots]
	}
	if len(r.Images) > DailyImageLimit {
		r.Images = r.Images[:DailyImageLimit]
	}
	d.snap.UpdateDailyReports(upsertByID(r))
	d.remote.UpsertDailyReport(ctx, r)
	return r
}

func (d *Dispatcher) RemoveDailyReport(ctx context.Context, id string) {
	d.snap.UpdateDailyReports(removeByID[*model.DailyReport](id))
	d.remote.DeleteDailyReport(ctx, id)
}

func (d *Dispatcher) SetDailyReports(ctx context.Context, update func([]*model.DailyReport) []*model.DailyReport) {
	old, cur := d.snap.UpdateDailyReports(update)
	switch ch := diff(old, cur); ch.op {
	case opDelete:
		d.remote.DeleteDailyReport(ctx, ch.deleteID)
	case opUpsert:
		d.remote.UpsertDailyReport(ctx, ch.upsert)
	}
}

// --- Distinguished supervisors ---

// SaveDistinguished keeps at most one award per month bucket: any prior
// record for the same month is removed before the new one lands.
func (d *Dispatcher) SaveDistinguished(ctx context.Context, item *model.DistinguishedSupervisor) *model.DistinguishedSupervisor {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	for _, e := range d.snap.Distinguished() {
		if e.MonthYear == item.MonthYear && e.ID != item.ID {
			d.snap.UpdateDistinguished(removeByID[*model.DistinguishedSupervisor](e.ID))
			d.remote.DeleteDistinguished(ctx, e.ID)
		}
	}
	d.snap.UpdateDistinguished(upsertByID(item))
	d.remote.UpsertDistinguished(ctx, item)
	return item
}

func (d *Dispatcher) RemoveDistinguished(ctx context.Context, id string) {
	d.snap.UpdateDistinguished(removeByID[*model.DistinguishedSupervisor](id))
	d.remote.DeleteDistinguished(ctx, id)
}

func (d *Dispatcher) SetDistinguished(ctx context.Context, update func([]*model.DistinguishedSupervisor) []*model.DistinguishedSupervisor) {
	old, cur := d.snap.UpdateDistinguished(update)
	switch ch := diff(old, cur); ch.op {
	case opDelete:
		d.remote.DeleteDistinguished(ctx, ch.deleteID)
	case opUpsert:
		// Route through SaveDistinguished so the one-per-month rule holds.
		d.SaveDistinguished(ctx, ch.upsert)
	}
}

// --- Settings ---

func (d *Dispatcher) SaveSettings(ctx context.Context, s *model.SystemSettings) {
	s.ID = model.SettingsRowID
	d.snap.SetSettings(s)
	d.remote.SaveSettings(ctx, s)
}
