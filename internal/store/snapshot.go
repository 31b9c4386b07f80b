// Package store holds the in-memory snapshot of every entity collection. The
// snapshot is the source of truth for rendering; the remote store is a mirror.
// All mutation is whole-collection replacement, never in-place edits, so the
// dispatcher's identity diffing stays sound.
package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"club-portal/internal/lifecycle"
	"club-portal/internal/logger"
	"club-portal/internal/model"
)

// Remote is the slice of the persistence gateway the snapshot needs for its
// initial load and the first-run bootstrap.
type Remote interface {
	FetchSupervisors(ctx context.Context) []*model.Supervisor
	FetchPlans(ctx context.Context) []*model.ProgramPlan
	FetchMembers(ctx context.Context) []*model.Member
	FetchReports(ctx context.Context) []*model.ProgramReport
	FetchDailyReports(ctx context.Context) []*model.DailyReport
	FetchDistinguished(ctx context.Context) []*model.DistinguishedSupervisor
	FetchSettings(ctx context.Context) *model.SystemSettings
	UpsertSupervisor(ctx context.Context, s *model.Supervisor)
	UpsertPlan(ctx context.Context, p *model.ProgramPlan)
}

type Snapshot struct {
	mu sync.RWMutex

	supervisors   []*model.Supervisor
	plans         []*model.ProgramPlan
	members       []*model.Member
	reports       []*model.ProgramReport
	dailyReports  []*model.DailyReport
	distinguished []*model.DistinguishedSupervisor
	settings      *model.SystemSettings
}

func New() *Snapshot {
	return &Snapshot{settings: model.SeedSettings()}
}

// Load fetches every collection concurrently, seeds the first admin account
// when the supervisor collection comes back empty, then runs one lifecycle
// reconciliation pass over the plans and mirrors each corrected plan exactly
// once. Load never fails: the gateway already degrades every read.
func (s *Snapshot) Load(ctx context.Context, remote Remote, now time.Time) {
	var (
		supervisors   []*model.Supervisor
		plans         []*model.ProgramPlan
		members       []*model.Member
		reports       []*model.ProgramReport
		dailyReports  []*model.DailyReport
		distinguished []*model.DistinguishedSupervisor
		settings      *model.SystemSettings
	)

	var wg sync.WaitGroup
	wg.Add(7)
	go func() { defer wg.Done(); supervisors = remote.FetchSupervisors(ctx) }()
	go func() { defer wg.Done(); plans = remote.FetchPlans(ctx) }()
	go func() { defer wg.Done(); members = remote.FetchMembers(ctx) }()
	go func() { defer wg.Done(); reports = remote.FetchReports(ctx) }()
	go func() { defer wg.Done(); dailyReports = remote.FetchDailyReports(ctx) }()
	go func() { defer wg.Done(); distinguished = remote.FetchDistinguished(ctx) }()
	go func() { defer wg.Done(); settings = remote.FetchSettings(ctx) }()
	wg.Wait()

	if len(supervisors) == 0 {
		if admin := model.SeedAdmin(); admin != nil {
			remote.UpsertSupervisor(ctx, admin)
			supervisors = []*model.Supervisor{admin}
			logger.Info("bootstrapped first admin account", "email", admin.Email)
		}
	}

	var corrected []*model.ProgramPlan
	plans, corrected = lifecycle.Reconcile(now, plans, reports)
	for _, p := range corrected {
		remote.UpsertPlan(ctx, p)
	}

	s.mu.Lock()
	s.supervisors = supervisors
	s.plans = plans
	s.members = members
	s.reports = reports
	s.dailyReports = dailyReports
	s.distinguished = distinguished
	s.settings = settings
	s.mu.Unlock()

	logger.Info("snapshot loaded",
		"supervisors", len(supervisors),
		"plans", len(plans),
		"members", len(members),
		"reports", len(reports),
		"daily_reports", len(dailyReports),
		"distinguished", len(distinguished),
		"plans_corrected", len(corrected),
	)
}

func (s *Snapshot) Supervisors() []*model.Supervisor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.supervisors)
}

func (s *Snapshot) Plans() []*model.ProgramPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.plans)
}

func (s *Snapshot) Members() []*model.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.members)
}

func (s *Snapshot) Reports() []*model.ProgramReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.reports)
}

func (s *Snapshot) DailyReports() []*model.DailyReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.dailyReports)
}

func (s *Snapshot) Distinguished() []*model.DistinguishedSupervisor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.distinguished)
}

func (s *Snapshot) Settings() *model.SystemSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Snapshot) SetSettings(settings *model.SystemSettings) {
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
}

// The Update* methods apply an updater against the latest collection under
// the write lock and commit its result unconditionally. The updater receives
// a clone of the slice (element pointers intact), so it can rearrange freely
// but a stale closure can never clobber a newer commit. Both the previous and
// the committed collection are returned for identity diffing.

func (s *Snapshot) UpdateSupervisors(apply func([]*model.Supervisor) []*model.Supervisor) (old, cur []*model.Supervisor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old = s.supervisors
	s.supervisors = apply(slices.Clone(old))
	return old, s.supervisors
}

func (s *Snapshot) UpdatePlans(apply func([]*model.ProgramPlan) []*model.ProgramPlan) (old, cur []*model.ProgramPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old = s.plans
	s.plans = apply(slices.Clone(old))
	return old, s.plans
}

func (s *Snapshot) UpdateMembers(apply func([]*model.Member) []*model.Member) (old, cur []*model.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old = s.members
	s.members = apply(slices.Clone(old))
	return old, s.members
}

func (s *Snapshot) UpdateReports(apply func([]*model.ProgramReport) []*model.ProgramReport) (old, cur []*model.ProgramReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old = s.reports
	s.reports = apply(slices.Clone(old))
	return old, s.reports
}

func (s *Snapshot) UpdateDailyReports(apply func([]*model.DailyReport) []*model.DailyReport) (old, cur []*model.DailyReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old = s.dailyReports
	s.dailyReports = apply(slices.Clone(old))
	return old, s.dailyReports
}

func (s *Snapshot) UpdateDistinguished(apply func([]*model.DistinguishedSupervisor) []*model.DistinguishedSupervisor) (old, cur []*model.DistinguishedSupervisor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old = s.distinguished
	s.distinguished = apply(slices.Clone(old))
	return old, s.distinguished
}
