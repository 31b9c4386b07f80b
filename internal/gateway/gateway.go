// Package gateway wraps all remote record access. It is the trust boundary:
// nothing above it ever observes a store error. Reads degrade to built-in seed
// collections (or empty ones) and writes are dropped after one attempt, so the
// application stays usable against an unreachable or unprovisioned store.
package gateway

import (
	"context"
	"errors"
	"strings"

	"club-portal/internal/logger"
	"club-portal/internal/model"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Gateway struct {
	db *gorm.DB // nil means permanent offline mode
}

// New wraps a gorm handle. A nil handle is valid: every read serves seed or
// empty collections and every write is a no-op.
func New(db *gorm.DB) *Gateway { return &Gateway{db: db} }

// MySQL error numbers classified as schema mismatch.
const (
	errNoSuchTable   = 1146
	errUnknownColumn = 1054
)

// IsSchemaErr reports whether err means an expected table, column or singleton
// row does not exist. These are recoverable provisioning gaps, not failures,
// and are never logged.
func IsSchemaErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true
	}
	var myErr *gomysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == errNoSuchTable || myErr.Number == errUnknownColumn
	}
	return false
}

// isBackendErr distinguishes errors reported by the store itself from
// transport-level failures (unreachable host, dropped connection).
func isBackendErr(err error) bool {
	var myErr *gomysql.MySQLError
	return errors.As(err, &myErr)
}

func fetchAll[T any](g *Gateway, ctx context.Context, op string, seed func() []*T) []*T {
	if g.db == nil {
		return seeded(seed)
	}
	var rows []*T
	err := g.db.WithContext(ctx).Find(&rows).Error
	if err == nil {
		return rows
	}
	if IsSchemaErr(err) {
		return seeded(seed)
	}
	if !isBackendErr(err) {
		logger.Warn("store unreachable, serving seed data", "op", op, "err", err)
		return seeded(seed)
	}
	logger.Error("fetch failed", "op", op, "err", err)
	return []*T{}
}

func seeded[T any](seed func() []*T) []*T {
	if seed == nil {
		return []*T{}
	}
	return seed()
}

func (g *Gateway) FetchSupervisors(ctx context.Context) []*model.Supervisor {
	return fetchAll(g, ctx, "fetch_supervisors", model.SeedSupervisors)
}

func (g *Gateway) FetchPlans(ctx context.Context) []*model.ProgramPlan {
	return fetchAll(g, ctx, "fetch_plans", model.SeedPlans)
}

func (g *Gateway) FetchMembers(ctx context.Context) []*model.Member {
	return fetchAll(g, ctx, "fetch_members", model.SeedMembers)
}

func (g *Gateway) FetchReports(ctx context.Context) []*model.ProgramReport {
	return fetchAll[model.ProgramReport](g, ctx, "fetch_reports", nil)
}

func (g *Gateway) FetchDailyReports(ctx context.Context) []*model.DailyReport {
	return fetchAll[model.DailyReport](g, ctx, "fetch_daily_reports", nil)
}

func (g *Gateway) FetchDistinguished(ctx context.Context) []*model.DistinguishedSupervisor {
	return fetchAll[model.DistinguishedSupervisor](g, ctx, "fetch_distinguished", nil)
}

// FetchSettings reads the singleton settings row, falling back to the built-in
// defaults when the row or table is absent.
func (g *Gateway) FetchSettings(ctx context.Context) *model.SystemSettings {
	if g.db == nil {
		return model.SeedSettings()
	}
	var s model.SystemSettings
	err := g.db.WithContext(ctx).Where("id = ?", model.SettingsRowID).First(&s).Error
	if err != nil {
		if !IsSchemaErr(err) && isBackendErr(err) {
			logger.Error("fetch failed", "op", "fetch_settings", "err", err)
		}
		return model.SeedSettings()
	}
	return &s
}

func (g *Gateway) upsert(ctx context.Context, op string, entity any) {
	if g.db == nil {
		return
	}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(entity).Error
	if err != nil && !IsSchemaErr(err) {
		logger.Error("upsert failed", "op", op, "err", err)
	}
}

// UpsertSupervisor retries once without the password column when the store's
// supervisors table predates that column.
func (g *Gateway) UpsertSupervisor(ctx context.Context, s *model.Supervisor) {
	if g.db == nil {
		return
	}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(s).Error
	if err == nil {
		return
	}
	if IsSchemaErr(err) {
		logger.Warn("schema mismatch on supervisor upsert, retrying without password", "id", s.ID)
		retryErr := g.db.WithContext(ctx).Omit("password").
			Clauses(clause.OnConflict{UpdateAll: true}).Create(s).Error
		if retryErr != nil && !IsSchemaErr(retryErr) {
			logger.Error("upsert failed", "op", "upsert_supervisor", "err", retryErr)
		}
		return
	}
	logger.Error("upsert failed", "op", "upsert_supervisor", "err", err)
}

func (g *Gateway) UpsertPlan(ctx context.Context, p *model.ProgramPlan) {
	g.upsert(ctx, "upsert_plan", p)
}

func (g *Gateway) UpsertMember(ctx context.Context, m *model.Member) {
	g.upsert(ctx, "upsert_member", m)
}

func (g *Gateway) UpsertReport(ctx context.Context, r *model.ProgramReport) {
	g.upsert(ctx, "upsert_report", r)
}

func (g *Gateway) UpsertDailyReport(ctx context.Context, r *model.DailyReport) {
	g.upsert(ctx, "upsert_daily_report", r)
}

func (g *Gateway) UpsertDistinguished(ctx context.Context, d *model.DistinguishedSupervisor) {
	g.upsert(ctx, "upsert_distinguished", d)
}

// SaveSettings overwrites the singleton row wholesale.
func (g *Gateway) SaveSettings(ctx context.Context, s *model.SystemSettings) {
	s.ID = model.SettingsRowID
	g.upsert(ctx, "save_settings", s)
}

func (g *Gateway) delete(ctx context.Context, op string, entity any, id string) {
	if g.db == nil {
		return
	}
	err := g.db.WithContext(ctx).Where("id = ?", id).Delete(entity).Error
	if err != nil && !IsSchemaErr(err) {
		logger.Error("delete failed", "op", op, "err", err)
	}
}

func (g *Gateway) DeleteSupervisor(ctx context.Context, id string) {
	g.delete(ctx, "delete_supervisor", &model.Supervisor{}, id)
}

func (g *Gateway) DeletePlan(ctx context.Context, id string) {
	g.delete(ctx, "delete_plan", &model.ProgramPlan{}, id)
}

func (g *Gateway) DeleteMember(ctx context.Context, id string) {
	g.delete(ctx, "delete_member", &model.Member{}, id)
}

func (g *Gateway) DeleteDailyReport(ctx context.Context, id string) {
	g.delete(ctx, "delete_daily_report", &model.DailyReport{}, id)
}

func (g *Gateway) DeleteDistinguished(ctx context.Context, id string) {
	g.delete(ctx, "delete_distinguished", &model.DistinguishedSupervisor{}, id)
}

// FindSupervisorByEmail looks up exactly one supervisor by case-insensitive
// email. Any miss, schema gap or transport failure reports not-found so the
// caller can fall back to its local collection.
func (g *Gateway) FindSupervisorByEmail(ctx context.Context, email string) (*model.Supervisor, bool) {
	if g.db == nil {
		return nil, false
	}
	var s model.Supervisor
	err := g.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&s).Error
	if err != nil {
		if !IsSchemaErr(err) {
			logger.Warn("supervisor lookup failed", "err", err)
		}
		return nil, false
	}
	return &s, true
}

// AutoMigrate creates the backing tables. Gated behind config: the supported
// unprovisioned mode is the schema-mismatch fallback, not migration.
func (g *Gateway) AutoMigrate() error {
	if g.db == nil {
		return nil
	}
	return g.db.AutoMigrate(
		&model.Supervisor{},
		&model.ProgramPlan{},
		&model.ProgramReport{},
		&model.DailyReport{},
		&model.Member{},
		&model.DistinguishedSupervisor{},
		&model.SystemSettings{},
	)
}
