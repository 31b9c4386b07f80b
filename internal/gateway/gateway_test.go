package gateway

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"club-portal/internal/model"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestSchemaErrClassification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"table missing", &gomysql.MySQLError{Number: 1146, Message: "Table 'club.plans' doesn't exist"}, true},
		{"column missing", &gomysql.MySQLError{Number: 1054, Message: "Unknown column 'password'"}, true},
		{"singleton row missing", gorm.ErrRecordNotFound, true},
		{"wrapped table missing", fmt.Errorf("find: %w", &gomysql.MySQLError{Number: 1146}), true},
		{"access denied", &gomysql.MySQLError{Number: 1045, Message: "Access denied"}, false},
		{"duplicate key", &gomysql.MySQLError{Number: 1062}, false},
		{"transport", errors.New("dial tcp: connection refused"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsSchemaErr(tc.err))
		})
	}
}

func TestOfflineReadsServeSeeds(t *testing.T) {
	g := New(nil)
	ctx := context.Background()

	assert.NotEmpty(t, g.FetchSupervisors(ctx), "supervisors fall back to seed accounts")
	assert.NotEmpty(t, g.FetchPlans(ctx), "plans fall back to seed programs")
	assert.NotEmpty(t, g.FetchMembers(ctx), "members fall back to seed records")

	assert.Empty(t, g.FetchReports(ctx))
	assert.Empty(t, g.FetchDailyReports(ctx))
	assert.Empty(t, g.FetchDistinguished(ctx))

	s := g.FetchSettings(ctx)
	assert.NotNil(t, s)
	assert.NotEmpty(t, s.ClubName)
}

func TestOfflineSeedIncludesAdmin(t *testing.T) {
	g := New(nil)
	var admin *model.Supervisor
	for _, s := range g.FetchSupervisors(context.Background()) {
		if s.Role == model.RoleAdmin {
			admin = s
		}
	}
	if assert.NotNil(t, admin, "seed set must contain a usable admin account") {
		assert.NotEmpty(t, admin.Email)
		assert.NotEmpty(t, admin.Password)
	}
}

func TestOfflineWritesAreDropped(t *testing.T) {
	g := New(nil)
	ctx := context.Background()

	// Writes must be silent no-ops, never panics or errors.
	g.UpsertSupervisor(ctx, &model.Supervisor{ID: "s"})
	g.UpsertPlan(ctx, &model.ProgramPlan{ID: "p"})
	g.UpsertMember(ctx, &model.Member{ID: "m"})
	g.UpsertReport(ctx, &model.ProgramReport{ID: "r"})
	g.UpsertDailyReport(ctx, &model.DailyReport{ID: "d"})
	g.UpsertDistinguished(ctx, &model.DistinguishedSupervisor{ID: "x"})
	g.SaveSettings(ctx, &model.SystemSettings{ClubName: "c"})
	g.DeleteSupervisor(ctx, "s")
	g.DeletePlan(ctx, "p")
	g.DeleteMember(ctx, "m")
	g.DeleteDailyReport(ctx, "d")
	g.DeleteDistinguished(ctx, "x")
}

func TestOfflineLookupReportsNotFound(t *testing.T) {
	g := New(nil)
	_, ok := g.FindSupervisorByEmail(context.Background(), "admin@club.com")
	assert.False(t, ok, "offline lookup must fall through to the snapshot")
}

func TestSeedCollectionsAreFreshInstances(t *testing.T) {
	a := model.SeedSupervisors()
	b := model.SeedSupervisors()
	assert.NotSame(t, a[0], b[0], "callers must not share seed instances")
}
