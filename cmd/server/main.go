package main

import (
	"context"
	"flag"
	"log/slog"
	"time"

	"club-portal/internal/config"
	"club-portal/internal/dispatch"
	"club-portal/internal/gateway"
	"club-portal/internal/handler"
	"club-portal/internal/logger"
	"club-portal/internal/middleware"
	"club-portal/internal/model"
	"club-portal/internal/service"
	"club-portal/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	if cfg.Server.JWTSecret != "" {
		middleware.JWTSecret = []byte(cfg.Server.JWTSecret)
	}

	// An unreachable store is not fatal: the gateway serves seed data and
	// drops writes, so the portal stays usable offline.
	var db *gorm.DB
	if opened, err := cfg.OpenGormDB(); err != nil {
		slog.Warn("db connect failed, starting in offline mode", "err", err)
	} else {
		db = opened
	}

	gw := gateway.New(db)
	if cfg.Database.AutoMigrate {
		if err := gw.AutoMigrate(); err != nil {
			slog.Warn("auto migrate failed", "err", err)
		}
	}

	snap := store.New()
	loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	snap.Load(loadCtx, gw, time.Now())
	cancel()

	disp := dispatch.New(gw, snap)
	authSvc := service.NewAuthService(gw, snap)

	authH := handler.NewAuthHandler(authSvc, snap)
	planH := handler.NewPlanHandler(disp, snap)
	reportH := handler.NewReportHandler(disp, snap)
	dailyH := handler.NewDailyReportHandler(disp, snap)
	memberH := handler.NewMemberHandler(disp, snap)
	supervisorH := handler.NewSupervisorHandler(disp, snap)
	distinguishedH := handler.NewDistinguishedHandler(disp, snap)
	settingsH := handler.NewSettingsHandler(disp, snap)
	dashboardH := handler.NewDashboardHandler(snap)
	collectionH := handler.NewCollectionHandler(disp)
	exportH := handler.NewExportHandler(snap)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Public views: landing figures, settings, login, membership application.
	r.POST("/api/login", authH.Login)
	r.GET("/api/settings", settingsH.Get)
	r.GET("/api/dashboard", dashboardH.Stats)
	r.POST("/api/members", memberH.Apply)

	// Any signed-in supervisor.
	api := r.Group("/api", middleware.JWTAuth())
	api.GET("/session", authH.Session)
	api.GET("/plans", planH.List)
	api.POST("/plans", planH.Save)
	api.DELETE("/plans/:id", planH.Delete)
	api.GET("/reports", reportH.List)
	api.POST("/reports", reportH.Save)
	api.GET("/distinguished", distinguishedH.List)

	// Admin panel.
	admin := api.Group("", middleware.RequireRoles(model.RoleAdmin))
	admin.GET("/supervisors", supervisorH.List)
	admin.POST("/supervisors", supervisorH.Save)
	admin.DELETE("/supervisors/:id", supervisorH.Delete)
	admin.GET("/members", memberH.List)
	admin.POST("/members/save", memberH.Save)
	admin.PATCH("/members/:id/status", memberH.SetStatus)
	admin.DELETE("/members/:id", memberH.Delete)
	admin.GET("/daily-reports", dailyH.List)
	admin.GET("/daily-reports/activities", dailyH.SuggestActivities)
	admin.POST("/daily-reports", dailyH.Save)
	admin.DELETE("/daily-reports/:id", dailyH.Delete)
	admin.POST("/distinguished", distinguishedH.Save)
	admin.DELETE("/distinguished/:id", distinguishedH.Delete)
	admin.PUT("/settings", settingsH.Save)
	admin.PUT("/collections/:name", collectionH.Replace)
	admin.GET("/export/plans.xlsx", exportH.Plans)

	slog.Info("server starting", "addr", cfg.Addr(), "offline", db == nil)
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
