package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/tabacalera-hn/attendance-backend/internal/config"
	appHTTP "github.com/tabacalera-hn/attendance-backend/internal/handler/http"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/clock"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/database"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/jwt"
	"github.com/tabacalera-hn/attendance-backend/internal/pkg/storage"
	"github.com/tabacalera-hn/attendance-backend/internal/repository/postgresql"
	attendanceService "github.com/tabacalera-hn/attendance-backend/internal/service/attendance"
	authService "github.com/tabacalera-hn/attendance-backend/internal/service/auth"
	dashboardService "github.com/tabacalera-hn/attendance-backend/internal/service/dashboard"
	employeeService "github.com/tabacalera-hn/attendance-backend/internal/service/employee"
	reportService "github.com/tabacalera-hn/attendance-backend/internal/service/report"
	userService "github.com/tabacalera-hn/attendance-backend/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	if cfg.Database.RunMigrations {
		if err := db.RunMigrations(context.Background(), "migrations/schema.sql"); err != nil {
			log.Fatal("Error running migrations: ", err)
		}
		slog.Info("database schema applied")
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)
	businessClock := clock.New()

	inTx := func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, db, fn)
	}

	authSvc := authService.NewService(userRepo, jwtService)
	userSvc := userService.NewService(userRepo)
	employeeSvc := employeeService.NewService(employeeRepo, fileStorage, businessClock)
	attendanceSvc := attendanceService.NewService(attendanceRepo, employeeRepo, businessClock, inTx)
	reportSvc := reportService.NewService(reportRepo, businessClock)
	dashboardSvc := dashboardService.NewService(dashboardRepo, businessClock)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc, attendanceSvc),
		User:       appHTTP.NewUserHandler(userSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("server listening", "addr", addr, "env", cfg.App.Env)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
