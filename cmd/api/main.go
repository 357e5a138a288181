package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/tracklight/workhours-backend-go/internal/config"
	"github.com/tracklight/workhours-backend-go/internal/domain/workconfig"
	"github.com/tracklight/workhours-backend-go/internal/fixtures"
	appHTTP "github.com/tracklight/workhours-backend-go/internal/handler/http"
	"github.com/tracklight/workhours-backend-go/internal/pkg/database"
	"github.com/tracklight/workhours-backend-go/internal/pkg/jwt"
	"github.com/tracklight/workhours-backend-go/internal/repository/postgresql"
	reportService "github.com/tracklight/workhours-backend-go/internal/service/report"
	timeOffService "github.com/tracklight/workhours-backend-go/internal/service/timeoff"
	workConfigService "github.com/tracklight/workhours-backend-go/internal/service/workconfig"
	workHoursService "github.com/tracklight/workhours-backend-go/internal/service/workhours"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	entryRepo := postgresql.NewEntryRepository(db)
	defaultEntryRepo := postgresql.NewDefaultEntryRepository(db)
	timeOffRepo := postgresql.NewTimeOffRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	workConfigRepo := postgresql.NewWorkConfigRepository(db)

	if cfg.App.Env == "development" {
		if err := seedRoleConfigs(workConfigRepo); err != nil {
			fmt.Println("Error seeding role configs:", err)
			return
		}
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	configResolver := workConfigService.NewResolver(workConfigRepo)
	entryService := workHoursService.NewEntryService(
		db,
		entryRepo,
		defaultEntryRepo,
		timeOffRepo,
		holidayRepo,
		configResolver,
	)
	timeOffSvc := timeOffService.NewTimeOffService(timeOffRepo)
	reportSvc := reportService.NewReportService(entryRepo, timeOffRepo, holidayRepo, configResolver)

	workHoursHandler := appHTTP.NewWorkHoursHandler(entryService)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	timeOffHandler := appHTTP.NewTimeOffHandler(timeOffSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidayRepo)
	workConfigHandler := appHTTP.NewWorkConfigHandler(workConfigRepo, configResolver)

	router := appHTTP.NewRouter(
		JWTService,
		workHoursHandler,
		reportHandler,
		timeOffHandler,
		holidayHandler,
		workConfigHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

// seedRoleConfigs inserts the default role policies for roles that have no
// config row yet. Existing rows are left untouched.
func seedRoleConfigs(repo workconfig.Repository) error {
	ctx := context.Background()
	for _, cfg := range fixtures.DefaultRoleConfigs() {
		_, err := repo.GetRoleConfig(ctx, cfg.Role)
		if err == nil {
			continue
		}
		if !errors.Is(err, workconfig.ErrUnsupportedRole) {
			return err
		}
		if _, err := repo.UpsertRoleConfig(ctx, cfg); err != nil {
			return err
		}
	}
	return nil
}
