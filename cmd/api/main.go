package main

import (
	"fmt"
	"net/http"

	"github.com/crewfield/crewfield-backend-go/internal/config"
	appHTTP "github.com/crewfield/crewfield-backend-go/internal/handler/http"
	"github.com/crewfield/crewfield-backend-go/internal/pkg/cron"
	"github.com/crewfield/crewfield-backend-go/internal/pkg/database"
	"github.com/crewfield/crewfield-backend-go/internal/pkg/jwt"
	"github.com/crewfield/crewfield-backend-go/internal/repository/postgresql"
	alertService "github.com/crewfield/crewfield-backend-go/internal/service/alert"
	companyService "github.com/crewfield/crewfield-backend-go/internal/service/company"
	crewService "github.com/crewfield/crewfield-backend-go/internal/service/crew"
	reportService "github.com/crewfield/crewfield-backend-go/internal/service/report"
	scheduleService "github.com/crewfield/crewfield-backend-go/internal/service/schedule"
	siteService "github.com/crewfield/crewfield-backend-go/internal/service/site"
	"github.com/crewfield/crewfield-backend-go/internal/service/sweeper"
	timetrackingService "github.com/crewfield/crewfield-backend-go/internal/service/timetracking"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	companyRepo := postgresql.NewCompanyRepository(db)
	siteRepo := postgresql.NewSiteRepository(db)
	crewRepo := postgresql.NewCrewRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	alertRepo := postgresql.NewAlertRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	alertSvc := alertService.NewAlertService(alertRepo)
	companySvc := companyService.NewCompanyService(companyRepo)
	siteSvc := siteService.NewSiteService(siteRepo)
	crewSvc := crewService.NewCrewService(crewRepo)
	scheduleSvc := scheduleService.NewScheduleService(db, scheduleRepo)
	timeTrackingSvc := timetrackingService.NewTimeTrackingService(
		timeEntryRepo,
		scheduleRepo,
		siteRepo,
		crewRepo,
		companyRepo,
		alertSvc,
	)
	reportSvc := reportService.NewReportService(reportRepo)

	missedShiftSweeper := sweeper.NewMissedShiftSweeper(scheduleRepo, timeEntryRepo, alertSvc)
	scheduler := cron.NewScheduler()
	scheduler.AddJob("missed-shift-sweep", cfg.Sweep.Interval, missedShiftSweeper.Sweep)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, JWTService, appHTTP.Handlers{
		Schedule:  appHTTP.NewScheduleHandler(scheduleSvc),
		TimeEntry: appHTTP.NewTimeEntryHandler(timeTrackingSvc),
		Alert:     appHTTP.NewAlertHandler(alertSvc),
		Site:      appHTTP.NewSiteHandler(siteSvc),
		Crew:      appHTTP.NewCrewHandler(crewSvc),
		Company:   appHTTP.NewCompanyHandler(companySvc),
		Report:    appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
