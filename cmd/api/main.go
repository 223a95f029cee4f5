package main

import (
	"fmt"
	"net/http"

	"github.com/zeitgrid/worktime-backend-go/internal/config"
	appHTTP "github.com/zeitgrid/worktime-backend-go/internal/handler/http"
	"github.com/zeitgrid/worktime-backend-go/internal/pkg/database"
	"github.com/zeitgrid/worktime-backend-go/internal/pkg/jwt"
	"github.com/zeitgrid/worktime-backend-go/internal/repository/postgresql"
	absenceService "github.com/zeitgrid/worktime-backend-go/internal/service/absence"
	employeeService "github.com/zeitgrid/worktime-backend-go/internal/service/employee"
	overviewService "github.com/zeitgrid/worktime-backend-go/internal/service/overview"
	timeEntryService "github.com/zeitgrid/worktime-backend-go/internal/service/timeentry"
	userService "github.com/zeitgrid/worktime-backend-go/internal/service/user"
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

	loc := cfg.Location()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	absenceRepo := postgresql.NewAbsenceEntryRepository(db)
	policyRepo := postgresql.NewServerPolicyRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	userSvc := userService.NewUserService(userRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	timeEntrySvc := timeEntryService.NewTimeEntryService(timeEntryRepo, userRepo, loc)
	absenceSvc := absenceService.NewAbsenceEntryService(absenceRepo, userRepo, loc)
	overviewSvc := overviewService.NewOverviewService(
		userRepo,
		employeeRepo,
		policyRepo,
		timeEntryRepo,
		absenceRepo,
		loc,
		cfg.App.DefaultRegion,
	)

	userHandler := appHTTP.NewUserHandler(userSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	timeEntryHandler := appHTTP.NewTimeEntryHandler(timeEntrySvc)
	absenceEntryHandler := appHTTP.NewAbsenceEntryHandler(absenceSvc)
	overviewHandler := appHTTP.NewOverviewHandler(overviewSvc)
	settingsHandler := appHTTP.NewSettingsHandler(policyRepo)

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.Env,
		cfg.App.SlogLevel(),
		userHandler,
		employeeHandler,
		timeEntryHandler,
		absenceEntryHandler,
		overviewHandler,
		settingsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
