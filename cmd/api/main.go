package main

import (
	"fmt"
	"net/http"

	"github.com/attendit/attendit-backend-go/internal/config"
	appHTTP "github.com/attendit/attendit-backend-go/internal/handler/http"
	"github.com/attendit/attendit-backend-go/internal/pkg/database"
	"github.com/attendit/attendit-backend-go/internal/pkg/jwt"
	"github.com/attendit/attendit-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendit/attendit-backend-go/internal/service/attendance"
	authService "github.com/attendit/attendit-backend-go/internal/service/auth"
	employeeService "github.com/attendit/attendit-backend-go/internal/service/employee"
	reportService "github.com/attendit/attendit-backend-go/internal/service/report"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	recordStore := postgresql.NewAttendanceRecordStore(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(recordStore, employeeRepo)
	reportSvc := reportService.NewReportService(employeeRepo, recordStore)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		reportHandler,
		cfg.App.AllowedOrigins,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
