package main

import (
	"fmt"
	"net/http"

	"github.com/primatek-mfg/erp-backend-go/internal/config"
	appHTTP "github.com/primatek-mfg/erp-backend-go/internal/handler/http"
	"github.com/primatek-mfg/erp-backend-go/internal/pkg/database"
	"github.com/primatek-mfg/erp-backend-go/internal/pkg/jwt"
	"github.com/primatek-mfg/erp-backend-go/internal/repository/postgresql"
	dashboardService "github.com/primatek-mfg/erp-backend-go/internal/service/dashboard"
	leaveService "github.com/primatek-mfg/erp-backend-go/internal/service/leave"
	notificationService "github.com/primatek-mfg/erp-backend-go/internal/service/notification"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	performanceRepo := postgresql.NewPerformanceRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	readReceiptRepo := postgresql.NewReadReceiptRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	balanceSvc := leaveService.NewBalanceService(employeeRepo, leaveRequestRepo, cfg.Leave.Entitlements)
	requestSvc := leaveService.NewRequestService(leaveRequestRepo, balanceSvc)
	notificationSvc := notificationService.NewNotificationService(notificationRepo, readReceiptRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(
		employeeRepo,
		attendanceRepo,
		leaveRequestRepo,
		payrollRepo,
		performanceRepo,
		balanceSvc,
		notificationSvc,
	)

	leaveHandler := appHTTP.NewLeaveHandler(requestSvc, balanceSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		jwtService,
		leaveHandler,
		notificationHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
