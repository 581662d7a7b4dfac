package app

import (
	"database/sql"
	"os"

	"github.com/Amrik-Bhadra/SalaryFlow/internal/attendance"
	"github.com/Amrik-Bhadra/SalaryFlow/internal/employee"
	"github.com/Amrik-Bhadra/SalaryFlow/internal/messaging/kafka"
	"github.com/Amrik-Bhadra/SalaryFlow/internal/middleware"
	"github.com/Amrik-Bhadra/SalaryFlow/internal/payslip"
	"github.com/Amrik-Bhadra/SalaryFlow/internal/payslipreport"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	payslipRepo := payslip.NewRepository(gormDB)
	reportRepo := payslipreport.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// Historical behavior: regenerating a period inserts a second payslip
	// row instead of rejecting. Set to "false" to skip already-paid
	// employees during batch generation.
	allowDuplicates := os.Getenv("PAYROLL_ALLOW_DUPLICATE_PAYSLIPS") != "false"

	// --- Services ---
	payslipService := payslip.NewService(db, payslipRepo, employeeRepo, attendanceRepo, outboxRepo, allowDuplicates)
	reportService := payslipreport.NewService(db, reportRepo, employeeRepo, payslipRepo, outboxRepo)

	// --- Handlers ---
	payslipHandler := payslip.NewHandlerWithRedis(payslipService, rdb)
	reportHandler := payslipreport.NewHandler(reportService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(20, 40))

	api := router.Group("/api/v1")
	{
		payslip.RegisterRoutes(api, payslipHandler, rdb)
		payslipreport.RegisterRoutes(api, reportHandler, rdb)
	}

	return nil
}
