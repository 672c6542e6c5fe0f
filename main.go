// main.go
package main

import (
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"gym-admin/controllers"
	"gym-admin/logger"
	"gym-admin/middleware"
	"gym-admin/services"
)

func main() {
	// .env is optional; environment variables win either way
	if err := godotenv.Load(); err != nil {
		logger.Debug.Println("main: no .env file found, using process environment")
	}

	env := os.Getenv("APP_ENV")
	logger.SetLogLevel(env)
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	storagePath := os.Getenv("STORAGE_PATH")
	if storagePath == "" {
		storagePath = "./storage"
	}

	storage, err := services.NewFileStorageService(storagePath)
	if err != nil {
		log.Fatalf("Failed to initialise storage: %v", err)
	}
	if err := storage.SeedDefaults(); err != nil {
		log.Fatalf("Failed to seed default data: %v", err)
	}

	memberService := services.NewMemberService(storage)
	attendanceService := services.NewAttendanceService(storage)
	statsService := services.NewStatisticsService(storage)
	exportService := services.NewExportService(storage)

	memberController := controllers.NewMemberController(memberService)
	attendanceController := controllers.NewAttendanceController(attendanceService)
	paymentController := controllers.NewPaymentController(memberService)
	reportController := controllers.NewReportController(statsService, exportService)

	controllers.RegisterValidations()

	router := gin.Default()
	router.Use(middleware.RequestLogger())

	// CORS for the separate front-end
	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "http://localhost:3000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(origins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// photo blobs are served straight off disk
	router.Static("/uploads/photos", storage.PhotosDir())

	router.GET("/", controllers.Root)
	router.GET("/health", controllers.Health)

	api := router.Group("/api")
	{
		api.GET("/members", memberController.GetAll)
		api.GET("/members/:id", memberController.GetOne)
		api.POST("/members", memberController.Create)
		api.PUT("/members/:id", memberController.Update)
		api.DELETE("/members/:id", memberController.Delete)
		api.POST("/members/:id/photo", memberController.UploadPhoto)
		api.GET("/members/:id/qrcode", memberController.QRCode)

		api.GET("/plans", memberController.GetPlans)

		api.GET("/attendance/date/:date", attendanceController.ForDate)
		api.POST("/attendance/date/:date", attendanceController.Save)
		api.GET("/attendance/member/:id", attendanceController.MemberHistory)
		api.GET("/attendance/daily/:date", attendanceController.DailySummary)
		api.GET("/attendance/recent/:days", attendanceController.Recent)

		api.POST("/payments/update/:id", paymentController.UpdateStatus)
		api.GET("/payments/overdue", paymentController.Overdue)
		api.GET("/payments/pending", paymentController.Pending)
		api.GET("/payments/revenue/:month", paymentController.Revenue)

		api.GET("/reports/dashboard", reportController.Dashboard)
		api.GET("/reports/monthly/:year/:month", reportController.Monthly)
		api.GET("/reports/attendance/:year/:month", reportController.Attendance)
		api.GET("/reports/export/members", reportController.ExportMembers)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info.Printf("main: starting server on :%s (storage at %s)", port, storagePath)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
