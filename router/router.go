package router

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Sujal2120/DailyFlow/config"
	"github.com/Sujal2120/DailyFlow/config/middleware"
	"github.com/Sujal2120/DailyFlow/handlers"
	"github.com/Sujal2120/DailyFlow/pkg/paseto"
	"github.com/Sujal2120/DailyFlow/repository"
	"github.com/Sujal2120/DailyFlow/seeder"
)

// SetupRoutes wires the repositories, handlers, and middleware onto the
// app and loads the demo dataset.
func SetupRoutes(app *fiber.App, cfg *config.AppConfig) {
	maker, err := paseto.NewMaker(cfg.PasetoSecret)
	if err != nil {
		log.Fatalf("failed to initialize token maker: %v", err)
	}

	userRepo := repository.NewUserRepository()
	deptRepo := repository.NewDepartmentRepository()
	attendanceRepo := repository.NewAttendanceRepository()
	leaveRepo := repository.NewLeaveRequestRepository()
	notifRepo := repository.NewNotificationRepository(repository.DefaultToastTTL)
	scheduleRepo := repository.NewWorkScheduleRepository()

	seeder.SeedAll(seeder.Repositories{
		Users:         userRepo,
		Departments:   deptRepo,
		Attendance:    attendanceRepo,
		LeaveRequests: leaveRepo,
		Notifications: notifRepo,
	})

	authHandler := handlers.NewAuthHandler(userRepo, notifRepo, maker)
	userHandler := handlers.NewUserHandler(userRepo, attendanceRepo, leaveRepo, notifRepo)
	deptHandler := handlers.NewDepartmentHandler(deptRepo)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceRepo, userRepo, notifRepo)
	leaveHandler := handlers.NewLeaveRequestHandler(leaveRepo, notifRepo)
	notifHandler := handlers.NewNotificationHandler(notifRepo)
	payrollHandler := handlers.NewPayrollHandler(userRepo, notifRepo)
	scheduleHandler := handlers.NewWorkScheduleHandler(scheduleRepo)

	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Dayflow API",
			"status":  "running",
		})
	})

	api := app.Group("/api/v1")

	// Authentication routes
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", middleware.AuthMiddleware(maker), authHandler.Logout)
	authGroup.Post("/register", middleware.AuthMiddleware(maker), middleware.AdminMiddleware(), authHandler.Register)

	// User routes
	userGroup := api.Group("/users", middleware.AuthMiddleware(maker))
	userGroup.Post("/change-password", authHandler.ChangePassword)
	userGroup.Get("/:id", userHandler.GetUserByID)
	userGroup.Put("/:id", userHandler.UpdateUser)

	// Admin routes
	adminGroup := api.Group("/admin", middleware.AuthMiddleware(maker), middleware.AdminMiddleware())
	adminGroup.Get("/users", userHandler.GetAllUsers)
	adminGroup.Delete("/users/:id", userHandler.DeleteUser)
	adminGroup.Get("/dashboard-stats", userHandler.GetDashboardStats)

	// Department routes
	api.Get("/departments", middleware.AuthMiddleware(maker), deptHandler.GetAllDepartments)
	api.Get("/departments/:id", middleware.AuthMiddleware(maker), deptHandler.GetDepartmentByID)
	adminGroup.Post("/departments", deptHandler.CreateDepartment)
	adminGroup.Put("/departments/:id", deptHandler.UpdateDepartment)
	adminGroup.Delete("/departments/:id", deptHandler.DeleteDepartment)

	// Attendance routes
	attendanceGroup := api.Group("/attendance", middleware.AuthMiddleware(maker))
	attendanceGroup.Post("/check-in", attendanceHandler.CheckIn)
	attendanceGroup.Post("/check-out", attendanceHandler.CheckOut)
	attendanceGroup.Post("/scan", attendanceHandler.ScanQRCode)
	attendanceGroup.Get("/my-history", attendanceHandler.GetMyAttendanceHistory)

	adminAttendanceGroup := attendanceGroup.Group("/", middleware.AdminMiddleware())
	adminAttendanceGroup.Get("/generate-qr", attendanceHandler.GenerateQRCode)
	adminAttendanceGroup.Get("/logs", attendanceHandler.GetAllAttendance)

	// Leave request routes
	leaveGroup := api.Group("/leave-requests", middleware.AuthMiddleware(maker))
	leaveGroup.Post("/", leaveHandler.CreateLeaveRequest)
	leaveGroup.Get("/my", leaveHandler.GetMyLeaveRequests)
	adminLeaveGroup := leaveGroup.Group("/", middleware.AdminMiddleware())
	adminLeaveGroup.Get("/", leaveHandler.GetAllLeaveRequests)
	adminLeaveGroup.Put("/:id/status", leaveHandler.UpdateLeaveRequestStatus)

	// Notification routes
	notifGroup := api.Group("/notifications", middleware.AuthMiddleware(maker))
	notifGroup.Get("/", notifHandler.GetMyNotifications)
	notifGroup.Get("/unread-count", notifHandler.GetUnreadCount)
	notifGroup.Post("/read-all", notifHandler.MarkAllRead)
	notifGroup.Get("/toasts", notifHandler.GetActiveToasts)
	notifGroup.Delete("/toasts/:id", notifHandler.DismissToast)

	// Payroll routes
	payrollGroup := api.Group("/payroll", middleware.AuthMiddleware(maker))
	payrollGroup.Get("/my-slip", payrollHandler.GetMySalarySlip)
	adminPayrollGroup := payrollGroup.Group("/", middleware.AdminMiddleware())
	adminPayrollGroup.Get("/slips", payrollHandler.GetAllSalarySlips)
	adminPayrollGroup.Put("/salary/:id", payrollHandler.UpdateSalary)

	// Work schedule routes
	scheduleGroup := api.Group("/work-schedules", middleware.AuthMiddleware(maker))
	scheduleGroup.Get("/", scheduleHandler.GetAllWorkSchedules)
	scheduleGroup.Get("/holidays", scheduleHandler.GetHolidays)
	scheduleGroup.Get("/:id", scheduleHandler.GetWorkScheduleByID)
	adminScheduleGroup := scheduleGroup.Group("/", middleware.AdminMiddleware())
	adminScheduleGroup.Post("/", scheduleHandler.CreateWorkSchedule)
	adminScheduleGroup.Put("/:id", scheduleHandler.UpdateWorkSchedule)
	adminScheduleGroup.Delete("/:id", scheduleHandler.DeleteWorkSchedule)

	log.Println("All routes registered.")
}
