package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/maazali/collegia/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	classController *controllers.ClassController,
	feeController *controllers.FeeController,
	attendanceController *controllers.AttendanceController,
	examController *controllers.ExamController,
	settingsController *controllers.SettingsController,
	dashboardController *controllers.DashboardController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Student roster routes
	students := v1.Group("/students")
	{
		students.POST("", studentController.Enroll)
		students.GET("", studentController.List)
		students.GET("/:id", studentController.Get)
		students.PUT("/:id", studentController.Update)
		students.PATCH("/:id/status", studentController.ChangeStatus)
		students.POST("/:id/leave", studentController.Leave)
		students.POST("/:id/fail", studentController.Fail)
		students.GET("/:id/fees", studentController.FeeStatus)
		students.GET("/:id/balance", studentController.Balance)
		students.GET("/:id/attendance", studentController.Attendance)
	}

	// Class routes. The static paths live on a different HTTP method tree
	// than DELETE /:code, so gin accepts both.
	classes := v1.Group("/classes")
	{
		classes.POST("", classController.Create)
		classes.GET("", classController.List)
		classes.GET("/names", classController.Names)
		classes.GET("/capacity", classController.Capacity)
		classes.DELETE("/:code", classController.Delete)
	}

	// Fee ledger routes
	fees := v1.Group("/fees")
	{
		fees.GET("", feeController.List)
		fees.POST("/collect", feeController.Collect)
		fees.POST("/generate", feeController.Generate)
		fees.PUT("/structure", feeController.SetStructure)
	}

	// Attendance routes
	v1.POST("/attendance", attendanceController.Save)

	// Exam routes
	exams := v1.Group("/exams")
	{
		exams.POST("", examController.Schedule)
		exams.GET("", examController.List)
		exams.DELETE("/:id", examController.Delete)
		exams.POST("/:id/marks", examController.RecordMarks)
	}

	// Settings routes
	settings := v1.Group("/settings")
	{
		settings.GET("", settingsController.Get)
		settings.PUT("", settingsController.Update)
	}

	// Dashboard routes
	dashboard := v1.Group("/dashboard")
	{
		dashboard.GET("/stats", dashboardController.Stats)
		dashboard.GET("/activity", dashboardController.Activity)
	}
}
