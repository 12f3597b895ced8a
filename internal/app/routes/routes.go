package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/edubase/studenthub/internal/app/controllers"
	"github.com/edubase/studenthub/internal/app/models/dto"
	"github.com/edubase/studenthub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	batchController *controllers.BatchController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/google-login", authController.GoogleLogin)
		auth.POST("/apple-login", authController.AppleLogin)
	}

	// Course catalog is readable without a session
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAll)
		courses.GET("/:id", courseController.GetByID)
	}

	// Batches are readable without a session
	batches := v1.Group("/batches")
	{
		batches.GET("", batchController.GetAll)
		batches.GET("/:id", batchController.GetByID)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)

		students := authenticated.Group("/students")
		{
			students.GET("", studentController.GetAll)
			students.GET("/:id", studentController.GetByID)
			students.GET("/batch/:batchId", studentController.GetByBatch)
			students.GET("/course/:courseId", studentController.GetByCourse)
			students.PUT("/:id", studentController.Update)
			students.DELETE("/:id", studentController.Delete)
			students.POST("/:id/image", studentController.UploadImage)
		}

		coursesProtected := authenticated.Group("/courses")
		{
			coursesProtected.POST("", courseController.Create)
			coursesProtected.PUT("/:id", courseController.Update)
			coursesProtected.DELETE("/:id", courseController.Delete)
		}

		batchesProtected := authenticated.Group("/batches")
		{
			batchesProtected.POST("", batchController.Create)
			batchesProtected.PUT("/:id", batchController.Update)
			batchesProtected.DELETE("/:id", batchController.Delete)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})
}
