package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/classpoint/sis-backend/internal/config"
	"github.com/classpoint/sis-backend/internal/handler"
	"github.com/classpoint/sis-backend/internal/middleware"
	"github.com/classpoint/sis-backend/internal/model"
	"github.com/classpoint/sis-backend/internal/response"
	"github.com/classpoint/sis-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Department *handler.DepartmentHandler
	Subject    *handler.SubjectHandler
	Section    *handler.SectionHandler
	Teacher    *handler.TeacherHandler
	Student    *handler.StudentHandler
	Class      *handler.ClassHandler
	AdminUser  *handler.AdminUserHandler
	Dashboard  *handler.DashboardHandler
	WS         *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/admin/login", handlers.Auth.Login)

		// Authenticated profile routes
		auth.POST("/admin/logout", middleware.RequireAdminJWT(authService), handlers.Auth.Logout)
		auth.GET("/admin/me", middleware.RequireAdminJWT(authService), handlers.Auth.Profile)
	}

	// ─── 2. WebSocket Group (Admin WS Auth) ────────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireAdminWSAuth(authService))
	{
		ws.GET("/admin/classes/stream", handlers.WS.ClassEventStream)
	}

	// ─── 3. Admin Group (JWT + Session + RBAC) ─────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(
		middleware.RequireAdminJWT(authService),
		middleware.CheckAdminSession(authService),
	)
	{
		// Dashboard
		adminAPI.GET("/dashboard",
			handlers.Dashboard.GetSummary, // Open to all admins
		)

		// Departments
		departmentsGroup := adminAPI.Group("/departments")
		{
			departmentsGroup.GET("", middleware.RequirePermission(string(model.PermissionDepartmentsRead)), handlers.Department.GetAll)
			departmentsGroup.GET("/:id", middleware.RequirePermission(string(model.PermissionDepartmentsRead)), handlers.Department.GetByID)
			departmentsGroup.GET("/:id/catalog", middleware.RequirePermission(string(model.PermissionClassesRead)), handlers.Department.GetCatalog)
			departmentsGroup.POST("", middleware.RequirePermission(string(model.PermissionDepartmentsWrite)), handlers.Department.Create)
			departmentsGroup.PUT("/:id", middleware.RequirePermission(string(model.PermissionDepartmentsWrite)), handlers.Department.Update)
			departmentsGroup.DELETE("/:id", middleware.RequirePermission(string(model.PermissionDepartmentsWrite)), handlers.Department.Delete)
		}

		// Subjects
		subjectsGroup := adminAPI.Group("/subjects")
		{
			subjectsGroup.GET("", middleware.RequirePermission(string(model.PermissionSubjectsRead)), handlers.Subject.GetAll)
			subjectsGroup.GET("/:id", middleware.RequirePermission(string(model.PermissionSubjectsRead)), handlers.Subject.GetByID)
			subjectsGroup.POST("", middleware.RequirePermission(string(model.PermissionSubjectsWrite)), handlers.Subject.Create)
			subjectsGroup.PUT("/:id", middleware.RequirePermission(string(model.PermissionSubjectsWrite)), handlers.Subject.Update)
			subjectsGroup.DELETE("/:id", middleware.RequirePermission(string(model.PermissionSubjectsWrite)), handlers.Subject.Delete)
		}

		// Sections
		sectionsGroup := adminAPI.Group("/sections")
		{
			sectionsGroup.GET("", middleware.RequirePermission(string(model.PermissionSectionsRead)), handlers.Section.GetAll)
			sectionsGroup.GET("/:id", middleware.RequirePermission(string(model.PermissionSectionsRead)), handlers.Section.GetByID)
			sectionsGroup.POST("", middleware.RequirePermission(string(model.PermissionSectionsWrite)), handlers.Section.Create)
			sectionsGroup.PUT("/:id", middleware.RequirePermission(string(model.PermissionSectionsWrite)), handlers.Section.Update)
			sectionsGroup.DELETE("/:id", middleware.RequirePermission(string(model.PermissionSectionsWrite)), handlers.Section.Delete)
		}

		// Teachers
		teachersGroup := adminAPI.Group("/teachers")
		{
			teachersGroup.GET("", middleware.RequirePermission(string(model.PermissionTeachersRead)), handlers.Teacher.GetAll)
			teachersGroup.GET("/:id", middleware.RequirePermission(string(model.PermissionTeachersRead)), handlers.Teacher.GetByID)
			teachersGroup.POST("", middleware.RequirePermission(string(model.PermissionTeachersWrite)), handlers.Teacher.Create)
			teachersGroup.PUT("/:id", middleware.RequirePermission(string(model.PermissionTeachersWrite)), handlers.Teacher.Update)
			teachersGroup.DELETE("/:id", middleware.RequirePermission(string(model.PermissionTeachersWrite)), handlers.Teacher.Delete)
		}

		// Students
		studentsGroup := adminAPI.Group("/students")
		{
			studentsGroup.GET("", middleware.RequirePermission(string(model.PermissionStudentsRead)), handlers.Student.GetAll)
			studentsGroup.GET("/:id", middleware.RequirePermission(string(model.PermissionStudentsRead)), handlers.Student.GetByID)
			studentsGroup.POST("", middleware.RequirePermission(string(model.PermissionStudentsWrite)), handlers.Student.Create)
			studentsGroup.PUT("/:id", middleware.RequirePermission(string(model.PermissionStudentsWrite)), handlers.Student.Update)
			studentsGroup.DELETE("/:id", middleware.RequirePermission(string(model.PermissionStudentsWrite)), handlers.Student.Delete)
		}

		// Classes
		classesGroup := adminAPI.Group("/classes")
		{
			classesGroup.GET("", middleware.RequirePermission(string(model.PermissionClassesRead)), handlers.Class.GetAll)
			classesGroup.GET("/:id", middleware.RequirePermission(string(model.PermissionClassesRead)), handlers.Class.GetByID)
			classesGroup.POST("/validate-schedule", middleware.RequirePermission(string(model.PermissionClassesWrite)), handlers.Class.ValidateSchedule)
			classesGroup.POST("/:id/roster/check", middleware.RequirePermission(string(model.PermissionClassesWrite)), handlers.Class.CheckRoster)
			classesGroup.POST("", middleware.RequirePermission(string(model.PermissionClassesWrite)), handlers.Class.Create)
			classesGroup.PUT("/:id", middleware.RequirePermission(string(model.PermissionClassesWrite)), handlers.Class.Update)
			classesGroup.DELETE("/:id", middleware.RequirePermission(string(model.PermissionClassesWrite)), handlers.Class.Delete)
		}

		// Console User Management
		usersGroup := adminAPI.Group("/users")
		{
			usersGroup.GET("", middleware.RequirePermission(string(model.PermissionAdminsRead)), handlers.AdminUser.GetAll)
			usersGroup.GET("/roles", middleware.RequirePermission(string(model.PermissionRolesRead)), handlers.AdminUser.GetRoles)
			usersGroup.GET("/:id", middleware.RequirePermission(string(model.PermissionAdminsRead)), handlers.AdminUser.GetByID)
			usersGroup.POST("", middleware.RequirePermission(string(model.PermissionAdminsWrite)), handlers.AdminUser.Create)
			usersGroup.PUT("/:id", middleware.RequirePermission(string(model.PermissionAdminsWrite)), handlers.AdminUser.Update)
			usersGroup.DELETE("/:id", middleware.RequirePermission(string(model.PermissionAdminsWrite)), handlers.AdminUser.Delete)
		}
	}

	return router
}
