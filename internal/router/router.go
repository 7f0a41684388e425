// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"taskdeck/internal/cache"
	"taskdeck/internal/database"
	"taskdeck/internal/handler"
	"taskdeck/internal/handler/auth"
	"taskdeck/internal/handler/tasks"
	"taskdeck/internal/handler/users"
	"taskdeck/internal/middleware"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache) {
	api := e.Group("/api")
	requireAuth := middleware.RequireAuth(db)

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db, rdb), requireAuth)

	// 註冊與登入
	api.POST("/auth/register", auth.RegisterHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db))

	// 當前使用者
	api.GET("/users/me", users.GetMyUserHandler(db), requireAuth)

	// 任務 CRUD，一律以令牌主體為擁有者
	apiTasks := api.Group("/tasks", requireAuth)
	apiTasks.POST("", tasks.CreateTaskHandler(db))
	apiTasks.GET("", tasks.ListTasksHandler(db))
	apiTasks.GET("/:task_id", tasks.GetTaskHandler(db))
	apiTasks.PUT("/:task_id", tasks.UpdateTaskHandler(db))
	apiTasks.PATCH("/:task_id/complete", tasks.CompleteTaskHandler(db))
	apiTasks.DELETE("/:task_id", tasks.DeleteTaskHandler(db))
}
