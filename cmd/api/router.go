package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookshelf-backend/internal/infrastructure/storage"
	"bookshelf-backend/internal/shared/middleware"
	"bookshelf-backend/internal/shared/response"
	"bookshelf-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// The welcome route keeps its historical 234 status; clients depend
	// on it as a reachability probe.
	router.GET("/", func(c *gin.Context) {
		c.String(234, "Welcome to the Bookshelf API")
	})

	router.GET("/health", healthCheckHandler(c))

	router.GET("/uploads/:filename", serveUploadHandler(c))

	setupBookRoutes(router, c)
	setupUserRoutes(router, c)

	return router
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(router *gin.Engine, c *container.Container) {
	books := router.Group("/books")
	{
		books.POST("", c.BookHandler.CreateBook)
		books.GET("", c.BookHandler.ListBooks)
		books.GET("/export", c.BookHandler.ExportBooks)
		books.GET("/:id", c.BookHandler.GetBook)
		books.PUT("/:id", c.BookHandler.UpdateBook)
		books.DELETE("/:id", c.BookHandler.DeleteBook)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(router *gin.Engine, c *container.Container) {
	users := router.Group("/user")
	{
		users.POST("/signup", c.UserHandler.Signup)
		users.POST("/login", c.UserHandler.Login)
	}
}

// serveUploadHandler streams a stored file back to the client. Works for
// both media backends; with MinIO the canonical URLs point at the bucket,
// but files stay reachable here as well.
func serveUploadHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		filename := c.Param("filename")

		data, contentType, err := appCtx.MediaStore.Open(c.Request.Context(), filename)
		if err != nil {
			if errors.Is(err, storage.ErrFileNotFound) {
				response.NotFound(c, "File not found")
				return
			}
			response.InternalServerError(c, err.Error())
			return
		}

		c.Data(http.StatusOK, contentType, data)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		{
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
			cancel()
		}

		redisStatus := "ok"
		{
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			if err := appCtx.Cache.HealthCheck(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
			cancel()
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
