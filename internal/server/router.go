package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "github.com/Bloodcipher/Amara/internal/handlers"
)

type RouterConfig struct {
  LookupHandler     *handlers.LookupHandler
  ProductHandler    *handlers.ProductHandler
  JobCardHandler    *handlers.JobCardHandler
  QCLogHandler      *handlers.QCLogHandler
  InventoryHandler  *handlers.InventoryHandler
  UserHandler       *handlers.UserHandler
  DashboardHandler  *handlers.DashboardHandler
  TrackerHandler    *handlers.TrackerHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5173",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

  router.GET("/healthcheck", handlers.HealthCheck)

  api := router.Group("/api")
  {
    // Lookups
    api.GET("/lookups/:dimension", cfg.LookupHandler.List)
    api.POST("/lookups/:dimension", cfg.LookupHandler.Create)
    api.DELETE("/lookups/:dimension/:id", cfg.LookupHandler.Delete)
    // Products + SKU
    api.GET("/products", cfg.ProductHandler.List)
    api.POST("/products", cfg.ProductHandler.Create)
    api.POST("/sku/preview", cfg.ProductHandler.Preview)
    // Job cards
    api.GET("/job-cards", cfg.JobCardHandler.List)
    api.POST("/job-cards", cfg.JobCardHandler.Create)
    api.PATCH("/job-cards/:id/status", cfg.JobCardHandler.UpdateStatus)
    // QC
    api.GET("/qc-logs", cfg.QCLogHandler.List)
    api.POST("/qc-logs", cfg.QCLogHandler.Create)
    // Inventory
    api.GET("/inventory", cfg.InventoryHandler.List)
    api.POST("/inventory", cfg.InventoryHandler.Create)
    // Users
    api.GET("/users", cfg.UserHandler.List)
    api.POST("/users", cfg.UserHandler.Create)
    // Dashboard
    api.GET("/dashboard/stats", cfg.DashboardHandler.Stats)
    // Tracker
    api.GET("/tracker/summary", cfg.TrackerHandler.Summary)
    api.GET("/tracker/activity", cfg.TrackerHandler.Activity)
    api.GET("/tracker/stream", cfg.TrackerHandler.Stream)
  }

  return router
}
