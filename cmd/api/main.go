package main

import (
  "context"
  "fmt"
  "os"
  "time"

  "github.com/joho/godotenv"

  "github.com/Bloodcipher/Amara/internal/db"
  "github.com/Bloodcipher/Amara/internal/handlers"
  "github.com/Bloodcipher/Amara/internal/logger"
  "github.com/Bloodcipher/Amara/internal/realtime"
  "github.com/Bloodcipher/Amara/internal/realtime/bus"
  "github.com/Bloodcipher/Amara/internal/repos"
  "github.com/Bloodcipher/Amara/internal/server"
  "github.com/Bloodcipher/Amara/internal/services"
  "github.com/Bloodcipher/Amara/internal/tracker"
  "github.com/Bloodcipher/Amara/internal/utils"
)

func main() {
  _ = godotenv.Load()

  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up repos from main...")
  attributeRepo := repos.NewAttributeRepo(thePG, log)
  productRepo := repos.NewProductRepo(thePG, log)
  sequenceRepo := repos.NewSkuSequenceRepo(thePG, log)
  jobCardRepo := repos.NewJobCardRepo(thePG, log)
  qcLogRepo := repos.NewQCLogRepo(thePG, log)
  inventoryRepo := repos.NewInventoryRepo(thePG, log)
  userRepo := repos.NewUserRepo(thePG, log)

  // Change bus + SSE hub
  log.Info("Setting up change bus and SSE hub from main...")
  changeBus, err := bus.NewRedisBus(log)
  if err != nil {
    log.Warn("Redis change bus unavailable; tracker runs poll-only", "error", err)
    changeBus = nil
  }
  sseHub := realtime.NewSSEHub(log)

  // Services
  log.Info("Setting up services from main...")
  notifier := services.NewTrackerNotifier(log, changeBus)
  skuService := services.NewSKUService(log, attributeRepo, productRepo, sequenceRepo)
  jobCardService := services.NewJobCardService(log, jobCardRepo, notifier)
  qcService := services.NewQCService(log, qcLogRepo, jobCardRepo, notifier)
  lookupService := services.NewLookupService(log, attributeRepo)
  dashboardService := services.NewDashboardService(log, productRepo, jobCardRepo, qcLogRepo, inventoryRepo, userRepo)

  // Tracker
  pollSeconds := utils.GetEnvAsInt("TRACKER_POLL_SECONDS", 15, log)
  merger := tracker.NewMerger(
    log,
    tracker.NewRepoStore(jobCardRepo, userRepo),
    changeBus,
    sseHub,
    tracker.WithPollInterval(time.Duration(pollSeconds)*time.Second),
  )
  if err := merger.Start(context.Background()); err != nil {
    log.Error("Tracker merger failed to start", "error", err)
    os.Exit(1)
  }
  defer merger.Stop()

  // Handlers
  log.Info("Setting up handlers from main...")
  lookupHandler := handlers.NewLookupHandler(log, lookupService)
  productHandler := handlers.NewProductHandler(log, skuService, productRepo)
  jobCardHandler := handlers.NewJobCardHandler(log, jobCardService)
  qcLogHandler := handlers.NewQCLogHandler(log, qcService)
  inventoryHandler := handlers.NewInventoryHandler(log, inventoryRepo)
  userHandler := handlers.NewUserHandler(log, userRepo)
  dashboardHandler := handlers.NewDashboardHandler(log, dashboardService)
  trackerHandler := handlers.NewTrackerHandler(log, sseHub, merger)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    LookupHandler:    lookupHandler,
    ProductHandler:   productHandler,
    JobCardHandler:   jobCardHandler,
    QCLogHandler:     qcLogHandler,
    InventoryHandler: inventoryHandler,
    UserHandler:      userHandler,
    DashboardHandler: dashboardHandler,
    TrackerHandler:   trackerHandler,
  })

  port := utils.GetEnv("PORT", "8080", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Warn("Server failed", "error", err)
  }
}
