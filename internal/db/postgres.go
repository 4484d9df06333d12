package db

import (
  "fmt"
  "gorm.io/driver/postgres"
  "gorm.io/gorm"
  "github.com/Bloodcipher/Amara/internal/types"
  "github.com/Bloodcipher/Amara/internal/utils"
  "github.com/Bloodcipher/Amara/internal/logger"
)

type PostgresService struct {
  db *gorm.DB
  log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  log.Info("Loading environment variables...")
  postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
  postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
  postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
  postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
  postgresName := utils.GetEnv("POSTGRES_NAME", "amara", log)
  log.Debug("Environment variables loaded")

  dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

  log.Info("Connecting to Postgres...")
  db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
    DisableForeignKeyConstraintWhenMigrating: true,
  })
  if err != nil {
    log.Error("Failed to connect to Postgres", "error", err)
    return nil, fmt.Errorf("Failed to connect to Postgres: %w", err)
  }

  if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
    log.Error("Failed to enable uuid-ossp extension", "error", err)
    return nil, fmt.Errorf("Failed to enable uuid-ossp extension: %w", err)
  }
  log.Info("uuid-ossp extension enabled")

  return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Auto migrating postgres tables...")
  err := s.db.AutoMigrate(
    &types.User{},
    &types.AttributeCode{},
    &types.Product{},
    &types.SkuSequence{},
    &types.JobCard{},
    &types.QCLog{},
    &types.InventoryItem{},
  )
  if err != nil {
    s.log.Error("Auto migration failed for postgres tables", "error", err)
    return err
  }
  s.log.Info("Configuring foreign key relationships for postgres tables...")
  constraints := []string{
    `ALTER TABLE "job_card"
     ADD CONSTRAINT "fk_job_card_product_id"
     FOREIGN KEY ("product_id")
     REFERENCES "product"("id")
     ON DELETE RESTRICT`,
    `ALTER TABLE "qc_log"
     ADD CONSTRAINT "fk_qc_log_job_card_id"
     FOREIGN KEY ("job_card_id")
     REFERENCES "job_card"("id")
     ON DELETE CASCADE`,
    `ALTER TABLE "inventory_item"
     ADD CONSTRAINT "fk_inventory_item_product_id"
     FOREIGN KEY ("product_id")
     REFERENCES "product"("id")
     ON DELETE CASCADE`,
    `ALTER TABLE "product"
     ADD CONSTRAINT "fk_product_face_value_id"
     FOREIGN KEY ("face_value_id") REFERENCES "sku_attribute"("id") ON DELETE RESTRICT`,
    `ALTER TABLE "product"
     ADD CONSTRAINT "fk_product_category_id"
     FOREIGN KEY ("category_id") REFERENCES "sku_attribute"("id") ON DELETE RESTRICT`,
    `ALTER TABLE "product"
     ADD CONSTRAINT "fk_product_material_id"
     FOREIGN KEY ("material_id") REFERENCES "sku_attribute"("id") ON DELETE RESTRICT`,
    `ALTER TABLE "product"
     ADD CONSTRAINT "fk_product_motif_id"
     FOREIGN KEY ("motif_id") REFERENCES "sku_attribute"("id") ON DELETE RESTRICT`,
    `ALTER TABLE "product"
     ADD CONSTRAINT "fk_product_finding_id"
     FOREIGN KEY ("finding_id") REFERENCES "sku_attribute"("id") ON DELETE RESTRICT`,
    `ALTER TABLE "product"
     ADD CONSTRAINT "fk_product_locking_id"
     FOREIGN KEY ("locking_id") REFERENCES "sku_attribute"("id") ON DELETE RESTRICT`,
    `ALTER TABLE "product"
     ADD CONSTRAINT "fk_product_size_id"
     FOREIGN KEY ("size_id") REFERENCES "sku_attribute"("id") ON DELETE RESTRICT`,
  }
  for _, stmt := range constraints {
    if err := s.db.Exec(stmt).Error; err != nil {
      // Re-running migration against an existing schema hits duplicate
      // constraint names; that is not a failure.
      s.log.Debug("Constraint statement skipped", "error", err)
    }
  }
  return nil
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}
