package database

import (
	"fmt"
	"log"

	"github.com/fitstack/fittrack/internal/config"
	"github.com/fitstack/fittrack/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// dialector builds a gorm.Dialector for the configured DB_TYPE using
// the given credentials.
func dialector(cfg *config.Config, user, password string) (gorm.Dialector, error) {
	switch cfg.DBType {
	case "mysql", "mariadb":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			user,
			password,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBDatabase,
		)
		return mysql.Open(dsn), nil

	case "postgres", "postgresql":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost,
			user,
			password,
			cfg.DBDatabase,
			cfg.DBPort,
		)
		return postgres.Open(dsn), nil

	case "sqlite":
		// For SQLite, DBDatabase is the file path; credentials do not apply
		return sqlite.Open(cfg.DBDatabase), nil

	case "sqlserver", "mssql":
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=%s",
			user,
			password,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBDatabase,
		)
		return sqlserver.Open(dsn), nil
	}

	return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
}

func open(cfg *config.Config, user, password string, connLimit int, label string) (*gorm.DB, error) {
	d, err := dialector(cfg, user, password)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(d, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", label, err)
	}

	// Get underlying SQL DB for connection pool configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxOpenConns(connLimit)
	sqlDB.SetMaxIdleConns(connLimit / 2)

	log.Printf("Connected to %s database %s (%s pool, tier %s)", cfg.DBType, cfg.DBDatabase, label, cfg.Tier)

	return db, nil
}

// Connect establishes the application database connection. This is the
// pool the API server and the seed command use.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	return open(cfg, cfg.DBAppUser, cfg.DBAppPassword, cfg.DBAppConnectionLimit, "app")
}

// ConnectAdmin establishes a connection with the admin credentials.
// The verification command uses this pool so it can scan every table
// regardless of per-table grants.
func ConnectAdmin(cfg *config.Config) (*gorm.DB, error) {
	user, password := cfg.DBAdminUser, cfg.DBAdminPassword
	if user == "" {
		user, password = cfg.DBAppUser, cfg.DBAppPassword
	}
	return open(cfg, user, password, cfg.DBAdminConnectionLimit, "admin")
}

// AutoMigrate runs automatic migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Profile{},
		&models.Exercise{},
		&models.WorkoutPlan{},
		&models.WorkoutPlanExercise{},
		&models.WorkoutSession{},
		&models.ExerciseLog{},
		&models.ProgressMetric{},
	)
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
