package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"starwars_api/internal/config"
	"starwars_api/internal/logger"
)

// EnsureDatabaseExists creates the application database through the admin
// connection. It is a no-op when admin credentials are not configured.
func EnsureDatabaseExists(ctx context.Context, cfg *config.Config) error {
	adminDSN := cfg.AdminDSN()
	if adminDSN == "" {
		logger.DB().Debug("admin credentials not configured, skipping database bootstrap")
		return nil
	}

	log := logger.DB().WithField("database", cfg.DBName)
	log.Info("checking if database exists")

	pool, err := pgxpool.New(ctx, adminDSN)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)"
	if err := pool.QueryRow(ctx, query, cfg.DBName).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		log.Info("database already exists")
		return nil
	}

	// CREATE DATABASE cannot run inside a transaction.
	createQuery := fmt.Sprintf("CREATE DATABASE %s", pgx.Identifier{cfg.DBName}.Sanitize())
	if _, err := pool.Exec(ctx, createQuery); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	log.Info("database created")
	return nil
}

func Connect(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	logger.DB().Infof("connecting to database: postgres://%s:***@%s:%s/%s", cfg.DBUser, cfg.DBHost, cfg.DBPort, cfg.DBName)
	return Open(ctx, cfg.DSN())
}

// Open creates a pool for dsn and verifies it with a ping.
func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string (check your .env file): %w", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = 5 * time.Minute
	poolConfig.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.DB().Info("database connection pool established")
	return pool, nil
}

// OpenORM wraps pool in a gorm handle. Both share the same connections, so
// closing the pool closes the ORM as well. Driver errors are translated into
// gorm's sentinel errors (duplicate key, foreign key, check constraint).
func OpenORM(pool *pgxpool.Pool) (*gorm.DB, error) {
	sqlDB := stdlib.OpenDBFromPool(pool)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.Gorm(),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open ORM: %w", err)
	}
	return db, nil
}

// Setup prepares storage for the API and the importer: it creates the database
// when admin credentials allow, connects, migrates, and opens the ORM on the
// same pool.
func Setup(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, *gorm.DB, error) {
	if err := EnsureDatabaseExists(ctx, cfg); err != nil {
		return nil, nil, err
	}

	pool, err := Connect(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := RunMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}

	db, err := OpenORM(pool)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	return pool, db, nil
}
