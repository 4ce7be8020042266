package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

type Postgres struct {
	Client *gorm.DB
	cfg    Config
	logger Logger
}

// NewPostgres connects to the configured database and applies the pool
// settings.
func NewPostgres(cfg Config, logger Logger) (*Postgres, error) {
	conn, err := connectToPostgres(logger, cfg)
	if err != nil {
		return nil, err
	}

	return &Postgres{
		Client: conn,
		cfg:    cfg,
		logger: logger,
	}, nil
}

func connectToPostgres(logger Logger, cfg Config) (*gorm.DB, error) {
	pgConnStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Connection.Host,
		cfg.Connection.Port,
		cfg.Connection.User,
		cfg.Connection.Password,
		cfg.Connection.DbName,
		cfg.Connection.SSLMode)

	database, err := gorm.Open(
		postgres.Open(pgConnStr),
		&gorm.Config{
			TranslateError: true,
		})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL database: %w", err)
	}

	databaseInstance, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get PostgreSQL database instance: %w", err)
	}

	if cfg.ConnectionDetails.MaxOpenConns > 0 {
		databaseInstance.SetMaxOpenConns(cfg.ConnectionDetails.MaxOpenConns)
	}
	if cfg.ConnectionDetails.MaxIdleConns > 0 {
		databaseInstance.SetMaxIdleConns(cfg.ConnectionDetails.MaxIdleConns)
	}
	if cfg.ConnectionDetails.ConnMaxLifetime > 0 {
		databaseInstance.SetConnMaxLifetime(cfg.ConnectionDetails.ConnMaxLifetime)
	}

	logger.Info("Successfully connected to PostgreSQL database", nil, nil)

	return database, nil
}

// Close releases the underlying connection pool.
func (p *Postgres) Close() error {
	db, err := p.Client.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
