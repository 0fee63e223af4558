// Package db contains the database connection setup
package db

import (
	"fmt"

	"loomorro/goal-api/internal/model"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New opens the configured database and migrates the schema. With
// database.url or the discrete database.* fields set this is
// Postgres, otherwise a local SQLite file so the service can run
// without one.
func New() (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	dsn := viper.GetString("database.url")
	if dsn == "" && viper.GetString("database.host") != "" {
		dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			viper.GetString("database.host"),
			viper.GetInt("database.port"),
			viper.GetString("database.user"),
			viper.GetString("database.password"),
			viper.GetString("database.name"),
			viper.GetString("database.sslmode"),
		)
	}

	if dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Postgres, %w", err)
		}
	} else {
		db, err = gorm.Open(sqlite.Open("loomorro.db"))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite database, %w", err)
		}
	}

	err = db.AutoMigrate(model.User{}, model.File{}, model.Goal{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
