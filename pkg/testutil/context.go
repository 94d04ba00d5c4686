package testutil

import (
	"context"
	"time"

	"github.com/nordicmagic/backend/config"
	"github.com/nordicmagic/backend/internal/entity"
	"github.com/nordicmagic/backend/pkg/logger"
	"github.com/nordicmagic/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	// A single connection keeps every goroutine on the same in-memory
	// database.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	cfg := config.Configs{
		Env:      "test",
		LogLevel: "ERROR",
		Oracle: config.OracleConfigs{
			SuspicionThreshold: 5,
			SuspicionDamping:   0.05,
			AttemptWindow:      config.Duration{Duration: 24 * time.Hour},
			CodePrefix:         "NORDIC-",
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.ERROR))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}
