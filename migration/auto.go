package migration

import (
	"context"

	"github.com/nordicmagic/backend/internal/entity"
)

func AutoMigrate(ctx context.Context) error {
	return entity.MigrateTable(ctx)
}
