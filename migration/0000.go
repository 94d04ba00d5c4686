package migration

import (
	"context"

	"github.com/nordicmagic/backend/internal/entity"
)

// migrate0000 creates the initial claims and attempts tables.
func migrate0000(ctx context.Context) error {
	return entity.MigrateTable(ctx)
}
