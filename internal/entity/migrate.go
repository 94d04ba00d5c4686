package entity

import (
	"context"

	"github.com/nordicmagic/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&Claim{},
		&Attempt{},
	)
}
