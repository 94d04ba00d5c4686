package migration

import "context"

// Migrators maps a schema version to its migrator. New versions are appended,
// never rewritten.
var Migrators = map[string]func(context.Context) error{
	"0000": migrate0000,
}
