// Package tasjeel holds assets embedded into the binary, currently the goose
// SQL migrations applied by the migrate subcommand and the integration tests.
package tasjeel

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
