package database

import "embed"

const MigrationDir = "migration"

//go:embed migration/*.sql
var Migrations embed.FS
