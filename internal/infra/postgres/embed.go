package postgres

import "embed"

// MigrationsFS carrega os arquivos de migração junto com o binário.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
