package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jhoicas/repuestos-api/pkg/logger"

	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registra el driver pgx5
	_ "github.com/golang-migrate/migrate/v4/source/file"     // registra el source file://
)

// Migrate aplica las migraciones pendientes del directorio migrationsPath.
func Migrate(databaseURL, migrationsPath string, log *logger.Logger) error {
	log.Info().Str("path", migrationsPath).Msg("aplicando migraciones de BD")

	m, err := migrate.New("file://"+migrationsPath, pgx5URL(databaseURL))
	if err != nil {
		return fmt.Errorf("abrir migraciones: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("migraciones: sin cambios")
			return nil
		}
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	log.Info().Msg("migraciones aplicadas")
	return nil
}

// pgx5URL cambia el scheme del DSN al que registra el driver pgx/v5 de migrate.
func pgx5URL(databaseURL string) string {
	if rest, ok := strings.CutPrefix(databaseURL, "postgresql://"); ok {
		return "pgx5://" + rest
	}
	if rest, ok := strings.CutPrefix(databaseURL, "postgres://"); ok {
		return "pgx5://" + rest
	}
	return databaseURL
}
