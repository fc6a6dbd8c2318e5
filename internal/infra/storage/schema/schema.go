package schema

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/HotelBookingService/pkg/psqlbuilder"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var (
	// ErrMigration возвращается при ошибке применения миграции
	ErrMigration = errors.New("schema: migration failed")
)

const createVersionsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    VARCHAR(255) PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// TransactionManager менеджер транзакций
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Migrate применяет встроенные миграции, которые ещё не были применены
// Каждая миграция выполняется в отдельной транзакции
func Migrate(ctx context.Context, db dbmetrics.DBExecutor, txManager TransactionManager, logger Logger) error {
	if _, err := db.ExecContext(ctx, createVersionsTable); err != nil {
		return fmt.Errorf("%w: create schema_migrations: %v", ErrMigration, err)
	}

	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("%w: list migrations: %v", ErrMigration, err)
	}
	sort.Strings(files)

	for _, file := range files {
		applied, err := isApplied(ctx, db, file)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		body, err := migrationsFS.ReadFile(file)
		if err != nil {
			return fmt.Errorf("%w: read %s: %v", ErrMigration, file, err)
		}

		err = txManager.Do(ctx, func(txCtx context.Context) error {
			executor := dbmetrics.GetExecutor(txCtx, db)
			if _, err := executor.ExecContext(txCtx, string(body)); err != nil {
				return fmt.Errorf("%w: apply %s: %v", ErrMigration, file, err)
			}

			query, args, err := psqlbuilder.Insert("schema_migrations").
				Columns("version").
				Values(file).
				ToSql()
			if err != nil {
				return fmt.Errorf("%w: build insert for %s: %v", ErrMigration, file, err)
			}
			if _, err := executor.ExecContext(txCtx, query, args...); err != nil {
				return fmt.Errorf("%w: record %s: %v", ErrMigration, file, err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		logger.Info("Migration applied: %s", file)
	}

	return nil
}

func isApplied(ctx context.Context, db dbmetrics.DBExecutor, version string) (bool, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("schema_migrations").
		Where(squirrel.Eq{"version": version}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: build select: %v", ErrMigration, err)
	}

	var count int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: check %s: %v", ErrMigration, version, err)
	}
	return count > 0, nil
}
