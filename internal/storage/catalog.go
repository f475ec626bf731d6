package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/Veraticus/ledgerfield/internal/common"
	"github.com/Veraticus/ledgerfield/internal/model"
)

// catalogTable names a table holding catalog entries. Only the constants
// below are ever interpolated into SQL.
type catalogTable string

const (
	tableTxMethods catalogTable = "tx_methods"
	tableTags      catalogTable = "tags"
)

// AddTxMethod stores a new transaction method after the existing ones.
func (s *SQLiteStorage) AddTxMethod(ctx context.Context, name string) error {
	return s.addEntry(ctx, tableTxMethods, name)
}

// ListTxMethods returns the transaction methods in creation order.
func (s *SQLiteStorage) ListTxMethods(ctx context.Context) ([]string, error) {
	return s.listEntries(ctx, tableTxMethods)
}

// RemoveTxMethod deletes a transaction method, matching the name without case.
func (s *SQLiteStorage) RemoveTxMethod(ctx context.Context, name string) error {
	return s.removeEntry(ctx, tableTxMethods, name)
}

// AddTag stores a new tag after the existing ones.
func (s *SQLiteStorage) AddTag(ctx context.Context, name string) error {
	return s.addEntry(ctx, tableTags, name)
}

// ListTags returns the tags in creation order.
func (s *SQLiteStorage) ListTags(ctx context.Context) ([]string, error) {
	return s.listEntries(ctx, tableTags)
}

// RemoveTag deletes a tag, matching the name without case.
func (s *SQLiteStorage) RemoveTag(ctx context.Context, name string) error {
	return s.removeEntry(ctx, tableTags, name)
}

// Snapshot loads the methods and tags into an immutable catalog for the
// field validators.
func (s *SQLiteStorage) Snapshot(ctx context.Context) (model.Catalog, error) {
	methods, err := s.ListTxMethods(ctx)
	if err != nil {
		return model.Catalog{}, err
	}
	tags, err := s.ListTags(ctx)
	if err != nil {
		return model.Catalog{}, err
	}
	return model.NewCatalog(methods, tags), nil
}

func (s *SQLiteStorage) addEntry(ctx context.Context, table catalogTable, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateName(name, "name"); err != nil {
		return err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var next int
		err := tx.QueryRowContext(ctx,
			fmt.Sprintf(`SELECT COALESCE(MAX(position), 0) + 1 FROM %s`, table)).Scan(&next)
		if err != nil {
			return fmt.Errorf("failed to get next position: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			fmt.Sprintf(`INSERT INTO %s (id, name, position) VALUES (?, ?, ?)`, table),
			uuid.NewString(), name, next)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %q", common.ErrDuplicateEntry, name)
			}
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Debug("added catalog entry", "table", string(table), "name", name)
	return nil
}

func (s *SQLiteStorage) listEntries(ctx context.Context, table catalogTable) ([]string, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT name FROM %s ORDER BY position`, table))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", table, err)
	}

	return names, nil
}

func (s *SQLiteStorage) removeEntry(ctx context.Context, table catalogTable, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			fmt.Sprintf(`DELETE FROM %s WHERE name = ?`, table), name)
		if err != nil {
			return fmt.Errorf("failed to delete from %s: %w", table, err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return fmt.Errorf("%w: %q", common.ErrNotFound, name)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Debug("removed catalog entry", "table", string(table), "name", name)
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
