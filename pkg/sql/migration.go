package sql

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/klwxsrx/kahuna-console/pkg/log"
)

const (
	migrationLock  = "perform_migration_lock"
	querySeparator = ";\n"

	migrationTableDDL = `
		CREATE TABLE IF NOT EXISTS migration (
			id text PRIMARY KEY
		)
	`
)

type Migration struct {
	txClient   TxClient
	migrations fs.ReadDirFS
	logger     log.Logger
}

func NewMigration(txClient TxClient, migrations fs.ReadDirFS, logger log.Logger) *Migration {
	return &Migration{txClient, migrations, logger}
}

// Execute applies not yet performed *.sql files in lexical order, each in its own transaction.
func (m *Migration) Execute(ctx context.Context) error {
	_, err := m.txClient.ExecContext(ctx, migrationTableDDL)
	if err != nil {
		return fmt.Errorf("create migration table: %w", err)
	}

	migrationIDs, err := m.getFileNames()
	if err != nil {
		return fmt.Errorf("get migration file names: %w", err)
	}

	tx := NewTransaction(m.txClient, "migration")
	client := NewTransactionalClient(m.txClient)
	for _, migrationID := range migrationIDs {
		var performed bool
		err = tx.Execute(ctx, func(ctx context.Context) error {
			performed, err = m.isPerformed(ctx, client, migrationID)
			if err != nil || performed {
				return err
			}

			return m.performMigration(ctx, client, migrationID)
		}, migrationLock)
		if err != nil {
			return fmt.Errorf("migration %s failed: %w", migrationID, err)
		}
		if !performed {
			m.logger.WithField("migrationID", migrationID).Info(ctx, "migration executed successfully")
		}
	}

	return nil
}

func (m *Migration) getFileNames() ([]string, error) {
	entries, err := m.migrations.ReadDir(".")
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		result = append(result, entry.Name())
	}
	slices.Sort(result)
	return result, nil
}

func (m *Migration) isPerformed(ctx context.Context, client Client, migrationID string) (bool, error) {
	var count int
	err := client.GetContext(ctx, &count, `SELECT count(*) FROM migration WHERE id = $1`, migrationID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *Migration) performMigration(ctx context.Context, client Client, migrationID string) error {
	content, err := fs.ReadFile(m.migrations, migrationID)
	if err != nil {
		return fmt.Errorf("read migration sql: %w", err)
	}
	if strings.TrimSpace(string(content)) == "" {
		return errors.New("empty migration")
	}

	_, err = client.ExecContext(ctx, `INSERT INTO migration VALUES ($1)`, migrationID)
	if err != nil {
		return err
	}

	for _, query := range strings.Split(string(content), querySeparator) {
		if strings.TrimSpace(query) == "" {
			continue
		}

		_, err = client.ExecContext(ctx, query)
		if err != nil {
			return err
		}
	}
	return nil
}
