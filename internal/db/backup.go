package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// BackupTables are dumped and restored in this order; jobs reference
// companies.
var BackupTables = []string{"companies", "jobs"}

// Backup writes one CSV file per table of BackupTables into dir using COPY.
func (db *DB) Backup(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}

	conn, err := db.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	for _, table := range BackupTables {
		f, err := os.Create(filepath.Join(dir, table+".csv"))
		if err != nil {
			return fmt.Errorf("create %s backup: %w", table, err)
		}
		_, err = conn.Conn().PgConn().CopyTo(ctx, f, fmt.Sprintf(`COPY %s TO STDOUT WITH (FORMAT csv, HEADER)`, table))
		closeErr := f.Close()
		if err != nil {
			return fmt.Errorf("copy %s: %w", table, err)
		}
		if closeErr != nil {
			return fmt.Errorf("close %s backup: %w", table, closeErr)
		}
	}

	return nil
}

// Restore replaces the contents of BackupTables with the CSV files in dir,
// in a single transaction.
func (db *DB) Restore(ctx context.Context, dir string) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin restore: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `TRUNCATE companies, jobs RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	for _, table := range BackupTables {
		f, err := os.Open(filepath.Join(dir, table+".csv"))
		if err != nil {
			return fmt.Errorf("open %s backup: %w", table, err)
		}
		_, err = tx.Conn().PgConn().CopyFrom(ctx, f, fmt.Sprintf(`COPY %s FROM STDIN WITH (FORMAT csv, HEADER)`, table))
		f.Close()
		if err != nil {
			return fmt.Errorf("copy %s: %w", table, err)
		}
	}

	if _, err := tx.Exec(ctx, `SELECT setval(pg_get_serial_sequence('jobs', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM jobs`); err != nil {
		return fmt.Errorf("reset jobs sequence: %w", err)
	}

	return tx.Commit(ctx)
}
