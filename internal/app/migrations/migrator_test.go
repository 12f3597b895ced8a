package migrations

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	exists bool
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if b, ok := dest[0].(*bool); ok {
		*b = r.exists
	}
	return nil
}

// fakeTx embeds pgx.Tx so only the methods the migrator touches need
// implementations.
type fakeTx struct {
	pgx.Tx
	execs      []string
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	t.execs = append(t.execs, sql)
	return pgconn.CommandTag{}, nil
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

type fakeDB struct {
	execs   []string
	applied map[string]bool
	tx      *fakeTx
	begun   int
}

func (d *fakeDB) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	d.execs = append(d.execs, sql)
	return pgconn.CommandTag{}, nil
}

func (d *fakeDB) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	version, _ := args[0].(string)
	return fakeRow{exists: d.applied[version]}
}

func (d *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	d.begun++
	return d.tx, nil
}

func writeMigration(t *testing.T, dir, name, sql string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(sql), 0o600))
	return path
}

func containsSQL(statements []string, fragment string) bool {
	for _, s := range statements {
		if strings.Contains(s, fragment) {
			return true
		}
	}
	return false
}

func TestMigrateFromFile_RecordsVersionInsideTransaction(t *testing.T) {
	path := writeMigration(t, t.TempDir(), "001_init.sql", "CREATE TABLE things (id BIGINT);")
	db := &fakeDB{applied: map[string]bool{}, tx: &fakeTx{}}

	err := NewMigrator(db).MigrateFromFile(path)
	require.NoError(t, err)

	assert.True(t, db.tx.committed)
	assert.True(t, containsSQL(db.tx.execs, "CREATE TABLE things"))
	assert.True(t, containsSQL(db.tx.execs, "INSERT INTO schema_migrations"),
		"version must be recorded on the migration transaction")
	assert.False(t, containsSQL(db.execs, "INSERT INTO schema_migrations"),
		"version must not be recorded outside the transaction")
}

func TestMigrateFromFile_CommitFailureRecordsNothing(t *testing.T) {
	path := writeMigration(t, t.TempDir(), "001_init.sql", "CREATE TABLE things (id BIGINT);")
	db := &fakeDB{
		applied: map[string]bool{},
		tx:      &fakeTx{commitErr: errors.New("connection reset")},
	}

	err := NewMigrator(db).MigrateFromFile(path)

	assert.Error(t, err)
	assert.False(t, db.tx.committed)
	assert.False(t, containsSQL(db.execs, "INSERT INTO schema_migrations"))
}

func TestMigrateFromFile_SkipsAppliedVersion(t *testing.T) {
	path := writeMigration(t, t.TempDir(), "002_add_column.sql", "ALTER TABLE things ADD COLUMN name TEXT;")
	db := &fakeDB{applied: map[string]bool{"002": true}, tx: &fakeTx{}}

	err := NewMigrator(db).MigrateFromFile(path)

	require.NoError(t, err)
	assert.Zero(t, db.begun, "an applied migration must not open a transaction")
	assert.Empty(t, db.tx.execs)
}

func TestMigrateFromDirectory_AppliesInOrder(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "002_second.sql", "SECOND;")
	writeMigration(t, dir, "001_first.sql", "FIRST;")
	writeMigration(t, dir, "notes.txt", "not a migration")
	db := &fakeDB{applied: map[string]bool{}, tx: &fakeTx{}}

	err := NewMigrator(db).MigrateFromDirectory(dir)
	require.NoError(t, err)

	var applied []string
	for _, s := range db.tx.execs {
		if s == "FIRST;" || s == "SECOND;" {
			applied = append(applied, s)
		}
	}
	assert.Equal(t, []string{"FIRST;", "SECOND;"}, applied)
}
