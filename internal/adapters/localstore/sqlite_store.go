package localstore

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/SscSPs/def_finance/internal/core/cashstate"
	"github.com/fsnotify/fsnotify"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteStore persists values in a local SQLite file. Writes made by other
// processes to the same file are picked up through filesystem events.
type SQLiteStore struct {
	db       *sql.DB
	path     string
	fw       *fsnotify.Watcher
	watchers *watchers
	logger   *slog.Logger
	done     chan struct{}
}

var _ cashstate.Store = (*SQLiteStore)(nil)

// OpenSQLiteStore opens (creating if needed) the store at path.
func OpenSQLiteStore(path string, logger *slog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("local store path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create local store directory: %w", err)
	}

	dsn := path + "?_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping local store: %w", err)
	}
	if err := runMigrations(dsn); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate local store: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		db.Close()
		return nil, fmt.Errorf("watch local store directory: %w", err)
	}

	s := &SQLiteStore{
		db:       db,
		path:     filepath.Clean(path),
		fw:       fw,
		watchers: newWatchers(),
		logger:   logger,
		done:     make(chan struct{}),
	}
	go s.watchFile()
	return s, nil
}

func runMigrations(dsn string) error {
	migrateDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := sqlite.WithInstance(migrateDB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read key %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("write key %s: %w", key, err)
	}
	s.watchers.notify(key)
	return nil
}

func (s *SQLiteStore) Watch(key string) (<-chan struct{}, func()) {
	return s.watchers.add(key)
}

// Close stops the file watcher, releases every watcher and closes the
// database.
func (s *SQLiteStore) Close() error {
	err := s.fw.Close()
	<-s.done
	s.watchers.closeAll()
	if cerr := s.db.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// watchFile turns writes to the database file (or its journal) into
// change signals for every key.
func (s *SQLiteStore) watchFile() {
	defer close(s.done)
	for {
		select {
		case ev, ok := <-s.fw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !strings.HasPrefix(filepath.Clean(ev.Name), s.path) {
				continue
			}
			s.watchers.notify("")
		case err, ok := <-s.fw.Errors:
			if !ok {
				return
			}
			s.logger.Warn("Local store watcher error", slog.String("error", err.Error()))
		}
	}
}
