package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/golang-migrate/migrate/v4"
	clickmigrations "github.com/golang-migrate/migrate/v4/database/clickhouse"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"

	"urlpro/internal/types"
)

//go:embed migrations/clickhouse/*.sql
var migrationsClickHouseFS embed.FS

type ClickHouseOptions struct {
	Addr          string
	User          string
	Password      string
	Database      string
	BufferSize    int
	BatchSize     int
	FlushInterval time.Duration
}

// ClickMirror copies enriched click events into ClickHouse in batches.
// The relational store stays the source of truth; the mirror is lossy
// under back-pressure.
type ClickMirror struct {
	db            *sql.DB
	clicksBuffer  chan types.ClickEvent
	batchSize     int
	flushInterval time.Duration
	flush         func(ctx context.Context, clicks []types.ClickEvent) error
	wg            sync.WaitGroup
}

func ConnectClickHouse(ctx context.Context, opts ClickHouseOptions) (*ClickMirror, error) {
	conn := clickhouse.OpenDB(&clickhouse.Options{
		Addr: []string{opts.Addr},
		Auth: clickhouse.Auth{
			Database: opts.Database,
			Username: opts.User,
			Password: opts.Password,
		},
		DialTimeout: 30 * time.Second,
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
	})
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping clickhouse: %w", err)
	}

	m := newClickMirror(opts.BufferSize, opts.BatchSize, opts.FlushInterval, nil)
	m.db = conn
	m.flush = m.recordClicks

	if err := m.runMigrations(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return m, nil
}

func newClickMirror(bufferSize, batchSize int, flushInterval time.Duration,
	flush func(ctx context.Context, clicks []types.ClickEvent) error) *ClickMirror {
	if bufferSize <= 0 {
		bufferSize = 1000
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	if flushInterval <= 0 {
		flushInterval = 5 * time.Second
	}
	return &ClickMirror{
		clicksBuffer:  make(chan types.ClickEvent, bufferSize),
		batchSize:     batchSize,
		flushInterval: flushInterval,
		flush:         flush,
	}
}

func (m *ClickMirror) runMigrations() error {
	d, err := iofs.New(migrationsClickHouseFS, "migrations/clickhouse")
	if err != nil {
		return err
	}

	driver, err := clickmigrations.WithInstance(m.db, &clickmigrations.Config{})
	if err != nil {
		return err
	}

	mg, err := migrate.NewWithInstance("iofs", d, "clickhouse", driver)
	if err != nil {
		return err
	}

	if err := mg.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply clickhouse migrations: %w", err)
	}

	logrus.Info("ClickHouse migrations applied successfully")
	return nil
}

// Start runs the batching worker until ctx is cancelled, then flushes
// whatever is still buffered.
func (m *ClickMirror) Start(ctx context.Context) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.worker(ctx)
	}()
}

func (m *ClickMirror) worker(ctx context.Context) {
	var buffer []types.ClickEvent
	ticker := time.NewTicker(m.flushInterval)
	defer ticker.Stop()

	flush := func(flushCtx context.Context) {
		if len(buffer) == 0 {
			return
		}
		if err := m.flush(flushCtx, buffer); err != nil {
			logrus.WithError(err).WithField("batch", len(buffer)).Warn("ClickHouse flush failed")
		}
		buffer = nil
	}

	for {
		select {
		case <-ctx.Done():
			for {
				select {
				case ev := <-m.clicksBuffer:
					buffer = append(buffer, ev)
				default:
					drainCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					flush(drainCtx)
					cancel()
					return
				}
			}
		case ev := <-m.clicksBuffer:
			buffer = append(buffer, ev)
			if len(buffer) >= m.batchSize {
				flush(ctx)
			}
		case <-ticker.C:
			flush(ctx)
		}
	}
}

// PushClick never blocks; events are dropped when the buffer is full.
func (m *ClickMirror) PushClick(ev types.ClickEvent) {
	select {
	case m.clicksBuffer <- ev:
	default:
		logrus.WithField("short_url_id", ev.ShortURLID).Warn("Click mirror buffer full, dropping event")
	}
}

// Close waits for the worker to drain and closes the connection. The
// context passed to Start must be cancelled first.
func (m *ClickMirror) Close() error {
	m.wg.Wait()
	if m.db == nil {
		return nil
	}
	return m.db.Close()
}

func (m *ClickMirror) recordClicks(ctx context.Context, clicks []types.ClickEvent) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO click_events (short_url_id, slug, ip_address, user_agent,
		referer, country, city, device_type, browser, os, is_unique, clicked_at)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, ev := range clicks {
		var unique uint8
		if ev.IsUnique {
			unique = 1
		}
		_, err := stmt.ExecContext(ctx, ev.ShortURLID, ev.Slug, ev.IPAddress, ev.UserAgent, ev.Referer,
			ev.Country, ev.City, ev.DeviceType, ev.Browser, ev.OS, unique, ev.ClickedAt.UTC())
		if err != nil {
			logrus.WithError(err).WithField("short_url_id", ev.ShortURLID).Error("failed to exec insert for click")
			continue
		}
	}
	return tx.Commit()
}
