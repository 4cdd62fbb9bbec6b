// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-logr/logr/testr"

	"github.com/in-nis/studytrack/internal/config"
	"github.com/in-nis/studytrack/internal/db"
)

var dbSeq atomic.Int64

// NewStore opens a migrated in-memory SQLite store private to t.
func NewStore(t *testing.T) *db.Store {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_fk=1", name, dbSeq.Add(1))
	store, err := db.Open(dsn, testr.New(t))
	if err != nil {
		t.Fatalf("db.Open(%q) error = %v", dsn, err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("store.Close() error = %v", err)
		}
	})
	return store
}

// Config returns a configuration suitable for tests.
func Config() *config.Config {
	return &config.Config{
		Addr:             ":0",
		SecretKey:        "test-secret",
		ReminderInterval: time.Minute,
		SessionTTL:       time.Hour,
		RememberTTL:      30 * 24 * time.Hour,
	}
}

// Clock is a settable time source.
type Clock struct {
	now atomic.Pointer[time.Time]
}

func NewClock(t time.Time) *Clock {
	c := &Clock{}
	c.Set(t)
	return c
}

func (c *Clock) Now() time.Time { return *c.now.Load() }

func (c *Clock) Set(t time.Time) { c.now.Store(&t) }

func (c *Clock) Advance(d time.Duration) { c.Set(c.Now().Add(d)) }
