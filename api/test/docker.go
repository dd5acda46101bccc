package test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/ory/dockertest/v3"
	"github.com/skinflex/api/config"
	"github.com/skinflex/api/database"
	"github.com/skinflex/api/random"
)

// startDB runs a throwaway postgres container and returns a migrated
// connection. Tests calling it skip when no Docker daemon is reachable.
func startDB(t *testing.T) *sqlx.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker not available: %v", err)
	}

	// Each test gets its own database so containers that outlive a
	// failed purge never collide.
	name := "skinflex_" + random.String(8)

	res, err := pool.Run("postgres", "15-alpine", []string{
		"POSTGRES_USER=postgres",
		"POSTGRES_PASSWORD=postgres",
		"POSTGRES_DB=" + name,
	})
	if err != nil {
		t.Fatalf("starting postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := pool.Purge(res); err != nil {
			t.Logf("purging postgres container: %v", err)
		}
	})

	db, err := database.Open(config.DB{
		User:       "postgres",
		Password:   "postgres",
		Host:       fmt.Sprintf("localhost:%s", res.GetPort("5432/tcp")),
		Name:       name,
		DisableTLS: true,
	})
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.StatusCheck(ctx, db); err != nil {
		t.Fatalf("waiting for database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating database: %v", err)
	}

	return db
}
