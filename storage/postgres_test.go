package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupPostgres connects to HACKATHON_TEST_POSTGRES_URL and isolates the test in its own schema.
func setupPostgres(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("HACKATHON_TEST_POSTGRES_URL")
	if dsn == "" {
		t.Skip("HACKATHON_TEST_POSTGRES_URL not set")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		t.Skipf("postgres not reachable: %v", err)
	}

	// search_path is per connection
	db.SetMaxOpenConns(1)
	schema := fmt.Sprintf("hackathon_test_%d", time.Now().UnixNano())
	_, err = db.Exec(`CREATE SCHEMA ` + schema)
	require.NoError(t, err)
	_, err = db.Exec(`SET search_path TO ` + schema)
	require.NoError(t, err)

	t.Cleanup(func() {
		if _, err := db.Exec(`DROP SCHEMA ` + schema + ` CASCADE`); err != nil {
			t.Logf("failed to drop schema %s: %v", schema, err)
		}
		_ = db.Close()
	})

	require.NoError(t, CreateSchema(db))
	return db
}

func postgresGateway(db *sql.DB) *Gateway {
	return &Gateway{
		Teams:       &PostgresTeamStorage{DB: db},
		Votes:       &PostgresVoteStorage{DB: db},
		Predictions: &PostgresPredictionStorage{DB: db},
		Judges:      &PostgresJudgeStorage{DB: db},
		JudgeVotes:  &PostgresJudgeVoteStorage{DB: db},
	}
}

func TestPostgresStorageContract(t *testing.T) {
	db := setupPostgres(t)
	gw := postgresGateway(db)
	runStorageContract(t, gw)

	ctx := context.Background()

	t.Run("Unhappy path - delete a team that has votes", func(t *testing.T) {
		assert.ErrorIs(t, gw.Teams.Delete(ctx, 1), ErrInUse)

		team, err := gw.GetTeam(ctx, 1)
		require.NoError(t, err)
		assert.NotNil(t, team)
	})

	t.Run("Happy path - delete an unreferenced team", func(t *testing.T) {
		require.NoError(t, gw.Teams.Create(ctx, &Team{ID: 9, Name: "Spare"}))
		require.NoError(t, gw.Teams.Delete(ctx, 9))

		team, err := gw.GetTeam(ctx, 9)
		require.NoError(t, err)
		assert.Nil(t, team)
	})
}
