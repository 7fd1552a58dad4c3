package directory

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

// NewDBConnection opens the pool and pings it.
func NewDBConnection(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// PostgresSource reads the directory from the client_credentials table.
type PostgresSource struct {
	DB *sql.DB
}

func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{DB: db}
}

const listCredentialsQuery = `
	SELECT identifier, api_key, platform,
	       COALESCE(workspace_name, ''), COALESCE(client_name, '')
	FROM client_credentials
	WHERE active
	ORDER BY platform, id
`

func (s *PostgresSource) Load(ctx context.Context) ([]entity.DirectoryEntry, error) {
	rows, err := s.DB.QueryContext(ctx, listCredentialsQuery)
	if err != nil {
		return nil, fmt.Errorf("query client_credentials: %w", err)
	}
	defer rows.Close()

	var entries []entity.DirectoryEntry
	for rows.Next() {
		var (
			id, key, platform string
			workspace, person string
		)
		if err := rows.Scan(&id, &key, &platform, &workspace, &person); err != nil {
			return nil, err
		}
		p, err := entity.ParsePlatform(platform)
		if err != nil || p == "" {
			log.Printf("⚠️ Directory: skipping %s, unknown platform %q", id, platform)
			continue
		}
		entries = append(entries, newEntry(p, id, key, workspace, person))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// newEntry picks the display name: client name, then workspace name, then id.
func newEntry(p entity.Platform, id, key, workspace, person string) entity.DirectoryEntry {
	display := person
	if display == "" {
		display = workspace
	}
	if display == "" {
		display = id
	}
	return entity.DirectoryEntry{
		ClientName:    display,
		Platform:      p,
		Identifier:    id,
		Credential:    key,
		WorkspaceName: workspace,
		PersonName:    person,
	}
}
