package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/talent-matcher/internal/types"
)

// PostgresStore reads candidate and project records from PostgreSQL. Records
// live as JSONB documents keyed by id:
//
//	CREATE TABLE candidate_profiles (id TEXT PRIMARY KEY, profile JSONB NOT NULL);
//	CREATE TABLE project_requirements (id TEXT PRIMARY KEY, requirement JSONB NOT NULL);
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// CandidateByID fetches one candidate profile.
func (s *PostgresStore) CandidateByID(ctx context.Context, id string) (*types.CandidateProfile, error) {
	var doc []byte
	err := s.pool.QueryRow(ctx,
		`SELECT profile FROM candidate_profiles WHERE id = $1`, id,
	).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("candidate %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate %s: %w", id, err)
	}
	var profile types.CandidateProfile
	if err := json.Unmarshal(doc, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode candidate %s: %w", id, err)
	}
	if profile.ID == "" {
		profile.ID = id
	}
	return &profile, nil
}

// ProjectByID fetches one project requirement.
func (s *PostgresStore) ProjectByID(ctx context.Context, id string) (*types.ProjectRequirement, error) {
	var doc []byte
	err := s.pool.QueryRow(ctx,
		`SELECT requirement FROM project_requirements WHERE id = $1`, id,
	).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project %s: %w", id, err)
	}
	var requirement types.ProjectRequirement
	if err := json.Unmarshal(doc, &requirement); err != nil {
		return nil, fmt.Errorf("failed to decode project %s: %w", id, err)
	}
	if requirement.ID == "" {
		requirement.ID = id
	}
	return &requirement, nil
}

// Candidates fetches all candidate profiles ordered by id.
func (s *PostgresStore) Candidates(ctx context.Context) ([]types.CandidateProfile, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, profile FROM candidate_profiles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var out []types.CandidateProfile
	for rows.Next() {
		var id string
		var doc []byte
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("failed to scan candidate row: %w", err)
		}
		var profile types.CandidateProfile
		if err := json.Unmarshal(doc, &profile); err != nil {
			return nil, fmt.Errorf("failed to decode candidate %s: %w", id, err)
		}
		if profile.ID == "" {
			profile.ID = id
		}
		out = append(out, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidates: %w", err)
	}
	return out, nil
}
