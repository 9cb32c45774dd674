package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RunRepo stores evaluated design points: the scenario configuration that
// went in and the flat result mapping that came out.
type RunRepo struct{}

// NewRunRepo creates a new repository instance.
func NewRunRepo() *RunRepo {
	return &RunRepo{}
}

// CostingRun is one persisted pipeline evaluation.
type CostingRun struct {
	RunID    uuid.UUID              `json:"run_id"`
	Scenario string                 `json:"scenario"`
	Config   map[string]interface{} `json:"config"`
	Results  map[string]interface{} `json:"results"`
	RunAt    time.Time              `json:"run_at"`
}

// Save persists one run. Each evaluation gets a fresh run ID; the latest
// run per scenario name wins the unique index.
//
// Schema assumption (managed by migrations elsewhere):
//
//	CREATE TABLE IF NOT EXISTS costing_runs (
//	  run_id UUID PRIMARY KEY,
//	  scenario TEXT NOT NULL,
//	  run_json JSONB,
//	  run_at TIMESTAMPTZ,
//	  UNIQUE (scenario)
//	);
func (r *RunRepo) Save(ctx context.Context, scenario string, config, results map[string]interface{}) (uuid.UUID, error) {
	pool := GetPool()
	if pool == nil {
		return uuid.Nil, fmt.Errorf("database pool not initialized")
	}

	run := CostingRun{
		RunID:    uuid.New(),
		Scenario: scenario,
		Config:   config,
		Results:  results,
		RunAt:    time.Now().UTC(),
	}

	jsonData, err := json.Marshal(run)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal run: %w", err)
	}

	query := `
		INSERT INTO costing_runs (run_id, scenario, run_json, run_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (scenario)
		DO UPDATE SET run_id = $1, run_json = $3, run_at = $4`

	if _, err := pool.Exec(ctx, query, run.RunID, run.Scenario, jsonData, run.RunAt); err != nil {
		return uuid.Nil, fmt.Errorf("failed to save run: %w", err)
	}
	return run.RunID, nil
}

// Load retrieves the latest run for a scenario name.
func (r *RunRepo) Load(ctx context.Context, scenario string) (*CostingRun, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	var jsonData []byte
	query := `SELECT run_json FROM costing_runs WHERE scenario = $1`
	err := pool.QueryRow(ctx, query, scenario).Scan(&jsonData)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("no run found for scenario %q", scenario)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load run: %w", err)
	}

	var run CostingRun
	if err := json.Unmarshal(jsonData, &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run: %w", err)
	}
	return &run, nil
}
