// Package batch scores lists of candidates against one project requirement
// in parallel and produces deterministic, ranked report sets.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-matcher/internal/scoring"
	"github.com/jonathan/talent-matcher/internal/types"
)

// Runner dispatches scoring work across a bounded worker pool. Scoring one
// pair is pure and CPU-bound, so no locking is needed: each worker writes
// only its own slot of the result slice.
type Runner struct {
	log         *zap.Logger
	concurrency int
}

// NewRunner creates a Runner. concurrency <= 0 uses GOMAXPROCS.
func NewRunner(log *zap.Logger, concurrency int) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	return &Runner{log: log, concurrency: concurrency}
}

// Run scores every candidate against the project and returns reports sorted
// by overall score descending, candidate id ascending on ties. The weight
// table is snapshotted once before dispatch; later edits by the caller do not
// leak into an in-flight batch.
func (r *Runner) Run(ctx context.Context, project *types.ProjectRequirement, candidates []types.CandidateProfile, weights types.ScoringWeights) ([]*types.CandidateScoreReport, error) {
	if project == nil {
		return nil, fmt.Errorf("project requirement is required")
	}
	if weights == nil {
		weights = types.DefaultWeights()
	}
	snapshot := weights.Clone()

	runID := uuid.New()
	start := time.Now()
	r.log.Info("scoring batch started",
		zap.String("run_id", runID.String()),
		zap.String("project_id", project.ID),
		zap.Int("candidates", len(candidates)),
		zap.Int("concurrency", r.concurrency),
	)

	reports := make([]*types.CandidateScoreReport, len(candidates))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = scoring.ScoreCandidate(project, &candidates[i], snapshot)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scoring batch %s: %w", runID, err)
	}

	sort.SliceStable(reports, func(a, b int) bool {
		if reports[a].OverallWeightedScore != reports[b].OverallWeightedScore {
			return reports[a].OverallWeightedScore > reports[b].OverallWeightedScore
		}
		return reports[a].CandidateID < reports[b].CandidateID
	})

	r.log.Info("scoring batch finished",
		zap.String("run_id", runID.String()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return reports, nil
}

// ReportSet is the serialized output of one batch run.
type ReportSet struct {
	RunID       string                        `json:"run_id"`
	ProjectID   string                        `json:"project_id"`
	GeneratedAt time.Time                     `json:"generated_at"`
	Reports     []*types.CandidateScoreReport `json:"reports"`
}

// WriteReports writes a ranked report set to path as indented JSON.
func WriteReports(path, projectID string, reports []*types.CandidateScoreReport) error {
	set := ReportSet{
		RunID:       uuid.New().String(),
		ProjectID:   projectID,
		GeneratedAt: time.Now().UTC(),
		Reports:     reports,
	}
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report set: %w", err)
	}
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report set to %s: %w", path, err)
	}
	return nil
}
