package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/batch"
	"github.com/jonathan/talent-matcher/internal/config"
	"github.com/jonathan/talent-matcher/internal/retrieval"
	"github.com/jonathan/talent-matcher/internal/store"
	"github.com/jonathan/talent-matcher/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a list of candidates against a project",
	Long:  "Scores every candidate against the selected project in parallel and writes a ranked report set. Records come from JSON files or, with a database_url in the config, from PostgreSQL. With --retriever, the candidate list is first narrowed to the semantic shortlist and each candidate carries its relevance value.",
	RunE:  runMatch,
}

var (
	matchConfig     string
	matchProjects   string
	matchCandidates string
	matchProjectID  string
	matchWeights    string
	matchOutput     string
	matchRetriever  string
	matchTopN       int
	matchWorkers    int
)

func init() {
	matchCmd.Flags().StringVar(&matchConfig, "config", "", "Path to a JSON config file")
	matchCmd.Flags().StringVarP(&matchProjects, "projects", "p", "", "Path to project requirements JSON array")
	matchCmd.Flags().StringVarP(&matchCandidates, "candidates", "e", "", "Path to candidate profiles JSON array")
	matchCmd.Flags().StringVar(&matchProjectID, "project-id", "", "Project to match (first project if omitted)")
	matchCmd.Flags().StringVarP(&matchWeights, "weights", "w", "", "Path to a weight table JSON file")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "scored_candidates.json", "Path to output report set JSON")
	matchCmd.Flags().StringVar(&matchRetriever, "retriever", "", "Base URL of the retrieval service (optional)")
	matchCmd.Flags().IntVar(&matchTopN, "top", 10, "Shortlist size when --retriever is set")
	matchCmd.Flags().IntVar(&matchWorkers, "workers", 0, "Worker pool size (GOMAXPROCS if 0)")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg := config.Config{
		ProjectsPath:   matchProjects,
		CandidatesPath: matchCandidates,
		WeightsPath:    matchWeights,
		RetrieverURL:   matchRetriever,
		TopN:           matchTopN,
		Concurrency:    matchWorkers,
	}
	if matchConfig != "" {
		fileCfg, err := config.LoadConfig(matchConfig)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	project, candidates, lookup, err := loadRecords(cmd, log, cfg)
	if err != nil {
		return err
	}

	weights, err := config.LoadWeights(cfg.WeightsPath)
	if err != nil {
		return fmt.Errorf("failed to load weights: %w", err)
	}

	if cfg.RetrieverURL != "" {
		candidates, err = shortlist(cmd, log, cfg, project, lookup)
		if err != nil {
			return err
		}
	}
	if len(candidates) == 0 {
		return fmt.Errorf("no candidates to score for project %s", project.ID)
	}

	runner := batch.NewRunner(log, cfg.Concurrency)
	reports, err := runner.Run(cmd.Context(), project, candidates, weights)
	if err != nil {
		return err
	}

	if err := batch.WriteReports(matchOutput, project.ID, reports); err != nil {
		return err
	}
	fmt.Printf("Scored %d candidates against project %s; top score %.4f (reports: %s)\n",
		len(reports), project.ID, reports[0].OverallWeightedScore, matchOutput)
	return nil
}

// loadRecords resolves the project, the candidate pool, and a by-id candidate
// lookup from the configured record source: PostgreSQL when database_url is
// set, JSON files otherwise.
func loadRecords(cmd *cobra.Command, log *zap.Logger, cfg config.Config) (*types.ProjectRequirement, []types.CandidateProfile, func(string) (*types.CandidateProfile, error), error) {
	if cfg.DatabaseURL != "" {
		if matchProjectID == "" {
			return nil, nil, nil, fmt.Errorf("--project-id is required with a database record source")
		}
		ps, err := store.ConnectPostgres(cmd.Context(), cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		cobra.OnFinalize(ps.Close)

		project, err := ps.ProjectByID(cmd.Context(), matchProjectID)
		if err != nil {
			return nil, nil, nil, err
		}
		candidates, err := ps.Candidates(cmd.Context())
		if err != nil {
			return nil, nil, nil, err
		}
		log.Info("loaded records from database",
			zap.String("project_id", project.ID),
			zap.Int("candidates", len(candidates)),
		)
		lookup := func(id string) (*types.CandidateProfile, error) {
			return ps.CandidateByID(cmd.Context(), id)
		}
		return project, candidates, lookup, nil
	}

	if cfg.ProjectsPath == "" || cfg.CandidatesPath == "" {
		return nil, nil, nil, fmt.Errorf("projects and candidates paths are required (flags or config)")
	}
	fs, err := store.OpenFileStore(cfg.CandidatesPath, cfg.ProjectsPath)
	if err != nil {
		return nil, nil, nil, err
	}
	projects, err := store.LoadProjects(cfg.ProjectsPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(projects) == 0 {
		return nil, nil, nil, fmt.Errorf("no projects found in %s", cfg.ProjectsPath)
	}

	project := &projects[0]
	if matchProjectID != "" {
		project, err = fs.ProjectByID(matchProjectID)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	return project, fs.Candidates(), fs.CandidateByID, nil
}

// shortlist narrows the candidate pool to the retrieval service's ranked
// hits, attaching the relevance value each hit carries. Hits without a full
// profile in the record source are skipped with a warning.
func shortlist(cmd *cobra.Command, log *zap.Logger, cfg config.Config, project *types.ProjectRequirement, lookup func(string) (*types.CandidateProfile, error)) ([]types.CandidateProfile, error) {
	client := retrieval.NewClient(cfg.RetrieverURL)
	hits, err := client.Shortlist(cmd.Context(), project.Query(), cfg.TopN)
	if err != nil {
		return nil, fmt.Errorf("retrieval failed: %w", err)
	}
	log.Info("retrieved shortlist", zap.String("project_id", project.ID), zap.Int("hits", len(hits)))

	candidates := make([]types.CandidateProfile, 0, len(hits))
	for _, hit := range hits {
		profile, err := lookup(hit.CandidateID)
		if err != nil {
			log.Warn("shortlisted candidate missing from store", zap.String("candidate_id", hit.CandidateID))
			continue
		}
		withRelevance := *profile
		withRelevance.Relevance = hit.Relevance
		candidates = append(candidates, withRelevance)
	}
	return candidates, nil
}
