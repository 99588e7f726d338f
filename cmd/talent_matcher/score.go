package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-matcher/internal/config"
	"github.com/jonathan/talent-matcher/internal/schemas"
	"github.com/jonathan/talent-matcher/internal/scoring"
	"github.com/jonathan/talent-matcher/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one candidate against one project",
	Long:  "Scores a single candidate profile against a single project requirement and emits a CandidateScoreReport JSON with per-factor scores, traces, and the weighted aggregate.",
	RunE:  runScore,
}

var (
	scoreProject   string
	scoreCandidate string
	scoreWeights   string
	scoreOutput    string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreProject, "project", "p", "", "Path to ProjectRequirement JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreCandidate, "candidate", "c", "", "Path to CandidateProfile JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreWeights, "weights", "w", "", "Path to a weight table JSON file (defaults used if omitted)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output report JSON file (stdout if omitted)")

	if err := scoreCmd.MarkFlagRequired("project"); err != nil {
		panic(fmt.Sprintf("failed to mark project flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	project, err := loadProject(scoreProject)
	if err != nil {
		return err
	}
	candidate, err := loadCandidate(scoreCandidate)
	if err != nil {
		return err
	}
	weights, err := config.LoadWeights(scoreWeights)
	if err != nil {
		return fmt.Errorf("failed to load weights: %w", err)
	}

	report := scoring.ScoreCandidate(project, candidate, weights)

	// Validate output against the report schema (non-fatal).
	if schemaPath := schemas.ResolvePath("schemas/score_report.schema.json"); schemaPath != "" {
		if err := schemas.ValidateDocument(schemaPath, report); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: report failed schema validation: %v\n", err)
		}
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if scoreOutput == "" {
		fmt.Println(string(out))
		return nil
	}
	if dir := filepath.Dir(scoreOutput); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(scoreOutput, out, 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", scoreOutput, err)
	}
	fmt.Printf("Scored candidate %s against project %s: %.4f (report: %s)\n",
		report.CandidateID, report.ProjectID, report.OverallWeightedScore, scoreOutput)
	return nil
}

func loadProject(path string) (*types.ProjectRequirement, error) {
	if schemaPath := schemas.ResolvePath("schemas/project_requirement.schema.json"); schemaPath != "" {
		if err := schemas.ValidateFile(schemaPath, path); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: project failed schema validation: %v\n", err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %s: %w", path, err)
	}
	var project types.ProjectRequirement
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project JSON: %w", err)
	}
	return &project, nil
}

func loadCandidate(path string) (*types.CandidateProfile, error) {
	if schemaPath := schemas.ResolvePath("schemas/candidate_profile.schema.json"); schemaPath != "" {
		if err := schemas.ValidateFile(schemaPath, path); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: candidate failed schema validation: %v\n", err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate file %s: %w", path, err)
	}
	var candidate types.CandidateProfile
	if err := json.Unmarshal(data, &candidate); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate JSON: %w", err)
	}
	return &candidate, nil
}
