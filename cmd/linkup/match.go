package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/1001franck/Linkup-sub000/internal/matching"
	"github.com/1001franck/Linkup-sub000/internal/schemas"
)

var matchCommand = &cobra.Command{
	Use:   "match",
	Short: "Score a candidate against a job posting",
	Long: `Reads a candidate profile and a job posting from JSON files, validates
them against their schemas, and prints the match result as JSON.`,
	RunE: matchCmd,
}

var (
	matchCandidatePath string
	matchJobPath       string
	matchPretty        bool
)

func init() {
	matchCommand.Flags().StringVarP(&matchCandidatePath, "candidate", "c", "", "Path to candidate profile JSON file")
	matchCommand.Flags().StringVarP(&matchJobPath, "job", "j", "", "Path to job posting JSON file")
	matchCommand.Flags().BoolVar(&matchPretty, "pretty", false, "Indent the JSON output")

	_ = matchCommand.MarkFlagRequired("candidate")
	_ = matchCommand.MarkFlagRequired("job")

	rootCmd.AddCommand(matchCommand)
}

func matchCmd(cmd *cobra.Command, _ []string) error {
	result, err := scoreFiles(matchCandidatePath, matchJobPath)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if matchPretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}

// scoreFiles loads, validates and scores a candidate/job pair from disk.
func scoreFiles(candidatePath, jobPath string) (*matching.MatchResult, error) {
	candidateJSON, err := os.ReadFile(candidatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate file: %w", err)
	}
	if err := schemas.ValidateCandidate(candidateJSON); err != nil {
		return nil, fmt.Errorf("invalid candidate profile: %w", err)
	}

	jobJSON, err := os.ReadFile(jobPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	if err := schemas.ValidateJob(jobJSON); err != nil {
		return nil, fmt.Errorf("invalid job posting: %w", err)
	}

	var candidate matching.CandidateProfile
	if err := json.Unmarshal(candidateJSON, &candidate); err != nil {
		return nil, fmt.Errorf("failed to parse candidate JSON: %w", err)
	}

	var job matching.JobPosting
	if err := json.Unmarshal(jobJSON, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job JSON: %w", err)
	}

	engine := matching.NewDefaultEngine()
	result := engine.Match(&candidate, &job)
	return &result, nil
}
