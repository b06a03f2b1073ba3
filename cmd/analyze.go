package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raflytch/skillorbit-server/internal/catalog"
	"github.com/raflytch/skillorbit-server/internal/domain"
	"github.com/raflytch/skillorbit-server/internal/service"
	"github.com/raflytch/skillorbit-server/pkg/document"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE",
	Short: "Analyze a resume file and print the result as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")
		year, _ := cmd.Flags().GetInt("year")
		seed, _ := cmd.Flags().GetUint64("seed")

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		rnd := service.NewRandom(nil)
		if seed != 0 {
			rnd = service.NewSeededRandom(seed)
		}
		analysis := service.NewAnalysisService(catalog.Default(), document.NewReader(), rnd, nil, nil)

		result, err := analysis.AnalyzeDocument(cmd.Context(),
			&domain.AnalyzeRequest{TargetRole: role, TargetYear: year},
			&domain.Document{FileName: filepath.Base(args[0]), Data: data},
		)
		if err != nil {
			if errors.Is(err, service.ErrNoExtractableText) {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	analyzeCmd.Flags().String("role", catalog.DefaultRole, "Target role to compare against")
	analyzeCmd.Flags().Int("year", domain.DefaultTargetYear, "Target year")
	analyzeCmd.Flags().Uint64("seed", 0, "Seed for the radar filler values (0 picks a random seed)")
}
