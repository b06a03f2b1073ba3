package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillorbit",
	Short: "SkillOrbit career readiness backend",
	Long:  "SkillOrbit analyzes resumes against future tech roles, runs mock interviews and tracks learning progress.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(rolesCmd)
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
