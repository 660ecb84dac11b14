package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tweetlex/tweetlex/internal/analysis"
	"github.com/tweetlex/tweetlex/internal/cli"
)

func newAnalyzeCommand() *cobra.Command {
	var (
		userID   string
		url      string
		text     string
		autoSave bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a tweet or raw text and extract vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == "" {
				return fmt.Errorf("--user is required")
			}
			if (url == "") == (text == "") {
				return fmt.Errorf("exactly one of --url and --text is required")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			service, geminiClient, err := newAnalysisService(cfg, db)
			if err != nil {
				return err
			}
			defer func() {
				_ = geminiClient.Close()
			}()
			return cli.RunAnalyze(cmd.Context(), service, userID, analysis.AnalyzeRequest{
				URL:      url,
				Text:     text,
				AutoSave: autoSave,
			})
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Owner user id")
	cmd.Flags().StringVar(&url, "url", "", "Tweet URL to analyze")
	cmd.Flags().StringVar(&text, "text", "", "Raw text to analyze")
	cmd.Flags().BoolVar(&autoSave, "auto-save", false, "Apply the auto-save policy")

	return cmd
}
