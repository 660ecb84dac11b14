package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tweetlex/tweetlex/internal/cli"
	"github.com/tweetlex/tweetlex/internal/vocabulary"
)

func newWordsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Manage saved vocabulary words",
	}
	cmd.AddCommand(newWordsListCommand())
	return cmd
}

func newWordsListCommand() *cobra.Command {
	var (
		userID   string
		language string
		status   string
		sortBy   string
		order    string
		page     int
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved words with filters and pagination",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == "" {
				return fmt.Errorf("--user is required")
			}

			filter := vocabulary.ListFilter{
				SortBy: sortBy,
				Order:  order,
				Page:   page,
				Limit:  limit,
			}
			if language != "" {
				parsed, err := vocabulary.ParseLanguage(language)
				if err != nil {
					return err
				}
				filter.Language = parsed
			}
			if status != "" {
				parsed, err := vocabulary.ParseStatus(status)
				if err != nil {
					return err
				}
				filter.Status = parsed
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

			return cli.RunListWords(cmd.Context(), vocabulary.NewDBRepository(db), userID, filter)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Owner user id")
	cmd.Flags().StringVar(&language, "language", "", "Filter by language (EN, JA, ZH)")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (LEARNING, REVIEW, MASTERED)")
	cmd.Flags().StringVar(&sortBy, "sort-by", "savedAt", "Sort column (savedAt, lemma, status, reviewDate)")
	cmd.Flags().StringVar(&order, "order", "desc", "Sort order (asc, desc)")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 20, "Page size")

	return cmd
}
