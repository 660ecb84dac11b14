// Package cli implements the terminal front end for the analysis pipeline
// and the word collection.
package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/tweetlex/tweetlex/internal/analysis"
)

// RunAnalyze analyzes one tweet or raw text and prints the enriched words.
func RunAnalyze(ctx context.Context, service *analysis.Service, ownerID string, request analysis.AnalyzeRequest) error {
	result, err := service.Analyze(ctx, ownerID, request)
	if err != nil {
		return fmt.Errorf("service.Analyze > %w", err)
	}

	bold := color.New(color.Bold)
	if result.Cached {
		color.Cyan("Served from cache (analyzed at %s)", result.Analysis.AnalyzedAt.Format("2006-01-02 15:04"))
	}
	if result.Degraded {
		color.Yellow("Warning: degraded extraction, translations may be missing")
	}

	fmt.Printf("Language: %s\n", result.Analysis.Language)
	fmt.Printf("Words (%d):\n\n", len(result.Words))
	for i, word := range result.Words {
		if _, err := bold.Printf("%2d. %s", i+1, word.Lemma); err != nil {
			return fmt.Errorf("bold.Printf > %w", err)
		}
		fmt.Printf(" (%s)", word.PartOfSpeech)
		if word.Pronunciation.IPA != nil {
			fmt.Printf(" [%s]", *word.Pronunciation.IPA)
		}
		fmt.Printf("\n    %s\n", word.Translation)
		if word.Definition != nil {
			fmt.Printf("    %s\n", *word.Definition)
		}
	}

	if result.AutoSavedCount > 0 {
		color.Green("Auto-saved %d words", result.AutoSavedCount)
	}
	return nil
}
