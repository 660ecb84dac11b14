package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/tweetlex/tweetlex/internal/vocabulary"
)

// RunListWords prints one page of the owner's saved words.
func RunListWords(ctx context.Context, repository vocabulary.Repository, ownerID string, filter vocabulary.ListFilter) error {
	words, total, err := repository.List(ctx, ownerID, filter)
	if err != nil {
		return fmt.Errorf("repository.List > %w", err)
	}
	if total == 0 {
		fmt.Println("No saved words.")
		return nil
	}

	bold := color.New(color.Bold)
	fmt.Printf("Saved words (%d total):\n\n", total)
	for _, word := range words {
		if _, err := bold.Printf("%s", word.Lemma); err != nil {
			return fmt.Errorf("bold.Printf > %w", err)
		}
		fmt.Printf("  %s  %s  %s", word.Language, word.PartOfSpeech, word.Translation)
		switch word.Status {
		case vocabulary.StatusMastered:
			color.Green("  [%s]", word.Status)
		case vocabulary.StatusReview:
			if word.ReviewDate != nil {
				color.Yellow("  [%s until %s]", word.Status, word.ReviewDate.Format("2006-01-02"))
			} else {
				color.Yellow("  [%s]", word.Status)
			}
		default:
			fmt.Printf("  [%s]\n", word.Status)
		}
	}
	return nil
}
