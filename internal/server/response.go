package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tweetlex/tweetlex/internal/apperror"
	"github.com/tweetlex/tweetlex/internal/vocabulary"
)

type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    apperror.Code `json:"code"`
	Message string        `json:"message"`
}

func errorBody(code apperror.Code, message string) errorResponse {
	return errorResponse{Error: errorDetail{Code: code, Message: message}}
}

// writeError renders any pipeline error as its taxonomy envelope. Internals
// never leak into the response body; they go to the log instead.
func writeError(c *gin.Context, err error) {
	code := apperror.CodeOf(err)
	status := apperror.HTTPStatus(code)
	if status >= 500 {
		slog.Default().Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err)
	}
	c.JSON(status, errorBody(code, apperror.MessageOf(err)))
}

type pronunciationView struct {
	IPA    *string `json:"ipa"`
	Hangul *string `json:"hangul"`
}

type wordView struct {
	ID            string            `json:"id"`
	AnalysisID    *string           `json:"analysisId,omitempty"`
	Original      string            `json:"original"`
	Lemma         string            `json:"lemma"`
	Language      string            `json:"language"`
	PartOfSpeech  string            `json:"partOfSpeech"`
	Translation   string            `json:"translation"`
	Definition    *string           `json:"definition"`
	Pronunciation pronunciationView `json:"pronunciation"`
	Example       string            `json:"example"`
	Status        string            `json:"status"`
	SavedAt       time.Time         `json:"savedAt"`
	ReviewDate    *time.Time        `json:"reviewDate"`
}

func toWordView(word vocabulary.SavedWord) wordView {
	return wordView{
		ID:           word.ID,
		AnalysisID:   word.AnalysisID,
		Original:     word.Original,
		Lemma:        word.Lemma,
		Language:     string(word.Language),
		PartOfSpeech: string(word.PartOfSpeech),
		Translation:  word.Translation,
		Definition:   word.Definition,
		Pronunciation: pronunciationView{
			IPA:    word.IPANotation,
			Hangul: word.HangulNotation,
		},
		Example:    word.Example,
		Status:     string(word.Status),
		SavedAt:    word.SavedAt,
		ReviewDate: word.ReviewDate,
	}
}
