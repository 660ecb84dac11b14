package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tweetlex/tweetlex/internal/analysis"
	"github.com/tweetlex/tweetlex/internal/apperror"
	"github.com/tweetlex/tweetlex/internal/vocabulary"
)

type analyzeHandler struct {
	service *analysis.Service
}

func newAnalyzeHandler(service *analysis.Service) *analyzeHandler {
	return &analyzeHandler{service: service}
}

type analyzeRequest struct {
	URL      string `json:"url"`
	Text     string `json:"text"`
	AutoSave bool   `json:"autoSave"`
}

type analyzeResponse struct {
	ID             string                    `json:"id"`
	ContentKey     string                    `json:"contentKey"`
	SourceURL      *string                   `json:"sourceUrl"`
	RawText        string                    `json:"rawText"`
	Language       string                    `json:"language"`
	AnalyzedAt     time.Time                 `json:"analyzedAt"`
	Words          []vocabulary.EnrichedWord `json:"words"`
	Cached         bool                      `json:"cached"`
	Degraded       bool                      `json:"degraded"`
	AutoSavedCount int                       `json:"autoSavedCount"`
}

// Analyze handles POST /api/tweets/analyze.
func (h *analyzeHandler) Analyze(c *gin.Context) {
	var request analyzeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		writeError(c, apperror.Wrap(apperror.CodeInvalidRequest, "invalid request body", err))
		return
	}

	result, err := h.service.Analyze(c.Request.Context(), c.GetString(ownerIDKey), analysis.AnalyzeRequest{
		Text:     request.Text,
		URL:      request.URL,
		AutoSave: request.AutoSave,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	record := result.Analysis
	c.JSON(http.StatusOK, analyzeResponse{
		ID:             record.ID,
		ContentKey:     record.ContentKey,
		SourceURL:      record.SourceURL,
		RawText:        record.RawText,
		Language:       string(record.Language),
		AnalyzedAt:     record.AnalyzedAt,
		Words:          result.Words,
		Cached:         result.Cached,
		Degraded:       result.Degraded,
		AutoSavedCount: result.AutoSavedCount,
	})
}
