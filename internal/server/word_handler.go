package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tweetlex/tweetlex/internal/apperror"
	"github.com/tweetlex/tweetlex/internal/notion"
	"github.com/tweetlex/tweetlex/internal/vocabulary"
)

type wordHandler struct {
	words  vocabulary.Repository
	syncer notion.Syncer

	now   func() time.Time
	newID func() string
}

func newWordHandler(words vocabulary.Repository, syncer notion.Syncer) *wordHandler {
	return &wordHandler{
		words:  words,
		syncer: syncer,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

type listWordsQuery struct {
	Language string `form:"language"`
	Status   string `form:"status"`
	SortBy   string `form:"sortBy"`
	Order    string `form:"order"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

type paginationView struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type listWordsResponse struct {
	Words      []wordView     `json:"words"`
	Pagination paginationView `json:"pagination"`
}

// List handles GET /api/words.
func (h *wordHandler) List(c *gin.Context) {
	var query listWordsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, apperror.Wrap(apperror.CodeInvalidRequest, "invalid query parameters", err))
		return
	}

	filter := vocabulary.ListFilter{
		SortBy: query.SortBy,
		Order:  query.Order,
		Page:   query.Page,
		Limit:  query.Limit,
	}
	if query.Language != "" {
		language, err := vocabulary.ParseLanguage(query.Language)
		if err != nil {
			writeError(c, apperror.Wrap(apperror.CodeInvalidRequest, "invalid language filter", err))
			return
		}
		filter.Language = language
	}
	if query.Status != "" {
		status, err := vocabulary.ParseStatus(query.Status)
		if err != nil {
			writeError(c, apperror.Wrap(apperror.CodeInvalidRequest, "invalid status filter", err))
			return
		}
		filter.Status = status
	}

	ownerID := c.GetString(ownerIDKey)
	words, total, err := h.words.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		writeError(c, err)
		return
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}
	totalPages := (total + limit - 1) / limit

	views := make([]wordView, 0, len(words))
	for _, word := range words {
		views = append(views, toWordView(word))
	}
	c.JSON(http.StatusOK, listWordsResponse{
		Words: views,
		Pagination: paginationView{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	})
}

type saveWordInput struct {
	Original     string  `json:"original" binding:"required"`
	Lemma        string  `json:"lemma" binding:"required"`
	Language     string  `json:"language" binding:"required"`
	PartOfSpeech string  `json:"partOfSpeech" binding:"required"`
	Translation  string  `json:"translation" binding:"required"`
	Definition   *string `json:"definition"`
	IPA          *string `json:"ipa"`
	Hangul       *string `json:"hangul"`
	Example      string  `json:"example"`
	SourceURL    *string `json:"sourceUrl"`
}

type saveWordsRequest struct {
	Words        []saveWordInput `json:"words" binding:"required"`
	SyncToNotion bool            `json:"syncToNotion"`
}

type saveWordsResponse struct {
	Words       []wordView `json:"words"`
	SavedCount  int        `json:"savedCount"`
	SyncedCount int        `json:"syncedCount"`
}

// Save handles POST /api/words/save, the manual save path.
func (h *wordHandler) Save(c *gin.Context) {
	var request saveWordsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		writeError(c, apperror.Wrap(apperror.CodeInvalidRequest, "invalid request body", err))
		return
	}
	if len(request.Words) == 0 {
		writeError(c, apperror.New(apperror.CodeInvalidRequest, "words must not be empty"))
		return
	}

	ownerID := c.GetString(ownerIDKey)
	saved := make([]vocabulary.SavedWord, 0, len(request.Words))
	for _, input := range request.Words {
		language, err := vocabulary.ParseLanguage(input.Language)
		if err != nil {
			writeError(c, apperror.Wrap(apperror.CodeInvalidRequest, "invalid language", err))
			return
		}
		partOfSpeech, err := vocabulary.ParsePartOfSpeech(input.PartOfSpeech)
		if err != nil {
			writeError(c, apperror.Wrap(apperror.CodeInvalidRequest, "invalid part of speech", err))
			return
		}
		saved = append(saved, vocabulary.SavedWord{
			ID:             h.newID(),
			OwnerID:        ownerID,
			Original:       input.Original,
			Lemma:          input.Lemma,
			Language:       language,
			PartOfSpeech:   partOfSpeech,
			Translation:    input.Translation,
			Definition:     input.Definition,
			IPANotation:    input.IPA,
			HangulNotation: input.Hangul,
			Example:        input.Example,
			Status:         vocabulary.StatusLearning,
			SavedAt:        h.now(),
		})
	}

	if err := h.words.CreateBatch(c.Request.Context(), saved); err != nil {
		writeError(c, err)
		return
	}

	syncedCount := 0
	if request.SyncToNotion {
		for i, word := range saved {
			if err := h.syncer.UpsertWordRecord(c.Request.Context(), ownerID, word.Enriched(), request.Words[i].SourceURL); err != nil {
				slog.Default().Error("notion sync failed",
					"owner", ownerID,
					"word", word.Lemma,
					"error", err)
				continue
			}
			syncedCount++
		}
	}

	views := make([]wordView, 0, len(saved))
	for _, word := range saved {
		views = append(views, toWordView(word))
	}
	c.JSON(http.StatusCreated, saveWordsResponse{
		Words:       views,
		SavedCount:  len(saved),
		SyncedCount: syncedCount,
	})
}

// Get handles GET /api/words/:id.
func (h *wordHandler) Get(c *gin.Context) {
	word, err := h.words.FindByID(c.Request.Context(), c.GetString(ownerIDKey), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if word == nil {
		writeError(c, apperror.New(apperror.CodeNotFound, "word not found"))
		return
	}
	c.JSON(http.StatusOK, toWordView(*word))
}

type updateWordRequest struct {
	Status string `json:"status" binding:"required"`
}

// Update handles PATCH /api/words/:id, the status transition.
func (h *wordHandler) Update(c *gin.Context) {
	var request updateWordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		writeError(c, apperror.Wrap(apperror.CodeInvalidRequest, "invalid request body", err))
		return
	}
	status, err := vocabulary.ParseStatus(request.Status)
	if err != nil {
		writeError(c, apperror.Wrap(apperror.CodeInvalidRequest, "invalid status", err))
		return
	}

	ownerID := c.GetString(ownerIDKey)
	id := c.Param("id")
	reviewDate := vocabulary.ReviewDateFor(status, h.now())

	affected, err := h.words.UpdateStatus(c.Request.Context(), ownerID, id, status, reviewDate)
	if err != nil {
		writeError(c, err)
		return
	}
	if affected == 0 {
		writeError(c, apperror.New(apperror.CodeNotFound, "word not found"))
		return
	}

	word, err := h.words.FindByID(c.Request.Context(), ownerID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	if word == nil {
		writeError(c, apperror.New(apperror.CodeNotFound, "word not found"))
		return
	}
	c.JSON(http.StatusOK, toWordView(*word))
}

// Delete handles DELETE /api/words/:id.
func (h *wordHandler) Delete(c *gin.Context) {
	affected, err := h.words.Delete(c.Request.Context(), c.GetString(ownerIDKey), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if affected == 0 {
		writeError(c, apperror.New(apperror.CodeNotFound, "word not found"))
		return
	}
	c.Status(http.StatusNoContent)
}

type deleteBatchRequest struct {
	IDs []string `json:"ids"`
}

type deleteBatchResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// DeleteBatch handles DELETE /api/words/batch. An empty id list is rejected
// before the repository is touched.
func (h *wordHandler) DeleteBatch(c *gin.Context) {
	var request deleteBatchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		writeError(c, apperror.Wrap(apperror.CodeInvalidRequest, "invalid request body", err))
		return
	}
	if len(request.IDs) == 0 {
		writeError(c, apperror.New(apperror.CodeInvalidRequest, "ids must not be empty"))
		return
	}

	deleted, err := h.words.DeleteBatch(c.Request.Context(), c.GetString(ownerIDKey), request.IDs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, deleteBatchResponse{DeletedCount: deleted})
}
