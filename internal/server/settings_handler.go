package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tweetlex/tweetlex/internal/apperror"
	"github.com/tweetlex/tweetlex/internal/settings"
	"github.com/tweetlex/tweetlex/internal/vocabulary"
)

type settingsHandler struct {
	repository settings.Repository
}

func newSettingsHandler(repository settings.Repository) *settingsHandler {
	return &settingsHandler{repository: repository}
}

type settingsView struct {
	AutoSaveEnabled       bool     `json:"autoSaveEnabled"`
	AutoSaveLanguages     []string `json:"autoSaveLanguages"`
	AutoSaveMinWords      int      `json:"autoSaveMinWords"`
	TargetLanguage        string   `json:"targetLanguage"`
	DefaultSourceLanguage string   `json:"defaultSourceLanguage"`
	NotificationsEnabled  bool     `json:"notificationsEnabled"`
	Theme                 string   `json:"theme"`
}

func toSettingsView(s settings.UserSettings) settingsView {
	languages := s.Languages()
	names := make([]string, 0, len(languages))
	for _, language := range languages {
		names = append(names, string(language))
	}
	return settingsView{
		AutoSaveEnabled:       s.AutoSaveEnabled,
		AutoSaveLanguages:     names,
		AutoSaveMinWords:      s.AutoSaveMinWords,
		TargetLanguage:        s.TargetLanguage,
		DefaultSourceLanguage: s.DefaultSourceLanguage,
		NotificationsEnabled:  s.NotificationsEnabled,
		Theme:                 s.Theme,
	}
}

// Get handles GET /api/settings, lazily creating the default row.
func (h *settingsHandler) Get(c *gin.Context) {
	userSettings, err := h.repository.GetOrCreate(c.Request.Context(), c.GetString(ownerIDKey))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSettingsView(*userSettings))
}

type updateSettingsRequest struct {
	AutoSaveEnabled       *bool     `json:"autoSaveEnabled"`
	AutoSaveLanguages     *[]string `json:"autoSaveLanguages"`
	AutoSaveMinWords      *int      `json:"autoSaveMinWords"`
	TargetLanguage        *string   `json:"targetLanguage"`
	DefaultSourceLanguage *string   `json:"defaultSourceLanguage"`
	NotificationsEnabled  *bool     `json:"notificationsEnabled"`
	Theme                 *string   `json:"theme"`
}

// Update handles PATCH /api/settings with partial read-modify-write
// semantics: absent fields keep their stored values.
func (h *settingsHandler) Update(c *gin.Context) {
	var request updateSettingsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		writeError(c, apperror.Wrap(apperror.CodeInvalidRequest, "invalid request body", err))
		return
	}

	userSettings, err := h.repository.GetOrCreate(c.Request.Context(), c.GetString(ownerIDKey))
	if err != nil {
		writeError(c, err)
		return
	}

	if request.AutoSaveEnabled != nil {
		userSettings.AutoSaveEnabled = *request.AutoSaveEnabled
	}
	if request.AutoSaveLanguages != nil {
		languages := make([]vocabulary.Language, 0, len(*request.AutoSaveLanguages))
		for _, name := range *request.AutoSaveLanguages {
			language, err := vocabulary.ParseLanguage(name)
			if err != nil {
				writeError(c, apperror.Wrap(apperror.CodeInvalidRequest, "invalid auto-save language", err))
				return
			}
			languages = append(languages, language)
		}
		userSettings.AutoSaveLanguages = settings.JoinLanguages(languages)
	}
	if request.AutoSaveMinWords != nil {
		minWords := *request.AutoSaveMinWords
		if minWords < settings.MinAutoSaveWordFloor || minWords > settings.MinAutoSaveWordCeil {
			writeError(c, apperror.New(apperror.CodeInvalidRequest,
				fmt.Sprintf("autoSaveMinWords must be between %d and %d",
					settings.MinAutoSaveWordFloor, settings.MinAutoSaveWordCeil)))
			return
		}
		userSettings.AutoSaveMinWords = minWords
	}
	if request.TargetLanguage != nil {
		userSettings.TargetLanguage = *request.TargetLanguage
	}
	if request.DefaultSourceLanguage != nil {
		userSettings.DefaultSourceLanguage = *request.DefaultSourceLanguage
	}
	if request.NotificationsEnabled != nil {
		userSettings.NotificationsEnabled = *request.NotificationsEnabled
	}
	if request.Theme != nil {
		userSettings.Theme = *request.Theme
	}

	if err := h.repository.Save(c.Request.Context(), userSettings); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSettingsView(*userSettings))
}
