package handler

import (
	"net/http"

	"loveacts-service/internal/domain/apperr"
	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/service"
	"loveacts-service/internal/middleware"

	"github.com/sirupsen/logrus"
)

// MoodHandler handles daily moods
type MoodHandler struct {
	moodService service.MoodService
	log         logrus.FieldLogger
}

// NewMoodHandler creates a new mood handler
func NewMoodHandler(moodService service.MoodService, log logrus.FieldLogger) *MoodHandler {
	return &MoodHandler{
		moodService: moodService,
		log:         log,
	}
}

// Create logs or overwrites today's mood
// @Summary Log mood
// @Description Creates today's mood entry or overwrites it if one exists
// @Tags moods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{mood_emoji=string,note=string} true "Mood"
// @Success 200 {object} object{message=string,created=bool}
// @Failure 400 {object} object{error=string,detail=string}
// @Router /api/moods/create [post]
func (h *MoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MoodEmoji string  `json:"mood_emoji"`
		Note      *string `json:"note"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	emoji, err := entity.ParseMoodEmoji(req.MoodEmoji)
	if err != nil {
		handleServiceError(w, h.log, apperr.Validation(apperr.CodeInvalidInput, err.Error()))
		return
	}

	_, created, err := h.moodService.LogMood(r.Context(), middleware.GetUserID(r), emoji, req.Note)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	message := "Mood updated successfully"
	if created {
		message = "Mood created successfully"
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": message,
		"created": created,
	})
}

// MyMoods returns the caller's 30 most recent moods
// @Summary My moods
// @Tags moods
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.Mood
// @Router /api/moods/my-moods [get]
func (h *MoodHandler) MyMoods(w http.ResponseWriter, r *http.Request) {
	moods, err := h.moodService.MyMoods(r.Context(), middleware.GetUserID(r))
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(moods))
}

// PartnerMood returns the partner's mood for today, null if none
// @Summary Partner mood today
// @Tags moods
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.Mood
// @Failure 404 {object} object{error=string,detail=string}
// @Router /api/moods/partner-mood [get]
func (h *MoodHandler) PartnerMood(w http.ResponseWriter, r *http.Request) {
	mood, err := h.moodService.PartnerMoodToday(r.Context(), middleware.GetUserID(r))
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mood)
}
