package handler

import (
	"context"
	"net/http"

	"loveacts-service/internal/domain/apperr"
	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/service"
	"loveacts-service/internal/middleware"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ActivityHandler handles acts of love and their ratings
type ActivityHandler struct {
	activityService service.ActivityService
	log             logrus.FieldLogger
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService service.ActivityService, log logrus.FieldLogger) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		log:             log,
	}
}

// Create logs an activity for the caller's partner
// @Summary Create activity
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{title=string,description=string,category=string,receiver_id=string} true "Activity"
// @Success 200 {object} object{message=string,activity_id=string}
// @Failure 400 {object} object{error=string,detail=string}
// @Router /api/activities/create [post]
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		ReceiverID  string `json:"receiver_id"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	category, err := entity.ParseCategory(req.Category)
	if err != nil {
		handleServiceError(w, h.log, apperr.Validation(apperr.CodeInvalidInput, err.Error()))
		return
	}

	// an unparsable receiver can never be the partner; the service reports it
	receiverID, _ := uuid.Parse(req.ReceiverID)

	activity, err := h.activityService.CreateActivity(r.Context(), middleware.GetUserID(r), &entity.ActivityCreate{
		Title:       req.Title,
		Description: req.Description,
		Category:    category,
		ReceiverID:  receiverID,
	})
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "Activity created successfully",
		"activity_id": activity.ID,
	})
}

// Rate rates a received activity
// @Summary Rate activity
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Activity ID"
// @Param request body object{rating=int,comment=string} true "Rating"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string,detail=string}
// @Failure 403 {object} object{error=string,detail=string}
// @Failure 404 {object} object{error=string,detail=string}
// @Router /api/activities/{id}/rate [post]
func (h *ActivityHandler) Rate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Rating  int     `json:"rating"`
		Comment *string `json:"comment"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	// unknown ids resolve to not found in the service
	activityID, _ := uuid.Parse(r.PathValue("id"))

	if err := h.activityService.RateActivity(r.Context(), activityID, middleware.GetUserID(r), req.Rating, req.Comment); err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Activity rated successfully"})
}

// MyActivities lists activities given by the caller
// @Summary Given activities
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.Activity
// @Router /api/activities/my-activities [get]
func (h *ActivityHandler) MyActivities(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, h.activityService.ListGiven)
}

// PartnerActivities lists activities received by the caller
// @Summary Received activities
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.Activity
// @Router /api/activities/partner-activities [get]
func (h *ActivityHandler) PartnerActivities(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, h.activityService.ListReceived)
}

// PendingRatings lists received activities not rated yet
// @Summary Pending ratings
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.Activity
// @Router /api/activities/pending-ratings [get]
func (h *ActivityHandler) PendingRatings(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, h.activityService.ListPending)
}

// SpecialMemories returns up to 10 random 5 star activities
// @Summary Special memories
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.Activity
// @Router /api/activities/special-memories [get]
func (h *ActivityHandler) SpecialMemories(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, h.activityService.SpecialMemories)
}

type activityLister func(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error)

func (h *ActivityHandler) writeList(w http.ResponseWriter, r *http.Request, list activityLister) {
	activities, err := list(r.Context(), middleware.GetUserID(r))
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, nonNil(activities))
}
