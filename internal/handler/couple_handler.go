package handler

import (
	"net/http"

	"loveacts-service/internal/domain/service"
	"loveacts-service/internal/middleware"

	"github.com/sirupsen/logrus"
)

// CoupleHandler handles partner linking
type CoupleHandler struct {
	coupleService service.CoupleService
	log           logrus.FieldLogger
}

// NewCoupleHandler creates a new couple handler
func NewCoupleHandler(coupleService service.CoupleService, log logrus.FieldLogger) *CoupleHandler {
	return &CoupleHandler{
		coupleService: coupleService,
		log:           log,
	}
}

// LinkPartner links the caller with the owner of a partner code
// @Summary Link partner
// @Tags couples
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{code=string} true "Partner code"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string,detail=string}
// @Failure 404 {object} object{error=string,detail=string}
// @Router /api/couples/link-partner [post]
func (h *CoupleHandler) LinkPartner(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.coupleService.LinkPartner(r.Context(), middleware.GetUserID(r), req.Code); err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Partner linked successfully"})
}

// MyPartner returns the partner's name and latest mood
// @Summary Get partner
// @Tags couples
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.PartnerInfo
// @Failure 404 {object} object{error=string,detail=string}
// @Router /api/couples/my-partner [get]
func (h *CoupleHandler) MyPartner(w http.ResponseWriter, r *http.Request) {
	partner, err := h.coupleService.GetPartner(r.Context(), middleware.GetUserID(r))
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, partner)
}
