package api

import (
	"errors"
	"net/http"

	reqdto "rentmarket/internal/handler/dto/request"
	resdto "rentmarket/internal/handler/dto/response"
	"rentmarket/internal/handler/httperr"
	"rentmarket/internal/handler/middleware"
	"rentmarket/internal/usecase/commands"
	"rentmarket/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ConditionCheckHandler struct {
	cmds commands.ConditionCheckCommands
	q    queries.ConditionCheckQueries
}

func NewConditionCheckHandler(cmds commands.ConditionCheckCommands, q queries.ConditionCheckQueries) *ConditionCheckHandler {
	return &ConditionCheckHandler{cmds: cmds, q: q}
}

// @Summary Upload condition check
// @Description Upload photo evidence of an item's condition before or after a rental
// @Tags condition-checks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UploadConditionCheckRequest true "Condition check upload"
// @Success 201 {object} resdto.ConditionCheckResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /condition-checks [post]
func (h *ConditionCheckHandler) Upload(c *gin.Context) {
	uploaderID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.UploadConditionCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.UploadConditionCheck(c.Request.Context(), req.ToCommand(), uploaderID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, commands.ErrNotRenter):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only the renter may upload condition checks", nil)
		case errors.Is(err, commands.ErrItemMismatch):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Item does not belong to the reservation", nil)
		case errors.Is(err, commands.ErrDuplicateCheck):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "A condition check of this type already exists", nil)
		case errors.Is(err, commands.ErrBeforeCheckNotApproved):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "An approved pre-rental check is required first", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid condition check", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromConditionCheckView(view))
}

// @Summary Get condition check
// @Description Get a condition check by ID
// @Tags condition-checks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Condition check ID"
// @Success 200 {object} resdto.ConditionCheckResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /condition-checks/{id} [get]
func (h *ConditionCheckHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrConditionCheckNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Condition check not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConditionCheckView(view))
}

// @Summary List reservation condition checks
// @Description List the condition checks attached to a reservation
// @Tags condition-checks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ConditionCheckListResponse
// @Failure 400 {object} map[string]string
// @Router /reservations/{id}/condition-checks [get]
func (h *ConditionCheckHandler) ListByReservation(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}
	views, err := h.q.ListByReservation(c.Request.Context(), reservationID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConditionCheckList(views))
}

// @Summary Approve condition check
// @Description Approve a condition check; item owner only. Approval unlocks the next rental phase
// @Tags condition-checks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Condition check ID"
// @Success 200 {object} resdto.ConditionCheckApprovalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /condition-checks/{id}/approve [post]
func (h *ConditionCheckHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	approverID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	view, err := h.cmds.ApproveConditionCheck(c.Request.Context(), id, approverID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCheckNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Condition check not found", nil)
		case errors.Is(err, commands.ErrNotItemOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only the item owner may approve", nil)
		case errors.Is(err, commands.ErrCheckAlreadyApproved):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Condition check is already approved", nil)
		case errors.Is(err, commands.ErrReservationResolved):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Reservation has already been resolved", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.ConditionCheckApprovalResponse{
		ConditionCheck: resdto.FromConditionCheckView(view),
		Message:        "Condition check approved",
	})
}

// @Summary Update condition check
// @Description Update notes and analysis metadata on an own condition check
// @Tags condition-checks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Condition check ID"
// @Param request body reqdto.UpdateConditionCheckRequest true "Fields to update"
// @Success 200 {object} resdto.ConditionCheckResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /condition-checks/{id} [patch]
func (h *ConditionCheckHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateConditionCheckRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	view, err := h.cmds.UpdateConditionCheck(c.Request.Context(), id, actorID, req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCheckNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Condition check not found", nil)
		case errors.Is(err, commands.ErrCheckAccessDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		case errors.Is(err, commands.ErrCheckAlreadyApproved):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Approved condition checks cannot be modified", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromConditionCheckView(view))
}

// @Summary Delete condition check
// @Description Delete an own, unapproved condition check
// @Tags condition-checks
// @Security BearerAuth
// @Param id path string true "Condition check ID"
// @Success 200 {object} resdto.ConditionCheckDeleteResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /condition-checks/{id} [delete]
func (h *ConditionCheckHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	if err := h.cmds.DeleteConditionCheck(c.Request.Context(), id, actorID); err != nil {
		switch {
		case errors.Is(err, commands.ErrCheckNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Condition check not found", nil)
		case errors.Is(err, commands.ErrCheckAccessDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only the uploader may delete", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Approved condition checks cannot be deleted", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.ConditionCheckDeleteResponse{Success: true})
}

// @Summary Analyze condition check
// @Description Run AI damage analysis over the uploaded photos
// @Tags condition-checks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Condition check ID"
// @Success 200 {object} resdto.ConditionCheckResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /condition-checks/{id}/analyze [post]
func (h *ConditionCheckHandler) Analyze(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	view, err := h.cmds.AnalyzeConditionCheck(c.Request.Context(), id, actorID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCheckNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Condition check not found", nil)
		case errors.Is(err, commands.ErrCheckAccessDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		case errors.Is(err, commands.ErrAnalysisUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Condition analysis is not configured", nil)
		case errors.Is(err, commands.ErrAnalysisFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Condition analysis failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromConditionCheckView(view))
}
