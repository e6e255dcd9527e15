package handlers

import (
	"net/http"

	request "azhub/internal/adapter/http/dto/request"
	response "azhub/internal/adapter/http/dto/response"
	"azhub/internal/domain/entities"
	"azhub/internal/usecase"
	"azhub/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidConfirmationPayload = pkg.NewDomainErrorSimple("INVALID_CONFIRMATION_INPUT", "Invalid confirmation payload", http.StatusBadRequest)
)

// ConfirmationHandler exposes the two-step commit gate. Every guarded action
// goes through request -> confirm (or cancel) so nothing destructive happens
// on a single call.

type ConfirmationHandler struct {
	usecase usecase.IConfirmationUseCase
}

func NewConfirmationHandler(uc usecase.IConfirmationUseCase) *ConfirmationHandler {
	return &ConfirmationHandler{usecase: uc}
}

// RequestConfirmation stages a status change or bid decision and returns the
// confirmation prompt. A second request replaces the first.
func (h *ConfirmationHandler) RequestConfirmation(c *gin.Context) {
	var payload request.ConfirmationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfirmationPayload.HTTPStatus, errInvalidConfirmationPayload.ToHTTPError())
		return
	}

	var (
		action usecase.ConfirmationAction
		err    error
	)
	switch usecase.ConfirmationActionType(payload.Type) {
	case usecase.ConfirmationStatusChange:
		action, err = h.usecase.RequestStatusChange(c.Request.Context(), payload.PropertyID, entities.PropertyStatus(payload.NewStatus))
	case usecase.ConfirmationBidAction:
		action, err = h.usecase.RequestBidAction(c.Request.Context(), payload.PropertyID, payload.BidID, usecase.BidDecision(payload.Action))
	default:
		c.JSON(errInvalidConfirmationPayload.HTTPStatus, errInvalidConfirmationPayload.ToHTTPError())
		return
	}
	if err != nil {
		appErr := mapConfirmationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConfirmation(action))
}

// GetPendingConfirmation returns the staged action, or 204 when idle.
func (h *ConfirmationHandler) GetPendingConfirmation(c *gin.Context) {
	action, ok := h.usecase.Pending()
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, response.FromConfirmation(action))
}

func (h *ConfirmationHandler) Confirm(c *gin.Context) {
	applied, err := h.usecase.Confirm(c.Request.Context())
	if err != nil {
		appErr := mapConfirmationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"applied": applied})
}

func (h *ConfirmationHandler) CancelConfirmation(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"canceled": h.usecase.Cancel()})
}

func mapConfirmationError(err error) *pkg.AppError {
	appErr := mapPropertyError(err)
	if appErr.Code != "INTERNAL_ERROR" {
		return appErr
	}
	return mapBidError(err)
}
