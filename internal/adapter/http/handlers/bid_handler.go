package handlers

import (
	"errors"
	"net/http"

	request "azhub/internal/adapter/http/dto/request"
	response "azhub/internal/adapter/http/dto/response"
	"azhub/internal/usecase"
	"azhub/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBidPayload = pkg.NewDomainErrorSimple("INVALID_BID_INPUT", "Invalid bid payload", http.StatusBadRequest)
)

// BidHandler handles HTTP requests for the bid lifecycle on a property.

type BidHandler struct {
	usecase  usecase.IBidUseCase
	property usecase.IPropertyUseCase
}

func NewBidHandler(uc usecase.IBidUseCase, property usecase.IPropertyUseCase) *BidHandler {
	return &BidHandler{usecase: uc, property: property}
}

func (h *BidHandler) SubmitBid(c *gin.Context) {
	var payload request.SubmitBidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.Submit(c.Request.Context(), c.Param("id"), payload.Amount, payload.UserRole)
	if err != nil {
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProperty(p, h.property.DaysOnMarket(p)))
}

func (h *BidHandler) ApproveBid(c *gin.Context) {
	h.resolveBid(c, usecase.BidDecisionApprove)
}

func (h *BidHandler) RejectBid(c *gin.Context) {
	h.resolveBid(c, usecase.BidDecisionReject)
}

func (h *BidHandler) resolveBid(c *gin.Context, decision usecase.BidDecision) {
	p, err := h.usecase.Resolve(c.Request.Context(), c.Param("id"), c.Param("bid_id"), decision)
	if err != nil {
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProperty(p, h.property.DaysOnMarket(p)))
}

func mapBidError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPropertyID), errors.Is(err, usecase.ErrInvalidBidID),
		errors.Is(err, usecase.ErrInvalidBidDecision), errors.Is(err, usecase.ErrInvalidBidAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPropertyNotFound):
		return pkg.NewDomainErrorSimple("PROPERTY_NOT_FOUND", "Property not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBidNotFound):
		return pkg.NewDomainErrorSimple("BID_NOT_FOUND", "Bid not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBidAlreadyResolved):
		return pkg.NewDomainErrorSimple("BID_ALREADY_RESOLVED", "Bid already approved or rejected", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
