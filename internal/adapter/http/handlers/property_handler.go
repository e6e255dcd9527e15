package handlers

import (
	"errors"
	"net/http"

	request "azhub/internal/adapter/http/dto/request"
	response "azhub/internal/adapter/http/dto/response"
	"azhub/internal/domain/entities"
	"azhub/internal/domain/listing"
	"azhub/internal/usecase"
	"azhub/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPropertyPayload = pkg.NewDomainErrorSimple("INVALID_PROPERTY_INPUT", "Invalid property payload", http.StatusBadRequest)
)

// PropertyHandler handles HTTP requests for foreclosure property listings.

type PropertyHandler struct {
	usecase usecase.IPropertyUseCase
}

func NewPropertyHandler(uc usecase.IPropertyUseCase) *PropertyHandler {
	return &PropertyHandler{usecase: uc}
}

// ListProperties returns all properties matching the query filters, sorted by
// auction date descending.
//
// Query params: search, status, date_filter, value1, value2.
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	spec := listing.FilterSpec{
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		DateFilter: listing.DateFilterType(c.DefaultQuery("date_filter", string(listing.DateFilterAll))),
		Value1:     c.Query("value1"),
		Value2:     c.Query("value2"),
	}

	properties, err := h.usecase.List(c.Request.Context(), spec)
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.PropertyResponse, 0, len(properties))
	for _, p := range properties {
		out = append(out, response.FromProperty(p, h.usecase.DaysOnMarket(p)))
	}
	c.JSON(http.StatusOK, out)
}

func (h *PropertyHandler) GetProperty(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProperty(p, h.usecase.DaysOnMarket(p)))
}

func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var payload request.CreatePropertyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPropertyPayload.HTTPStatus, errInvalidPropertyPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProperty(p, h.usecase.DaysOnMarket(p)))
}

func (h *PropertyHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPropertyPayload.HTTPStatus, errInvalidPropertyPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.ChangeStatus(c.Request.Context(), c.Param("id"), entities.PropertyStatus(payload.Status))
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProperty(p, h.usecase.DaysOnMarket(p)))
}

func (h *PropertyHandler) UpdateNote(c *gin.Context) {
	var payload request.UpdateNoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPropertyPayload.HTTPStatus, errInvalidPropertyPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.UpdateNote(c.Request.Context(), c.Param("id"), payload.Note)
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProperty(p, h.usecase.DaysOnMarket(p)))
}

// GetPropertyLogs returns the event log of a single property, newest first.
func (h *PropertyHandler) GetPropertyLogs(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	logs := make([]response.LogEntryResponse, 0, len(p.Log))
	for _, entry := range p.Log {
		logs = append(logs, response.LogEntryResponse{
			ID:        entry.ID,
			Type:      entry.Type,
			Message:   entry.Message,
			Timestamp: entry.Timestamp,
		})
	}
	c.JSON(http.StatusOK, logs)
}

func mapPropertyError(err error) *pkg.AppError {
	var validationErrs usecase.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return pkg.NewValidationError("INVALID_PROPERTY_INPUT", "Invalid property payload", validationErrs, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPropertyID), errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPropertyNotFound):
		return pkg.NewDomainErrorSimple("PROPERTY_NOT_FOUND", "Property not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
