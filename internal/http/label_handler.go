package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/label-service/internal/domain/dto"
	"github.com/guttosm/label-service/internal/i18n"
	"github.com/guttosm/label-service/internal/metrics"
	"github.com/guttosm/label-service/internal/middleware"
	"github.com/guttosm/label-service/internal/service"
)

// LabelHandler provides the HTTP handler for label purchases.
type LabelHandler struct {
	labels         service.LabelService
	loggingService service.LoggingService
}

// NewLabelHandler creates a new LabelHandler. loggingService may be nil.
func NewLabelHandler(labels service.LabelService, loggingService service.LoggingService) *LabelHandler {
	return &LabelHandler{
		labels:         labels,
		loggingService: loggingService,
	}
}

// CreateLabel handles POST /api/label requests.
//
// @Summary      Purchase a USPS label
// @Description  Validates the addresses and parcel, quotes the shipment with EasyPost, buys the cheapest USPS rate and returns the tracking code and label. Every successful call buys a new label; there is no deduplication.
// @Tags         Labels
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateLabelRequest true "Addresses and parcel"
// @Param        X-API-Key header string false "API key (required if auth enabled)"
// @Param        Authorization header string false "Bearer token (alternative to API key)"
// @Success      200 {object} model.LabelResult "Label purchased"
// @Failure      400 {object} dto.ErrorResponse "Invalid JSON, incomplete address or incomplete parcel"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Missing EasyPost credential or EasyPost failure"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/label [post]
func (h *LabelHandler) CreateLabel(c *gin.Context) {
	builder := NewResponseBuilder(c)

	// The credential is checked before the body is read.
	if err := h.labels.CheckCredential(); err != nil {
		metrics.RecordLabelPurchase(0, metrics.OutcomeConfigError)
		builder.ErrorWithMessage(http.StatusInternalServerError, dto.ErrCodeConfiguration, err.Error(), err)
		return
	}

	var req dto.CreateLabelRequest
	if err := NewRequestBuilder(c).Bind(&req); err != nil {
		metrics.RecordLabelPurchase(0, metrics.OutcomeValidationError)
		builder.Error(http.StatusBadRequest, dto.ErrCodeMalformedRequest, i18n.ErrKeyMalformedRequest, err)
		return
	}

	if err := req.Validate(); err != nil {
		metrics.RecordLabelPurchase(0, metrics.OutcomeValidationError)
		switch {
		case errors.Is(err, dto.ErrIncompleteAddress):
			builder.Error(http.StatusBadRequest, dto.ErrCodeIncompleteAddress, i18n.ErrKeyIncompleteAddress, nil)
		case errors.Is(err, dto.ErrIncompleteParcel):
			builder.Error(http.StatusBadRequest, dto.ErrCodeIncompleteParcel, i18n.ErrKeyIncompleteParcel, nil)
		default:
			builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyMalformedRequest, err)
		}
		return
	}

	result, err := h.labels.PurchaseLabel(c.Request.Context(), req.Shipment())
	if err != nil {
		h.handlePurchaseError(c, builder, err)
		return
	}

	middleware.AuditLog(h.loggingService, c, middleware.ActionLabelPurchase, "Label purchased", map[string]interface{}{
		"outcome":       metrics.OutcomeSuccess,
		"has_label_url": result.LabelURL != "",
	})
	builder.JSON(http.StatusOK, result)
}

func (h *LabelHandler) handlePurchaseError(c *gin.Context, builder *ResponseBuilder, err error) {
	if errors.Is(err, service.ErrMissingCredential) {
		builder.ErrorWithMessage(http.StatusInternalServerError, dto.ErrCodeConfiguration, err.Error(), err)
		return
	}

	middleware.AuditLogError(h.loggingService, c, middleware.ActionLabelPurchase, "Label purchase failed", err, map[string]interface{}{
		"outcome": metrics.OutcomeUpstreamError,
	})

	// Upstream messages are passed through untranslated.
	message := service.FallbackErrorMessage
	var upstream *service.UpstreamError
	if errors.As(err, &upstream) {
		message = upstream.Error()
	}
	builder.ErrorWithMessage(http.StatusInternalServerError, dto.ErrCodeExternalAPI, message, err)
}
