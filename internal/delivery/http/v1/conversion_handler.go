package v1

import (
	"encoding/json"
	"net/http"
	"physiowell-web/internal/delivery/http/response"
	"physiowell-web/internal/domain"
	"physiowell-web/pkg/logger"
	"time"

	"github.com/gin-gonic/gin"
)

type ConversionHandler struct {
	conversionUC domain.ConversionUsecase
}

// NewConversionHandler registers the analytics routes (public, no auth required)
func NewConversionHandler(api *gin.RouterGroup, conversionUC domain.ConversionUsecase) {
	handler := &ConversionHandler{
		conversionUC: conversionUC,
	}

	api.POST("/track-conversion", handler.TrackConversion)
}

// StatusResponse is the body of every tracking response
type StatusResponse struct {
	Status string `json:"status" example:"success"`
}

// TrackConversion godoc
// @Summary      Track Conversion
// @Description  Record a client-side conversion event. Any JSON value is accepted and logged as-is.
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        event  body      object  true  "Conversion event"
// @Success      200    {object}  StatusResponse
// @Failure      500    {object}  StatusResponse
// @Router       /api/track-conversion [post]
func (h *ConversionHandler) TrackConversion(c *gin.Context) {
	payload, err := decodePayload(c)
	if err != nil {
		logger.Log.Error("Conversion tracking error", "request_id", response.RequestID(c), "error", err)
		response.Status(c, http.StatusInternalServerError, response.StatusError)
		return
	}

	h.conversionUC.TrackConversion(c.Request.Context(), &domain.ConversionEvent{
		Payload:    payload,
		RequestID:  response.RequestID(c),
		ClientIP:   c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ReceivedAt: time.Now(),
	})

	response.Status(c, http.StatusOK, response.StatusSuccess)
}

// decodePayload accepts exactly one JSON value. Trailing data after it, such
// as a second value or garbage, makes the body invalid.
func decodePayload(c *gin.Context) (any, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}
