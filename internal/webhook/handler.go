package webhook

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"capirelay/internal/constants"
	"capirelay/internal/logger"
	"capirelay/pkg/errors"
	"capirelay/pkg/logging"
)

type Handler struct {
	service *Service
	logger  logger.Logger
}

func NewHandler(service *Service, log logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.POST("/webhooks/shopify", h.ReceiveShopifyWebhook)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/events/manual", h.SendManualEvent)
	}
}

// ReceiveShopifyWebhook godoc
// @Summary      Receive a Shopify webhook
// @Description  Verifies the HMAC signature over the raw body, maps the topic and forwards a conversion event
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-Shopify-Hmac-Sha256  header  string  true  "Base64 HMAC-SHA256 of the raw body"
// @Param        X-Shopify-Topic        header  string  true  "Shopify webhook topic"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /webhooks/shopify [post]
func (h *Handler) ReceiveShopifyWebhook(c *gin.Context) {
	// The body is verified before any parsing, so it has to be captured
	// raw here rather than bound to a struct.
	body, err := c.GetRawData()
	if err != nil {
		h.handleError(c, errors.Wrap(err, errors.ErrValidation))
		return
	}

	in := Inbound{
		Body:      body,
		Signature: c.GetHeader(constants.HeaderShopifyHmac),
		Topic:     c.GetHeader(constants.HeaderShopifyTopic),
		SourceIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	ctx := logging.WithTopic(c.Request.Context(), in.Topic)

	result, err := h.service.Process(ctx, in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if result.Ignored {
		c.JSON(http.StatusOK, gin.H{"status": "ignored", "topic": in.Topic})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "forwarded",
		"event_name": result.EventName,
		"event_id":   result.EventID,
	})
}

// SendManualEvent godoc
// @Summary      Send a manual conversion event
// @Description  Builds a Purchase event from an explicit request, bypassing signature verification and topic mapping
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        event  body  ManualEventRequest  true  "Manual event data"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/v1/events/manual [post]
func (h *Handler) SendManualEvent(c *gin.Context) {
	var req ManualEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errors.ToErrorResponse(errors.Wrap(err, errors.ErrValidation)))
		return
	}

	result, err := h.service.ProcessManual(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "forwarded",
		"event_name": result.EventName,
		"event_id":   result.EventID,
	})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	h.logger.ErrorwCtx(c.Request.Context(), "Webhook request failed",
		"error", err,
		"path", c.Request.URL.Path,
	)

	c.JSON(errors.ToHTTPStatus(err), errors.ToErrorResponse(err))
}
