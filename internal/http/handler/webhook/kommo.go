package webhook

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"masteria.app/panel/common/logger"
	"masteria.app/panel/internal/mapper"
	"masteria.app/panel/internal/service"
)

const (
	HeaderWebhookSecret = "X-Webhook-Secret"
	maxBodyBytes        = 1 << 20
)

type KommoWebhookHandler struct {
	kommoService service.KommoService
}

func NewKommoWebhookHandler(kommoService service.KommoService) *KommoWebhookHandler {
	return &KommoWebhookHandler{kommoService: kommoService}
}

func (h *KommoWebhookHandler) HandleEvent(c *gin.Context) {
	companyID, err := strconv.ParseInt(c.Param("company_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company id"})
		return
	}

	ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
		CompanyID: &companyID,
		Component: "masteria.webhook.kommo",
	})

	secret := c.GetHeader(HeaderWebhookSecret)
	if secret == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing webhook secret"})
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	result, err := h.kommoService.Ingest(ctx, service.KommoWebhook{
		CompanyID:   companyID,
		Secret:      secret,
		ContentType: c.ContentType(),
		Body:        body,
		Headers: map[string]string{
			mapper.HeaderKommoEvent: c.GetHeader(mapper.HeaderKommoEvent),
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWebhookUnauthorized):
			slog.WarnContext(ctx, "kommo webhook rejected")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid webhook secret"})
		case errors.Is(err, service.ErrInvalidInput):
			// Kommo retries anything that is not 2xx; a body we cannot read
			// will never become readable.
			slog.WarnContext(ctx, "ignoring unreadable kommo webhook", "error", err)
			c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "event type not supported"})
		default:
			slog.ErrorContext(ctx, "failed to ingest kommo webhook", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process webhook"})
		}
		return
	}

	slog.InfoContext(ctx, "kommo webhook processed",
		"kommo_event_id", result.Event.ID,
		"event_type", result.Event.EventType,
		"duplicated", result.Duplicated)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
