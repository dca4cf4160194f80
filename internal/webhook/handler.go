package webhook

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgLog "github-workflow-automation/pkg/log"
	pkgResponse "github-workflow-automation/pkg/response"
)

// HandleGitHubWebhook authenticates, classifies and dispatches one delivery.
// @Summary GitHub webhook
// @Description Receives issues, pull_request and issue_comment deliveries signed with HMAC-SHA256
// @Tags Webhook
// @Accept json
// @Produce json
// @Param X-GitHub-Event header string true "Event type"
// @Param X-Hub-Signature-256 header string true "sha256=<hex digest of the raw body>"
// @Param X-GitHub-Delivery header string false "Delivery id"
// @Success 200 {object} response.Resp "Webhook processed successfully"
// @Failure 400 {object} response.Resp "Invalid payload"
// @Failure 401 {object} response.Resp "Missing or invalid signature"
// @Failure 403 {object} response.Resp "Source not allowed"
// @Failure 429 {object} response.Resp "Rate limit exceeded"
// @Failure 500 {object} response.Resp "Internal server error"
// @Router /webhook [post]
func (h *Handler) HandleGitHubWebhook(c *gin.Context) {
	deliveryID := c.GetHeader(HeaderDelivery)
	if deliveryID == "" {
		deliveryID = uuid.NewString()
	}
	ctx := pkgLog.WithDeliveryID(c.Request.Context(), deliveryID)

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "webhook.HandleGitHubWebhook.ValidateIPAddress: %v", err)
		pkgResponse.Forbidden(c)
		return
	}

	// Raw bytes are kept for the signature check before any JSON parsing.
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "webhook.HandleGitHubWebhook.ReadAll: %v", err)
		pkgResponse.BadRequest(c, MessageInvalidPayload)
		return
	}

	if err := h.security.ValidateSignature(body, SignatureHeader(c.Request.Header)); err != nil {
		h.l.Warnf(ctx, "webhook.HandleGitHubWebhook.ValidateSignature: %v", err)
		switch {
		case errors.Is(err, ErrMissingSignature):
			pkgResponse.Unauthorized(c, MessageNoSignature)
		case errors.Is(err, ErrSecretNotSet):
			pkgResponse.InternalError(c, err)
		default:
			pkgResponse.Unauthorized(c, MessageInvalidSignature)
		}
		return
	}

	if err := h.security.CheckRateLimit(extractIP(c.Request)); err != nil {
		h.l.Warnf(ctx, "webhook.HandleGitHubWebhook.CheckRateLimit: %v", err)
		pkgResponse.TooMany(c)
		return
	}

	env, err := decodeEnvelope(c.GetHeader(HeaderEvent), deliveryID, body, h.now())
	if err != nil {
		h.l.Warnf(ctx, "webhook.HandleGitHubWebhook.decodeEnvelope: %v", err)
		pkgResponse.BadRequest(c, MessageInvalidPayload)
		return
	}

	h.l.Infof(ctx, "Received %s delivery, action=%q", env.RawType, env.Action)

	out, err := h.automationUC.Dispatch(ctx, env)
	if err != nil {
		h.l.Errorf(ctx, "webhook.HandleGitHubWebhook.Dispatch: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	if out.Handled {
		h.l.Infof(ctx, "Delivery handled by %s: %s", out.Route, out.Message)
	}
	pkgResponse.Message(c, MessageProcessed)
}
