package webhook

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"health-tracker/internal/observability"
	pkgLog "health-tracker/pkg/log"
	pkgResponse "health-tracker/pkg/response"
)

// Guard screens inbound message webhooks before they reach a handler.
type Guard struct {
	v *validator
	l pkgLog.Logger
}

// NewGuard fails when an allowed_ips entry is neither an address nor a CIDR.
func NewGuard(cfg SecurityConfig, l pkgLog.Logger) (*Guard, error) {
	v, err := newValidator(cfg)
	if err != nil {
		return nil, err
	}
	return &Guard{v: v, l: l}, nil
}

// Middleware applies the IP allow list, the shared secret and then the
// per-sender rate limit. The client address is resolved by gin, so
// forwarding headers count only from trusted proxies.
func (g *Guard) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ip := c.ClientIP()

		if err := g.v.checkIP(ip); err != nil {
			g.l.Warnf(ctx, "internal.webhook.Guard: %v", err)
			observability.RecordWebhookRejected(reasonIP)
			pkgResponse.Forbidden(c)
			return
		}

		if err := g.v.checkSecret(c.GetHeader(SecretHeader)); err != nil {
			g.l.Warnf(ctx, "internal.webhook.Guard: %v from %s", err, ip)
			observability.RecordWebhookRejected(reasonSecret)
			pkgResponse.Unauthorized(c)
			return
		}

		if err := g.v.checkRate(senderKey(c)); err != nil {
			g.l.Warnf(ctx, "internal.webhook.Guard: %v", err)
			observability.RecordWebhookRejected(reasonRateLimit)
			pkgResponse.TooManyRequests(c)
			return
		}

		c.Next()
	}
}

// senderKey identifies the sender for rate limiting: the Twilio From field
// for form posts, the client address otherwise. JSON bodies are left unread
// so the handler can bind them.
func senderKey(c *gin.Context) string {
	if c.ContentType() == binding.MIMEPOSTForm {
		if from := strings.TrimSpace(c.PostForm("From")); from != "" {
			return from
		}
	}
	return c.ClientIP()
}
