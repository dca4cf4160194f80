package webhook

const (
	HeaderSignature256 = "X-Hub-Signature-256"
	HeaderSignature    = "X-Hub-Signature"
	HeaderEvent        = "X-GitHub-Event"
	HeaderDelivery     = "X-GitHub-Delivery"

	signaturePrefix = "sha256="
)

// Response bodies written by the handler.
const (
	MessageProcessed        = "Webhook processed successfully"
	MessageNoSignature      = "No signature provided"
	MessageInvalidSignature = "Invalid signature"
	MessageInvalidPayload   = "Invalid payload"
)

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string   // Shared secret for signature verification
	AllowedIPs      []string // IP whitelist, empty means no restriction
	RateLimitPerMin int      // Max requests per minute per source, 0 disables
}
