package request

// WebhookRequest is the gateway notification shape. The gateway also
// delivers the same pair as query parameters (id/topic); the handler
// normalizes both into this struct.
type WebhookRequest struct {
	Resource string `json:"resource"`
	Topic    string `json:"topic"`
}
