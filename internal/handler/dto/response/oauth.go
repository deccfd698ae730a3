package response

type AuthorizationRedirectResponse struct {
	AuthorizationURL string `json:"authorizationUrl"`
}

type WebhookResponse struct {
	Outcome       string `json:"outcome"`
	TransactionID string `json:"transactionId,omitempty"`
	PaymentStatus string `json:"paymentStatus,omitempty"`
}
