package models

// OutboundMessageRequest represents requests to send a message manually via the API.
type OutboundMessageRequest struct {
	To         string `json:"to" binding:"required"`
	Message    string `json:"message" binding:"required"`
	PreviewURL bool   `json:"preview_url"`
}

// SendReportRequest asks for a movement report to be delivered over WhatsApp.
type SendReportRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
	To    string `json:"to"`
}
