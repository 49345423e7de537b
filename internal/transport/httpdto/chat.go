package httpdto

// ChatRequest is used for POST /chat
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the completion text back to the frontend
type ChatResponse struct {
	BotMessage string `json:"botMessage"`
}
