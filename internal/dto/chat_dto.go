package dto

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

type ChatResponse struct {
	Success bool   `json:"success"`
	Reply   string `json:"reply"`
}
