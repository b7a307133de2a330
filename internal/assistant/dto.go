package assistant

type MessageRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type MessageResponse struct {
	Role  Role   `json:"role"`
	Topic Topic  `json:"topic"`
	Reply string `json:"reply"`
}

type WelcomeResponse struct {
	Role    Role   `json:"role"`
	Message string `json:"message"`
}
