package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

type ProfileResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
