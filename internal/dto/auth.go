package dto

type LoginRequestDTO struct {
	Password string `json:"password" example:"s3cret-passw0rd"`
}

type LoginResponseDTO struct {
	Token     string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt string `json:"expires_at" example:"2024-12-09T16:09:57+03:00"`
}
