package request

import (
	"gpark/internal/domain/auth"
)

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Password)
}
