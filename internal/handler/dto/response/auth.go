package response

type LoginResponse struct {
	Message   string `json:"message"`
	ExpiresIn int64  `json:"expiresIn"` // seconds
}
