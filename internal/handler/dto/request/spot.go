package request

type CreateSpotRequest struct {
	ID string `json:"id" binding:"required"`
}

type UpdateSpotRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// Rates is kept untyped so the engine can name the offending tier or rate.
type SetRatesRequest struct {
	Rates map[string]any `json:"rates" binding:"required"`
}
