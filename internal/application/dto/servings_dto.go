package dto

// ServingsRequest body para PUT /api/servings.
type ServingsRequest struct {
	Servings int `json:"servings" validate:"required,gt=0"`
}
