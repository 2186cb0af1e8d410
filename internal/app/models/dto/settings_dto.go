package dto

// UpdateSettingsRequest represents a request to upsert settings keys
type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required"`
}
