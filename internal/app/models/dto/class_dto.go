package dto

// CreateClassRequest represents a request to create a new class
type CreateClassRequest struct {
	Name     string `json:"name" binding:"required" example:"BSCS"`
	Capacity string `json:"capacity" binding:"required" example:"30"` // Declared seats, free text parsed as an integer
	Room     string `json:"room" example:"R-101"`
	Shift    string `json:"shift" example:"Morning"`
}
