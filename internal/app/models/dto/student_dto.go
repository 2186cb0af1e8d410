package dto

// EnrollStudentRequest represents a request to enroll a new student
type EnrollStudentRequest struct {
	Name       string `json:"name" binding:"required" example:"Maaz Ali"`
	FatherName string `json:"fatherName" example:"Ali Khan"`
	ClassName  string `json:"className" binding:"required" example:"BSCS"`
	Section    string `json:"section" example:"A"`
	RollNo     int    `json:"rollNo" binding:"required,min=1" example:"3"`
	Gender     string `json:"gender" binding:"required" example:"Male"`
	Shift      string `json:"shift" example:"Morning"`
	Region     string `json:"region" example:"Punjab"`
}

// UpdateStudentRequest represents a request to overwrite a student's
// editable profile fields
type UpdateStudentRequest struct {
	Name      string `json:"name" binding:"required" example:"Maaz Ali"`
	RollNo    int    `json:"rollNo" binding:"required,min=1" example:"3"`
	ClassName string `json:"className" binding:"required" example:"BSCS"`
	Section   string `json:"section" example:"A"`
	Shift     string `json:"shift" example:"Morning"`
	Region    string `json:"region" example:"Punjab"`
}

// ChangeStatusRequest represents a request to change a student's status
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Graduated"`
}
