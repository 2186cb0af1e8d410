package models

import (
	"strconv"
	"strings"
)

// Class defines the class model based on the 'classes' table
type Class struct {
	Code     string `json:"code" db:"class_code" example:"CLS-9f1c2d3a"` // Externally generated short token
	Name     string `json:"name" db:"class_name" example:"BSCS"`
	Capacity string `json:"capacity" db:"capacity" example:"20"` // Declared seats; free text, interpreted as an integer
	Room     string `json:"room,omitempty" db:"room" example:"R-101"`
	Shift    string `json:"shift,omitempty" db:"shift" example:"Morning"`
}

// DeclaredCapacity parses the free-text capacity field. Legacy rows may
// carry "current/total" strings; only the trailing segment counts.
func (c *Class) DeclaredCapacity() int {
	raw := c.Capacity
	if i := strings.LastIndex(raw, "/"); i >= 0 {
		raw = raw[i+1:]
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ClassOccupancy is a class row joined with its live Active head count.
type ClassOccupancy struct {
	Class
	ActiveStudents int  `json:"activeStudents"`
	NearFull       bool `json:"nearFull"` // Above 90% of declared capacity
}
