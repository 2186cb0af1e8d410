package models

import "time"

// ActivityCategory groups feed entries and drives their presentation hints.
type ActivityCategory string

const (
	ActivityStudent ActivityCategory = "Student"
	ActivityFee     ActivityCategory = "Fee"
	ActivityExam    ActivityCategory = "Exam"
	ActivitySystem  ActivityCategory = "System"
)

// Activity is one append-only entry of the dashboard activity feed, based
// on the 'activity_log' table.
type Activity struct {
	ID       int64            `json:"id" db:"id"`
	Category ActivityCategory `json:"category" db:"category" example:"Student"`
	Details  string           `json:"details" db:"details" example:"Maaz Ali enrolled in BSCS"`
	Icon     string           `json:"icon" db:"icon" example:"students.png"`
	Color    string           `json:"color" db:"color" example:"#DCFCE7"`
	LoggedAt time.Time        `json:"loggedAt" db:"logged_at"`
}

// Presentation hints per category, mirrored by the dashboard renderer.
var (
	activityIcons = map[ActivityCategory]string{
		ActivityStudent: "students.png",
		ActivityFee:     "fee_records.png",
		ActivityExam:    "examination.png",
		ActivitySystem:  "dashboard.png",
	}
	activityColors = map[ActivityCategory]string{
		ActivityStudent: "#DCFCE7",
		ActivityFee:     "#F0F9FF",
		ActivityExam:    "#FFFBEB",
		ActivitySystem:  "#F1F5F9",
	}
)

// Hints returns the icon and color for the category, falling back to the
// System presentation for unknown categories.
func (c ActivityCategory) Hints() (icon, color string) {
	icon, ok := activityIcons[c]
	if !ok {
		icon = activityIcons[ActivitySystem]
	}
	color, ok = activityColors[c]
	if !ok {
		color = activityColors[ActivitySystem]
	}
	return icon, color
}
