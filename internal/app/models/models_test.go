package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudentStatusValid(t *testing.T) {
	assert.True(t, StatusActive.Valid())
	assert.True(t, StatusLeft.Valid())
	assert.True(t, StatusGraduated.Valid())
	assert.True(t, StatusDropout.Valid())
	assert.False(t, StudentStatus("Expelled").Valid())
	assert.False(t, StudentStatus("").Valid())
}

func TestDeclaredCapacity(t *testing.T) {
	tests := []struct {
		capacity string
		want     int
	}{
		{"20", 20},
		{" 20 ", 20},
		{"5/20", 20},
		{"0", 0},
		{"-3", 0},
		{"lots", 0},
		{"", 0},
	}
	for _, tt := range tests {
		c := Class{Capacity: tt.capacity}
		assert.Equal(t, tt.want, c.DeclaredCapacity(), "capacity %q", tt.capacity)
	}
}

func TestActivityHints(t *testing.T) {
	icon, color := ActivityStudent.Hints()
	assert.Equal(t, "students.png", icon)
	assert.Equal(t, "#DCFCE7", color)

	icon, color = ActivityFee.Hints()
	assert.Equal(t, "fee_records.png", icon)
	assert.Equal(t, "#F0F9FF", color)

	// Unknown categories fall back to the System presentation.
	icon, color = ActivityCategory("Mystery").Hints()
	assert.Equal(t, "dashboard.png", icon)
	assert.Equal(t, "#F1F5F9", color)
}

func TestAttendanceStatusValid(t *testing.T) {
	assert.True(t, AttendancePresent.Valid())
	assert.True(t, AttendanceLeave.Valid())
	assert.False(t, AttendanceStatus("Sleeping").Valid())
}
