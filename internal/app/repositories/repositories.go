package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	ClassRepository      *ClassRepository
	FeeRepository        *FeeRepository
	AttendanceRepository *AttendanceRepository
	ExamRepository       *ExamRepository
	ActivityRepository   *ActivityRepository
	SettingsRepository   *SettingsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		ClassRepository:      NewClassRepository(db),
		FeeRepository:        NewFeeRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
		ExamRepository:       NewExamRepository(db),
		ActivityRepository:   NewActivityRepository(db),
		SettingsRepository:   NewSettingsRepository(db),
	}
}
