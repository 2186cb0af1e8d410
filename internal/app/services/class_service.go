package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/maazali/collegia/internal/app/models"
	"github.com/maazali/collegia/internal/pkg/apperrors"
)

// nearFullThreshold flags classes above this share of declared capacity.
const nearFullThreshold = 0.9

// ClassService handles class management
type ClassService struct {
	classes  ClassStore
	activity *ActivityService
	logger   zerolog.Logger
}

// NewClassService creates a new class service instance
func NewClassService(classes ClassStore, activity *ActivityService, logger zerolog.Logger) *ClassService {
	return &ClassService{
		classes:  classes,
		activity: activity,
		logger:   logger,
	}
}

// CreateClass registers a new class with a generated code. The declared
// capacity arrives as free text and must read as a positive integer.
func (s *ClassService) CreateClass(ctx context.Context, name, capacity, room, shift string) (*models.Class, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ErrClassNameRequired
	}

	capacity = strings.TrimSpace(capacity)
	if n, err := strconv.Atoi(capacity); err != nil || n <= 0 {
		return nil, apperrors.ErrInvalidCapacity
	}

	class := &models.Class{
		Code:     newClassCode(),
		Name:     name,
		Capacity: capacity,
		Room:     room,
		Shift:    shift,
	}

	if err := s.classes.Create(ctx, class); err != nil {
		return nil, err
	}

	s.logger.Info().Str("class", name).Str("code", class.Code).Msg("Class created")
	s.activity.Record(ctx, models.ActivitySystem, fmt.Sprintf("Class %s created", name))

	return class, nil
}

// ListClasses returns all classes with occupancy and the near-full flag.
func (s *ClassService) ListClasses(ctx context.Context) ([]*models.ClassOccupancy, error) {
	classes, err := s.classes.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range classes {
		declared := c.DeclaredCapacity()
		c.NearFull = declared > 0 && float64(c.ActiveStudents) > nearFullThreshold*float64(declared)
	}

	return classes, nil
}

// ClassNames returns the class names for dropdown menus.
func (s *ClassService) ClassNames(ctx context.Context) ([]string, error) {
	return s.classes.Names(ctx)
}

// DeleteClass removes a class by code. The store refuses while Active
// students still reference the class, so no roster is orphaned silently.
func (s *ClassService) DeleteClass(ctx context.Context, code string) error {
	if err := s.classes.Delete(ctx, code); err != nil {
		return err
	}

	s.activity.Record(ctx, models.ActivitySystem, fmt.Sprintf("Class %s deleted", code))
	return nil
}
