package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maazali/collegia/internal/app/models"
	"github.com/maazali/collegia/internal/pkg/apperrors"
)

func newClassFixture() (*ClassService, *fakeState) {
	state := newFakeState()
	log := zerolog.Nop()
	activity := NewActivityService(fakeActivityLog{state}, log)
	return NewClassService(fakeClasses{state}, activity, log), state
}

func TestCreateClass(t *testing.T) {
	svc, state := newClassFixture()

	class, err := svc.CreateClass(context.Background(), "BSCS-1", "30", "R-12", "Morning")

	require.NoError(t, err)
	assert.Contains(t, class.Code, "CLS-")
	assert.Len(t, class.Code, len("CLS-")+8)
	assert.Equal(t, 30, class.DeclaredCapacity())
	assert.Contains(t, state.classes, "BSCS-1")
}

func TestCreateClassValidation(t *testing.T) {
	svc, _ := newClassFixture()

	_, err := svc.CreateClass(context.Background(), "  ", "30", "", "")
	assert.ErrorIs(t, err, apperrors.ErrClassNameRequired)

	_, err = svc.CreateClass(context.Background(), "BSCS-1", "lots", "", "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCapacity)

	_, err = svc.CreateClass(context.Background(), "BSCS-1", "0", "", "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCapacity)
}

func TestCreateClassDuplicateName(t *testing.T) {
	svc, _ := newClassFixture()

	_, err := svc.CreateClass(context.Background(), "BSCS-1", "30", "", "")
	require.NoError(t, err)

	_, err = svc.CreateClass(context.Background(), "BSCS-1", "30", "", "")
	assert.ErrorIs(t, err, apperrors.ErrClassAlreadyExists)
}

func TestListClassesFlagsNearFull(t *testing.T) {
	svc, state := newClassFixture()
	state.addClass("Small", "3")
	state.addClass("Roomy", "30")
	state.addStudent("A", "Small", "A", 1)
	state.addStudent("B", "Small", "A", 2)
	state.addStudent("C", "Small", "A", 3)
	state.addStudent("D", "Roomy", "A", 1)

	classes, err := svc.ListClasses(context.Background())

	require.NoError(t, err)
	require.Len(t, classes, 2)
	byName := map[string]bool{}
	for _, c := range classes {
		byName[c.Name] = c.NearFull
	}
	assert.True(t, byName["Small"], "3 of 3 seats is past the near-full threshold")
	assert.False(t, byName["Roomy"])
}

func TestDeleteClassRefusedWhileOccupied(t *testing.T) {
	svc, state := newClassFixture()
	state.addClass("BSCS-1", "30")
	s := state.addStudent("A", "BSCS-1", "A", 1)
	code := state.classes["BSCS-1"].Code

	err := svc.DeleteClass(context.Background(), code)
	assert.ErrorIs(t, err, apperrors.ErrClassHasStudents)

	// Once the roster is empty of Active students the delete goes through.
	s.Status = models.StatusLeft
	require.NoError(t, svc.DeleteClass(context.Background(), code))
	assert.NotContains(t, state.classes, "BSCS-1")
}
