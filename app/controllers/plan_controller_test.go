package controllers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planovida/planovida/app/repository"
)

// The fakes embed the repository interfaces so only the cascade methods
// need real bodies; anything else would panic if called.

type fakePlanRepo struct {
	repository.PlanRepository
	deleted []uint
}

func (f *fakePlanRepo) Delete(id uint) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeGoalRepo struct {
	repository.GoalRepository
	deletedPlans []uint
}

func (f *fakeGoalRepo) DeleteByPlanID(planID uint) error {
	f.deletedPlans = append(f.deletedPlans, planID)
	return nil
}

type fakeNoteRepo struct {
	repository.NoteRepository
	deletedPlans []uint
	err          error
}

func (f *fakeNoteRepo) DeleteByPlanID(planID uint) error {
	if f.err != nil {
		return f.err
	}
	f.deletedPlans = append(f.deletedPlans, planID)
	return nil
}

type fakeCustomizationRepo struct {
	repository.CustomizationRepository
	deletedPlans []uint
}

func (f *fakeCustomizationRepo) DeleteByPlanID(planID uint) error {
	f.deletedPlans = append(f.deletedPlans, planID)
	return nil
}

func TestDeletePlanCascade(t *testing.T) {
	plans := &fakePlanRepo{}
	goals := &fakeGoalRepo{}
	notes := &fakeNoteRepo{}
	customizations := &fakeCustomizationRepo{}
	repos := &repository.Repositories{
		Plan:          plans,
		Goal:          goals,
		Note:          notes,
		Customization: customizations,
	}

	require.NoError(t, deletePlanCascade(repos, 7))

	assert.Equal(t, []uint{7}, goals.deletedPlans)
	assert.Equal(t, []uint{7}, customizations.deletedPlans)
	assert.Equal(t, []uint{7}, notes.deletedPlans, "notes must be removed with their plan")
	assert.Equal(t, []uint{7}, plans.deleted)
}

func TestDeletePlanCascade_StopsOnDependentError(t *testing.T) {
	plans := &fakePlanRepo{}
	notes := &fakeNoteRepo{err: errors.New("db down")}
	repos := &repository.Repositories{
		Plan:          plans,
		Goal:          &fakeGoalRepo{},
		Note:          notes,
		Customization: &fakeCustomizationRepo{},
	}

	require.Error(t, deletePlanCascade(repos, 7))
	assert.Empty(t, plans.deleted, "plan row must survive when cleanup fails")
}
