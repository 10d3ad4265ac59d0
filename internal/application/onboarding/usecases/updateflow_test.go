package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewhub/internal/domain/onboarding"
	"crewhub/internal/shared/errors"
)

func newTestFlow(t *testing.T, companyID uint) *onboarding.Flow {
	t.Helper()

	step, err := onboarding.NewStep(onboarding.StepDocument, "Upload right-to-work documents", "", 1, true)
	require.NoError(t, err)

	f, err := onboarding.NewFlow(companyID, "Barista Onboarding", "New hire checklist", true, []*onboarding.Step{step})
	require.NoError(t, err)
	require.NoError(t, f.SetID(7))
	return f
}

func TestUpdateFlowUseCase_Execute(t *testing.T) {
	t.Run("updates fields and replaces steps", func(t *testing.T) {
		flow := newTestFlow(t, 1)

		var updated *onboarding.Flow
		repo := &mockOnboardingRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*onboarding.Flow, error) {
				return flow, nil
			},
			UpdateFunc: func(ctx context.Context, f *onboarding.Flow) error {
				updated = f
				return nil
			},
		}

		inactive := false
		uc := NewUpdateFlowUseCase(repo, &mockLogger{})
		f, err := uc.Execute(context.Background(), UpdateFlowCommand{
			FlowSID:   flow.SID(),
			CompanyID: 1,
			Name:      "Supervisor Onboarding",
			Active:    &inactive,
			Steps: []StepInput{
				{Type: "TASK", Title: "Shadow a shift", Order: 1, Required: true},
				{Type: "FORM", Title: "Emergency contacts", Order: 2, Required: false},
			},
		})

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Supervisor Onboarding", f.Name())
		assert.False(t, f.Active())

		steps := f.Steps()
		require.Len(t, steps, 2)
		assert.Equal(t, onboarding.StepTask, steps[0].Type())
		assert.Equal(t, "Emergency contacts", steps[1].Title())
	})

	t.Run("nil steps keep the existing sequence", func(t *testing.T) {
		flow := newTestFlow(t, 1)
		repo := &mockOnboardingRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*onboarding.Flow, error) {
				return flow, nil
			},
		}

		uc := NewUpdateFlowUseCase(repo, &mockLogger{})
		f, err := uc.Execute(context.Background(), UpdateFlowCommand{
			FlowSID:   flow.SID(),
			CompanyID: 1,
			Name:      "Renamed",
		})

		require.NoError(t, err)
		require.Len(t, f.Steps(), 1)
		assert.Equal(t, "Upload right-to-work documents", f.Steps()[0].Title())
	})

	t.Run("cross-company flow reads as not found", func(t *testing.T) {
		flow := newTestFlow(t, 2)
		repo := &mockOnboardingRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*onboarding.Flow, error) {
				return flow, nil
			},
		}

		uc := NewUpdateFlowUseCase(repo, &mockLogger{})
		_, err := uc.Execute(context.Background(), UpdateFlowCommand{
			FlowSID:   flow.SID(),
			CompanyID: 1,
			Name:      "Renamed",
		})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestDeleteFlowUseCase_Execute(t *testing.T) {
	t.Run("deletes flow in its company", func(t *testing.T) {
		flow := newTestFlow(t, 1)

		var deletedID uint
		repo := &mockOnboardingRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*onboarding.Flow, error) {
				return flow, nil
			},
			DeleteFunc: func(ctx context.Context, flowID uint) error {
				deletedID = flowID
				return nil
			},
		}

		uc := NewDeleteFlowUseCase(repo, &mockLogger{})
		err := uc.Execute(context.Background(), DeleteFlowCommand{FlowSID: flow.SID(), CompanyID: 1})

		require.NoError(t, err)
		assert.Equal(t, uint(7), deletedID)
	})

	t.Run("cross-company flow reads as not found", func(t *testing.T) {
		flow := newTestFlow(t, 2)
		repo := &mockOnboardingRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*onboarding.Flow, error) {
				return flow, nil
			},
		}

		uc := NewDeleteFlowUseCase(repo, &mockLogger{})
		err := uc.Execute(context.Background(), DeleteFlowCommand{FlowSID: flow.SID(), CompanyID: 1})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
