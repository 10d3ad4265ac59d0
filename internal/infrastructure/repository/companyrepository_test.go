package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewhub/internal/domain/company"
	"crewhub/internal/shared/db"
	apperrors "crewhub/internal/shared/errors"
)

func TestCompanyRepository_SaveAndGet(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCompanyRepository(database)
	ctx := context.Background()

	c, err := company.NewCompany("Acme Workforce", "ops@acme.example")
	require.NoError(t, err)

	err = repo.Save(ctx, c)
	assert.NoError(t, err)
	assert.NotZero(t, c.ID())

	found, err := repo.GetBySID(ctx, c.SID())
	require.NoError(t, err)
	assert.Equal(t, "Acme Workforce", found.Name())

	_, err = repo.GetByID(ctx, 999)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestCompanyRepository_UpdateProfile(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCompanyRepository(database)
	ctx := context.Background()

	c, err := company.NewCompany("Acme Workforce", "ops@acme.example")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, c))

	err = c.UpdateProfile("Acme Ltd", "", "+44 20 7946 0000", "", "https://acme.example", "DD/MM/YYYY", []string{"SAT", "SUN"})
	require.NoError(t, err)

	err = repo.Update(ctx, c)
	assert.NoError(t, err)

	found, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", found.Name())
	// Skipped fields keep their previous values.
	assert.Equal(t, "ops@acme.example", found.Email())
	assert.Equal(t, []string{"SAT", "SUN"}, found.WeeklyOff())
}

func TestCompanyRepository_PlanChangeInTransaction(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCompanyRepository(database)
	txManager := db.NewTransactionManager(database)
	ctx := context.Background()

	c, err := company.NewCompany("Acme Workforce", "ops@acme.example")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, c))

	changed, err := c.ChangePlan(3)
	require.NoError(t, err)
	require.True(t, changed)

	// A failure inside the transaction must leave the company untouched.
	err = txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := repo.Update(txCtx, c); err != nil {
			return err
		}
		return apperrors.NewInternalError("billing write failed")
	})
	assert.Error(t, err)

	found, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Nil(t, found.PlanID())

	// The same write commits when the transaction succeeds.
	err = txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return repo.Update(txCtx, c)
	})
	assert.NoError(t, err)

	found, err = repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	require.NotNil(t, found.PlanID())
	assert.Equal(t, uint(3), *found.PlanID())
}
