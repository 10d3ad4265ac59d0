package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewhub/internal/domain/leavepolicy"
	"crewhub/internal/infrastructure/persistence/models"
	apperrors "crewhub/internal/shared/errors"
	"crewhub/internal/shared/query"
)

func createTestLeavePolicy(t *testing.T, companyID uint, name string) *leavepolicy.LeavePolicy {
	t.Helper()
	p, err := leavepolicy.NewLeavePolicy(companyID, name, "holiday allowance", "YEARLY", true, true, false, false, true, 200)
	require.NoError(t, err)
	return p
}

func TestLeavePolicyRepository_SaveWithAttachments(t *testing.T) {
	database := setupTestDB(t)
	repo := NewLeavePolicyRepository(database)
	ctx := context.Background()

	p := createTestLeavePolicy(t, 1, "Annual Leave")
	require.NoError(t, p.ReplaceAttachments([]uint{1, 2}, []uint{3}, []uint{4, 5, 6}))

	err := repo.Save(ctx, p)
	assert.NoError(t, err)
	assert.NotZero(t, p.ID())

	found, err := repo.GetBySID(ctx, p.SID())
	require.NoError(t, err)
	assert.Equal(t, "Annual Leave", found.Name())
	assert.Equal(t, []uint{1, 2}, found.BranchIDs())
	assert.Equal(t, []uint{3}, found.JobRoleIDs())
	assert.Equal(t, []uint{4, 5, 6}, found.MemberIDs())
}

func TestLeavePolicyRepository_UpdateReplacesAttachments(t *testing.T) {
	database := setupTestDB(t)
	repo := NewLeavePolicyRepository(database)
	ctx := context.Background()

	p := createTestLeavePolicy(t, 1, "Sick Leave")
	require.NoError(t, p.ReplaceAttachments([]uint{1}, nil, []uint{9}))
	require.NoError(t, repo.Save(ctx, p))

	require.NoError(t, p.Update("Sick Leave", "updated", "MONTHLY", true, false, true, false, false, 80))
	require.NoError(t, p.ReplaceAttachments(nil, []uint{2}, nil))

	err := repo.Update(ctx, p)
	assert.NoError(t, err)

	found, err := repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, "MONTHLY", found.AccrualSchedule())
	assert.Empty(t, found.BranchIDs())
	assert.Equal(t, []uint{2}, found.JobRoleIDs())
	assert.Empty(t, found.MemberIDs())

	var count int64
	require.NoError(t, database.Model(&models.LeavePolicyMemberModel{}).Where("policy_id = ?", p.ID()).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLeavePolicyRepository_DeleteRemovesAttachments(t *testing.T) {
	database := setupTestDB(t)
	repo := NewLeavePolicyRepository(database)
	ctx := context.Background()

	p := createTestLeavePolicy(t, 1, "Parental Leave")
	require.NoError(t, p.ReplaceAttachments([]uint{1}, []uint{2}, []uint{3}))
	require.NoError(t, repo.Save(ctx, p))

	err := repo.Delete(ctx, p.ID())
	assert.NoError(t, err)

	_, err = repo.GetByID(ctx, p.ID())
	assert.True(t, apperrors.IsNotFoundError(err))

	var count int64
	require.NoError(t, database.Model(&models.LeavePolicyBranchModel{}).Where("policy_id = ?", p.ID()).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLeavePolicyRepository_List(t *testing.T) {
	database := setupTestDB(t)
	repo := NewLeavePolicyRepository(database)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, createTestLeavePolicy(t, 1, "Annual Leave")))
	require.NoError(t, repo.Save(ctx, createTestLeavePolicy(t, 1, "Sick Leave")))
	require.NoError(t, repo.Save(ctx, createTestLeavePolicy(t, 2, "Other Tenant Leave")))

	policies, total, err := repo.List(ctx, query.NewListFilter(1, query.WithSort("name", "asc")))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, policies, 2)
	assert.Equal(t, "Annual Leave", policies[0].Name())

	policies, total, err = repo.List(ctx, query.NewListFilter(1, query.WithSearch("sick")))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, policies, 1)
	assert.Equal(t, "Sick Leave", policies[0].Name())
}
