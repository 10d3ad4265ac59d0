package usecases

import (
	"context"

	"crewhub/internal/domain/leavepolicy"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/query"
)

type mockLeavePolicyRepository struct {
	SaveFunc     func(ctx context.Context, p *leavepolicy.LeavePolicy) error
	UpdateFunc   func(ctx context.Context, p *leavepolicy.LeavePolicy) error
	DeleteFunc   func(ctx context.Context, policyID uint) error
	GetByIDFunc  func(ctx context.Context, policyID uint) (*leavepolicy.LeavePolicy, error)
	GetBySIDFunc func(ctx context.Context, sid string) (*leavepolicy.LeavePolicy, error)
	ListFunc     func(ctx context.Context, filter query.ListFilter) ([]*leavepolicy.LeavePolicy, int64, error)
}

func (m *mockLeavePolicyRepository) Save(ctx context.Context, p *leavepolicy.LeavePolicy) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockLeavePolicyRepository) Update(ctx context.Context, p *leavepolicy.LeavePolicy) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockLeavePolicyRepository) Delete(ctx context.Context, policyID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, policyID)
	}
	return nil
}

func (m *mockLeavePolicyRepository) GetByID(ctx context.Context, policyID uint) (*leavepolicy.LeavePolicy, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, policyID)
	}
	return nil, nil
}

func (m *mockLeavePolicyRepository) GetBySID(ctx context.Context, sid string) (*leavepolicy.LeavePolicy, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockLeavePolicyRepository) List(ctx context.Context, filter query.ListFilter) ([]*leavepolicy.LeavePolicy, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
