package usecases

import (
	"context"

	"crewhub/internal/domain/onboarding"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/query"
)

type mockOnboardingRepository struct {
	SaveFunc     func(ctx context.Context, f *onboarding.Flow) error
	UpdateFunc   func(ctx context.Context, f *onboarding.Flow) error
	DeleteFunc   func(ctx context.Context, flowID uint) error
	GetBySIDFunc func(ctx context.Context, sid string) (*onboarding.Flow, error)
	ListFunc     func(ctx context.Context, filter query.ListFilter) ([]*onboarding.Flow, int64, error)
}

func (m *mockOnboardingRepository) Save(ctx context.Context, f *onboarding.Flow) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, f)
	}
	return nil
}

func (m *mockOnboardingRepository) Update(ctx context.Context, f *onboarding.Flow) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, f)
	}
	return nil
}

func (m *mockOnboardingRepository) Delete(ctx context.Context, flowID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, flowID)
	}
	return nil
}

func (m *mockOnboardingRepository) GetBySID(ctx context.Context, sid string) (*onboarding.Flow, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockOnboardingRepository) List(ctx context.Context, filter query.ListFilter) ([]*onboarding.Flow, int64, error) {
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
