package usecases

import (
	"context"

	"crewhub/internal/domain/task"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/query"
)

type mockTaskRepository struct {
	SaveFunc     func(ctx context.Context, t *task.Task) error
	UpdateFunc   func(ctx context.Context, t *task.Task) error
	DeleteFunc   func(ctx context.Context, taskID uint) error
	GetByIDFunc  func(ctx context.Context, taskID uint) (*task.Task, error)
	GetBySIDFunc func(ctx context.Context, sid string) (*task.Task, error)
	ListFunc     func(ctx context.Context, filter query.ListFilter) ([]*task.Task, int64, error)
}

func (m *mockTaskRepository) Save(ctx context.Context, t *task.Task) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTaskRepository) Update(ctx context.Context, t *task.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTaskRepository) Delete(ctx context.Context, taskID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, taskID)
	}
	return nil
}

func (m *mockTaskRepository) GetByID(ctx context.Context, taskID uint) (*task.Task, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *mockTaskRepository) GetBySID(ctx context.Context, sid string) (*task.Task, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockTaskRepository) List(ctx context.Context, filter query.ListFilter) ([]*task.Task, int64, error) {
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
