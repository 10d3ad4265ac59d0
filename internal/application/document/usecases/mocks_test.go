package usecases

import (
	"context"

	"crewhub/internal/domain/document"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/query"
)

type mockDocumentRepository struct {
	SaveFunc     func(ctx context.Context, d *document.Document) error
	UpdateFunc   func(ctx context.Context, d *document.Document) error
	DeleteFunc   func(ctx context.Context, documentID uint) error
	GetByIDFunc  func(ctx context.Context, documentID uint) (*document.Document, error)
	GetBySIDFunc func(ctx context.Context, sid string) (*document.Document, error)
	ListFunc     func(ctx context.Context, filter query.ListFilter) ([]*document.Document, int64, error)
}

func (m *mockDocumentRepository) Save(ctx context.Context, d *document.Document) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, d)
	}
	return nil
}

func (m *mockDocumentRepository) Update(ctx context.Context, d *document.Document) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, d)
	}
	return nil
}

func (m *mockDocumentRepository) Delete(ctx context.Context, documentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, documentID)
	}
	return nil
}

func (m *mockDocumentRepository) GetByID(ctx context.Context, documentID uint) (*document.Document, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, documentID)
	}
	return nil, nil
}

func (m *mockDocumentRepository) GetBySID(ctx context.Context, sid string) (*document.Document, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockDocumentRepository) List(ctx context.Context, filter query.ListFilter) ([]*document.Document, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockFileStorage struct {
	UploadFunc func(ctx context.Context, key string, contentType string, body []byte) (string, error)
	DeleteFunc func(ctx context.Context, key string) error
}

func (m *mockFileStorage) Upload(ctx context.Context, key string, contentType string, body []byte) (string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, key, contentType, body)
	}
	return "https://cdn.example.com/" + key, nil
}

func (m *mockFileStorage) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
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
