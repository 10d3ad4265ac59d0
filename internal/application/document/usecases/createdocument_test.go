package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewhub/internal/domain/document"
	"crewhub/internal/shared/errors"
)

func TestCreateDocumentUseCase_Execute(t *testing.T) {
	t.Run("uploads file and stores URL", func(t *testing.T) {
		var uploadedKey string
		storage := &mockFileStorage{
			UploadFunc: func(ctx context.Context, key string, contentType string, body []byte) (string, error) {
				uploadedKey = key
				return "https://cdn.example.com/" + key, nil
			},
		}

		uc := NewCreateDocumentUseCase(&mockDocumentRepository{}, storage, &mockLogger{})
		d, err := uc.Execute(context.Background(), CreateDocumentCommand{
			CompanyID:   1,
			Title:       "Fire safety certificate",
			Type:        "FILE",
			FileName:    "fire-safety.pdf",
			ContentType: "application/pdf",
			FileBody:    []byte("%PDF-1.7"),
		})

		require.NoError(t, err)
		assert.Equal(t, "documents/1/fire-safety.pdf", uploadedKey)
		assert.Equal(t, document.TypeFile, d.Type())
		assert.Equal(t, "https://cdn.example.com/documents/1/fire-safety.pdf", d.FileURL())
	})

	t.Run("notes skip storage", func(t *testing.T) {
		storage := &mockFileStorage{
			UploadFunc: func(ctx context.Context, key string, contentType string, body []byte) (string, error) {
				t.Fatal("notes must not touch storage")
				return "", nil
			},
		}

		employeeID := uint(7)
		uc := NewCreateDocumentUseCase(&mockDocumentRepository{}, storage, &mockLogger{})
		d, err := uc.Execute(context.Background(), CreateDocumentCommand{
			CompanyID:  1,
			EmployeeID: &employeeID,
			Title:      "Onboarding notes",
			Type:       "NOTE",
			Content:    "Starts on the 14th.",
		})

		require.NoError(t, err)
		assert.Equal(t, document.TypeNote, d.Type())
		assert.Empty(t, d.FileURL())
		require.NotNil(t, d.EmployeeID())
		assert.Equal(t, uint(7), *d.EmployeeID())
	})

	t.Run("file document without payload is rejected", func(t *testing.T) {
		uc := NewCreateDocumentUseCase(&mockDocumentRepository{}, &mockFileStorage{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateDocumentCommand{
			CompanyID: 1,
			Title:     "Empty",
			Type:      "FILE",
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("upload failure aborts", func(t *testing.T) {
		storage := &mockFileStorage{
			UploadFunc: func(ctx context.Context, key string, contentType string, body []byte) (string, error) {
				return "", fmt.Errorf("bucket unavailable")
			},
		}
		repo := &mockDocumentRepository{
			SaveFunc: func(ctx context.Context, d *document.Document) error {
				t.Fatal("nothing should be saved after a failed upload")
				return nil
			},
		}

		uc := NewCreateDocumentUseCase(repo, storage, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateDocumentCommand{
			CompanyID: 1,
			Title:     "Broken",
			Type:      "FILE",
			FileName:  "x.pdf",
			FileBody:  []byte("x"),
		})

		require.Error(t, err)
	})
}

func TestDeleteDocumentUseCase_Execute(t *testing.T) {
	t.Run("removes row and file", func(t *testing.T) {
		d, err := document.NewDocument(1, "Cert", document.TypeFile, "", "https://cdn.example.com/documents/1/cert.pdf", nil)
		require.NoError(t, err)
		require.NoError(t, d.SetID(6))

		var deletedKey string
		storage := &mockFileStorage{
			DeleteFunc: func(ctx context.Context, key string) error {
				deletedKey = key
				return nil
			},
		}
		repo := &mockDocumentRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*document.Document, error) {
				return d, nil
			},
		}

		uc := NewDeleteDocumentUseCase(repo, storage, &mockLogger{})
		err = uc.Execute(context.Background(), DeleteDocumentCommand{DocumentSID: d.SID(), CompanyID: 1})

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/documents/1/cert.pdf", deletedKey)
	})

	t.Run("storage failure does not fail the delete", func(t *testing.T) {
		d, err := document.NewDocument(1, "Cert", document.TypeFile, "", "https://cdn.example.com/x.pdf", nil)
		require.NoError(t, err)
		require.NoError(t, d.SetID(6))

		storage := &mockFileStorage{
			DeleteFunc: func(ctx context.Context, key string) error {
				return fmt.Errorf("bucket unavailable")
			},
		}
		repo := &mockDocumentRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*document.Document, error) {
				return d, nil
			},
		}

		uc := NewDeleteDocumentUseCase(repo, storage, &mockLogger{})
		err = uc.Execute(context.Background(), DeleteDocumentCommand{DocumentSID: d.SID(), CompanyID: 1})

		require.NoError(t, err)
	})
}
