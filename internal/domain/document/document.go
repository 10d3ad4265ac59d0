package document

import (
	"fmt"
	"strings"
	"time"

	"crewhub/internal/shared/id"
)

type DocumentType string

const (
	TypeFile DocumentType = "FILE"
	TypeNote DocumentType = "NOTE"
)

func (t DocumentType) IsValid() bool {
	switch t {
	case TypeFile, TypeNote:
		return true
	}
	return false
}

// Document is a company file or note, optionally linked to a single
// employee. File documents carry the object storage URL.
type Document struct {
	id         uint
	sid        string
	companyID  uint
	employeeID *uint
	title      string
	docType    DocumentType
	content    string
	fileURL    string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewDocument(companyID uint, title string, docType DocumentType, content, fileURL string, employeeID *uint) (*Document, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("document title is required")
	}
	if !docType.IsValid() {
		return nil, fmt.Errorf("invalid document type: %s", docType)
	}
	if docType == TypeFile && fileURL == "" {
		return nil, fmt.Errorf("file documents require a file URL")
	}
	if employeeID != nil && *employeeID == 0 {
		return nil, fmt.Errorf("employee ID cannot be zero")
	}

	now := time.Now()

	return &Document{
		sid:        id.MustGenerateWithPrefix(id.PrefixDocument, id.DefaultLength),
		companyID:  companyID,
		employeeID: employeeID,
		title:      title,
		docType:    docType,
		content:    content,
		fileURL:    fileURL,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructDocument(
	documentID uint,
	sid string,
	companyID uint,
	employeeID *uint,
	title string,
	docType DocumentType,
	content string,
	fileURL string,
	createdAt, updatedAt time.Time,
) (*Document, error) {
	if documentID == 0 {
		return nil, fmt.Errorf("document ID cannot be zero")
	}
	if len(sid) == 0 {
		return nil, fmt.Errorf("document SID is required")
	}
	if !docType.IsValid() {
		return nil, fmt.Errorf("invalid document type: %s", docType)
	}

	return &Document{
		id:         documentID,
		sid:        sid,
		companyID:  companyID,
		employeeID: employeeID,
		title:      title,
		docType:    docType,
		content:    content,
		fileURL:    fileURL,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (d *Document) ID() uint           { return d.id }
func (d *Document) SID() string        { return d.sid }
func (d *Document) CompanyID() uint    { return d.companyID }
func (d *Document) EmployeeID() *uint  { return d.employeeID }
func (d *Document) Title() string      { return d.title }
func (d *Document) Type() DocumentType { return d.docType }
func (d *Document) Content() string    { return d.content }
func (d *Document) FileURL() string    { return d.fileURL }

func (d *Document) CreatedAt() time.Time { return d.createdAt }
func (d *Document) UpdatedAt() time.Time { return d.updatedAt }

func (d *Document) SetID(documentID uint) error {
	if d.id != 0 {
		return fmt.Errorf("document ID is already set")
	}
	if documentID == 0 {
		return fmt.Errorf("document ID cannot be zero")
	}
	d.id = documentID
	return nil
}

func (d *Document) Update(title, content, fileURL string) error {
	if title != "" {
		d.title = title
	}
	if content != "" {
		d.content = content
	}
	if fileURL != "" {
		d.fileURL = fileURL
	}

	d.updatedAt = time.Now()
	return nil
}
