package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"crewhub/internal/application/document/usecases"
	"crewhub/internal/domain/document"
	"crewhub/internal/shared/id"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/utils"
)

const maxDocumentUploadBytes = 25 << 20

type DocumentHandler struct {
	createUC *usecases.CreateDocumentUseCase
	updateUC *usecases.UpdateDocumentUseCase
	getUC    *usecases.GetDocumentUseCase
	listUC   *usecases.ListDocumentsUseCase
	deleteUC *usecases.DeleteDocumentUseCase
	logger   logger.Interface
}

func NewDocumentHandler(
	createUC *usecases.CreateDocumentUseCase,
	updateUC *usecases.UpdateDocumentUseCase,
	getUC *usecases.GetDocumentUseCase,
	listUC *usecases.ListDocumentsUseCase,
	deleteUC *usecases.DeleteDocumentUseCase,
	logger logger.Interface,
) *DocumentHandler {
	return &DocumentHandler{
		createUC: createUC,
		updateUC: updateUC,
		getUC:    getUC,
		listUC:   listUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

type DocumentResponse struct {
	ID         string `json:"id"`
	EmployeeID *uint  `json:"employeeId,omitempty"`
	Title      string `json:"title"`
	Type       string `json:"type"`
	Content    string `json:"content,omitempty"`
	FileURL    string `json:"fileUrl,omitempty"`
	CreatedAt  int64  `json:"createdAt"`
	UpdatedAt  int64  `json:"updatedAt"`
}

func documentResponse(d *document.Document) DocumentResponse {
	return DocumentResponse{
		ID:         d.SID(),
		EmployeeID: d.EmployeeID(),
		Title:      d.Title(),
		Type:       string(d.Type()),
		Content:    d.Content(),
		FileURL:    d.FileURL(),
		CreatedAt:  d.CreatedAt().UnixMilli(),
		UpdatedAt:  d.UpdatedAt().UnixMilli(),
	}
}

// readUploadedFile pulls the optional multipart "file" field. A missing
// file is not an error; text documents carry content instead.
func readUploadedFile(c *gin.Context) (name, contentType string, body []byte, err error) {
	fileHeader, ferr := c.FormFile("file")
	if ferr != nil {
		return "", "", nil, nil
	}

	if fileHeader.Size > maxDocumentUploadBytes {
		return "", "", nil, io.ErrShortBuffer
	}

	file, ferr := fileHeader.Open()
	if ferr != nil {
		return "", "", nil, ferr
	}
	defer file.Close()

	body, ferr = io.ReadAll(io.LimitReader(file, maxDocumentUploadBytes))
	if ferr != nil {
		return "", "", nil, ferr
	}

	return fileHeader.Filename, fileHeader.Header.Get("Content-Type"), body, nil
}

// Create accepts multipart form data: title, type, optional content,
// optional employeeId, and an optional file to store.
func (h *DocumentHandler) Create(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "title is required")
		return
	}

	docType := c.PostForm("type")

	var employeeID *uint
	if raw := c.PostForm("employeeId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid employeeId")
			return
		}
		eid := uint(parsed)
		employeeID = &eid
	}

	fileName, contentType, body, err := readUploadedFile(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	d, err := h.createUC.Execute(c.Request.Context(), usecases.CreateDocumentCommand{
		CompanyID:   utils.CompanyID(c),
		EmployeeID:  employeeID,
		Title:       title,
		Type:        docType,
		Content:     c.PostForm("content"),
		FileName:    fileName,
		ContentType: contentType,
		FileBody:    body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, documentResponse(d), "document created")
}

func (h *DocumentHandler) Update(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixDocument, "document")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	title := c.PostForm("title")
	if title == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "title is required")
		return
	}

	fileName, contentType, body, err := readUploadedFile(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	d, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateDocumentCommand{
		DocumentSID: sid,
		CompanyID:   utils.CompanyID(c),
		Title:       title,
		Content:     c.PostForm("content"),
		FileName:    fileName,
		ContentType: contentType,
		FileBody:    body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "document updated", documentResponse(d))
}

func (h *DocumentHandler) Get(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixDocument, "document")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	d, err := h.getUC.Execute(c.Request.Context(), sid, utils.CompanyID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", documentResponse(d))
}

func (h *DocumentHandler) List(c *gin.Context) {
	lp := utils.ParseListParams(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListDocumentsQuery{
		CompanyID: utils.CompanyID(c),
		Search:    lp.Search,
		Page:      lp.Page,
		PageSize:  lp.Size,
		SortBy:    lp.SortBy,
		SortOrder: lp.SortDirection,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]DocumentResponse, 0, len(result.Documents))
	for _, d := range result.Documents {
		items = append(items, documentResponse(d))
	}

	utils.ListSuccessResponse(c, items, result.Total, result.Page, result.PageSize)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixDocument, "document")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteDocumentCommand{
		DocumentSID: sid,
		CompanyID:   utils.CompanyID(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "document deleted", nil)
}
