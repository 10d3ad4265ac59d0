package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"crewhub/internal/application/company/usecases"
	"crewhub/internal/domain/company"
	"crewhub/internal/domain/plan"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/utils"
)

// Branding uploads are capped to keep memory per request bounded.
const maxBrandingUploadBytes = 5 << 20

type CompanyHandler struct {
	getUC      *usecases.GetCompanyUseCase
	updateUC   *usecases.UpdateCompanyUseCase
	brandingUC *usecases.UpdateBrandingUseCase
	logger     logger.Interface
}

func NewCompanyHandler(
	getUC *usecases.GetCompanyUseCase,
	updateUC *usecases.UpdateCompanyUseCase,
	brandingUC *usecases.UpdateBrandingUseCase,
	logger logger.Interface,
) *CompanyHandler {
	return &CompanyHandler{
		getUC:      getUC,
		updateUC:   updateUC,
		brandingUC: brandingUC,
		logger:     logger,
	}
}

type UpdateCompanyRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Email       string   `json:"email" binding:"omitempty,email"`
	PhoneNumber string   `json:"phoneNumber" binding:"max=30"`
	Address     string   `json:"address" binding:"max=500"`
	Website     string   `json:"website" binding:"max=255"`
	DateFormat  string   `json:"dateFormat" binding:"max=20"`
	WeeklyOff   []string `json:"weeklyOff"`
	PlanID      string   `json:"planId"`
}

type CompanyResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email,omitempty"`
	PhoneNumber string        `json:"phoneNumber,omitempty"`
	Address     string        `json:"address,omitempty"`
	Website     string        `json:"website,omitempty"`
	LogoURL     string        `json:"logoUrl,omitempty"`
	BannerURL   string        `json:"bannerUrl,omitempty"`
	DateFormat  string        `json:"dateFormat,omitempty"`
	WeeklyOff   []string      `json:"weeklyOff,omitempty"`
	Plan        *PlanResponse `json:"plan,omitempty"`
	CreatedAt   int64         `json:"createdAt"`
	UpdatedAt   int64         `json:"updatedAt"`
}

func companyResponse(co *company.Company, p *plan.Plan) CompanyResponse {
	resp := CompanyResponse{
		ID:          co.SID(),
		Name:        co.Name(),
		Email:       co.Email(),
		PhoneNumber: co.PhoneNumber(),
		Address:     co.Address(),
		Website:     co.Website(),
		LogoURL:     co.LogoURL(),
		BannerURL:   co.BannerURL(),
		DateFormat:  co.DateFormat(),
		WeeklyOff:   co.WeeklyOff(),
		CreatedAt:   co.CreatedAt().UnixMilli(),
		UpdatedAt:   co.UpdatedAt().UnixMilli(),
	}
	if p != nil {
		planResp := planResponse(p)
		resp.Plan = &planResp
	}
	return resp
}

func (h *CompanyHandler) Get(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), utils.CompanyID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", companyResponse(result.Company, result.Plan))
}

// Update changes company profile fields. A plan change additionally
// opens a pending subscription and cuts a billing-history row.
func (h *CompanyHandler) Update(c *gin.Context) {
	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update company", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateCompanyCommand{
		CompanyID:   utils.CompanyID(c),
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Website:     req.Website,
		DateFormat:  req.DateFormat,
		WeeklyOff:   req.WeeklyOff,
		PlanSID:     req.PlanID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := companyResponse(result.Company, nil)
	data := gin.H{"company": resp}
	if result.PlanChanged {
		data["invoiceNo"] = result.InvoiceNo
	}

	utils.SuccessResponse(c, http.StatusOK, "company updated", data)
}

// UploadBranding accepts a multipart "file" field; the "kind" form value
// selects logo or banner.
func (h *CompanyHandler) UploadBranding(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "file is required")
		return
	}

	if fileHeader.Size > maxBrandingUploadBytes {
		utils.ErrorResponse(c, http.StatusBadRequest, "file exceeds maximum upload size")
		return
	}

	kind := c.PostForm("kind")
	if kind == "" {
		kind = "logo"
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	defer file.Close()

	body, err := io.ReadAll(io.LimitReader(file, maxBrandingUploadBytes))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	result, err := h.brandingUC.Execute(c.Request.Context(), usecases.UpdateBrandingCommand{
		CompanyID:   utils.CompanyID(c),
		Kind:        kind,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Body:        body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "branding updated", gin.H{"url": result.URL})
}
