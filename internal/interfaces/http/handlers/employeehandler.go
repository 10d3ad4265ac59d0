package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crewhub/internal/application/employee/usecases"
	"crewhub/internal/domain/employee"
	"crewhub/internal/shared/id"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/utils"
)

type EmployeeHandler struct {
	createUC       *usecases.CreateEmployeeUseCase
	updateUC       *usecases.UpdateEmployeeUseCase
	getUC          *usecases.GetEmployeeUseCase
	listUC         *usecases.ListEmployeesUseCase
	deleteUC       *usecases.DeleteEmployeeUseCase
	inviteUC       *usecases.InviteEmployeeUseCase
	acceptInviteUC *usecases.AcceptInviteUseCase
	payRatesUC     *usecases.UpdatePayRatesUseCase
	logger         logger.Interface
}

func NewEmployeeHandler(
	createUC *usecases.CreateEmployeeUseCase,
	updateUC *usecases.UpdateEmployeeUseCase,
	getUC *usecases.GetEmployeeUseCase,
	listUC *usecases.ListEmployeesUseCase,
	deleteUC *usecases.DeleteEmployeeUseCase,
	inviteUC *usecases.InviteEmployeeUseCase,
	acceptInviteUC *usecases.AcceptInviteUseCase,
	payRatesUC *usecases.UpdatePayRatesUseCase,
	logger logger.Interface,
) *EmployeeHandler {
	return &EmployeeHandler{
		createUC:       createUC,
		updateUC:       updateUC,
		getUC:          getUC,
		listUC:         listUC,
		deleteUC:       deleteUC,
		inviteUC:       inviteUC,
		acceptInviteUC: acceptInviteUC,
		payRatesUC:     payRatesUC,
		logger:         logger,
	}
}

type CreateEmployeeRequest struct {
	FirstName       string  `json:"firstName" binding:"required,max=100"`
	LastName        string  `json:"lastName" binding:"required,max=100"`
	Email           string  `json:"email" binding:"required,email"`
	PhoneNumber     string  `json:"phoneNumber" binding:"max=30"`
	AnnualLeaveDays int     `json:"annualLeaveDays" binding:"min=0"`
	PayRate         float64 `json:"payRate" binding:"min=0"`
	WeeklyHours     int     `json:"weeklyHours" binding:"min=0,max=168"`
	CurrencyCode    string  `json:"currencyCode" binding:"max=3"`
	CountryCode     string  `json:"countryCode" binding:"max=2"`
	Timezone        string  `json:"timezone" binding:"max=64"`
}

type UpdateEmployeeRequest struct {
	FirstName       string `json:"firstName" binding:"required,max=100"`
	LastName        string `json:"lastName" binding:"required,max=100"`
	PhoneNumber     string `json:"phoneNumber" binding:"max=30"`
	AnnualLeaveDays int    `json:"annualLeaveDays" binding:"min=0"`
	JobRoleID       *uint  `json:"jobRoleId"`
	DetachJobRole   bool   `json:"detachJobRole"`
}

type PayRateItem struct {
	EmployeeID   string  `json:"employeeId" binding:"required"`
	PayRate      float64 `json:"payRate" binding:"min=0"`
	WeeklyHours  int     `json:"weeklyHours" binding:"min=0,max=168"`
	CurrencyCode string  `json:"currencyCode" binding:"max=3"`
	CountryCode  string  `json:"countryCode" binding:"max=2"`
	Timezone     string  `json:"timezone" binding:"max=64"`
}

type UpdatePayRatesRequest struct {
	Items []PayRateItem `json:"items" binding:"required,min=1,dive"`
}

type AcceptInviteRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type EmployeeResponse struct {
	ID              string  `json:"id"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	PhoneNumber     string  `json:"phoneNumber,omitempty"`
	Timezone        string  `json:"timezone,omitempty"`
	CountryCode     string  `json:"countryCode,omitempty"`
	CurrencyCode    string  `json:"currencyCode,omitempty"`
	PayRate         float64 `json:"payRate"`
	WeeklyHours     int     `json:"weeklyHours"`
	AnnualLeaveDays int     `json:"annualLeaveDays"`
	JobRoleID       *uint   `json:"jobRoleId,omitempty"`
	InviteAccepted  bool    `json:"inviteAccepted"`
	CreatedAt       int64   `json:"createdAt"`
	UpdatedAt       int64   `json:"updatedAt"`
}

func employeeResponse(e *employee.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:              e.SID(),
		FirstName:       e.FirstName(),
		LastName:        e.LastName(),
		Email:           e.Email(),
		PhoneNumber:     e.PhoneNumber(),
		Timezone:        e.Timezone(),
		CountryCode:     e.CountryCode(),
		CurrencyCode:    e.CurrencyCode(),
		PayRate:         e.PayRate(),
		WeeklyHours:     e.WeeklyHours(),
		AnnualLeaveDays: e.AnnualLeaveDays(),
		JobRoleID:       e.JobRoleID(),
		InviteAccepted:  e.InviteAccepted(),
		CreatedAt:       e.CreatedAt().UnixMilli(),
		UpdatedAt:       e.UpdatedAt().UnixMilli(),
	}
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create employee", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.createUC.Execute(c.Request.Context(), usecases.CreateEmployeeCommand{
		CompanyID:       utils.CompanyID(c),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		AnnualLeaveDays: req.AnnualLeaveDays,
		PayRate:         req.PayRate,
		WeeklyHours:     req.WeeklyHours,
		CurrencyCode:    req.CurrencyCode,
		CountryCode:     req.CountryCode,
		Timezone:        req.Timezone,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, employeeResponse(e), "employee created")
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixEmployee, "employee")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateEmployeeCommand{
		EmployeeSID:     sid,
		CompanyID:       utils.CompanyID(c),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		PhoneNumber:     req.PhoneNumber,
		AnnualLeaveDays: req.AnnualLeaveDays,
		JobRoleID:       req.JobRoleID,
		DetachJobRole:   req.DetachJobRole,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "employee updated", employeeResponse(e))
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixEmployee, "employee")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	e, err := h.getUC.Execute(c.Request.Context(), sid, utils.CompanyID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", employeeResponse(e))
}

func (h *EmployeeHandler) List(c *gin.Context) {
	lp := utils.ParseListParams(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListEmployeesQuery{
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

	items := make([]EmployeeResponse, 0, len(result.Employees))
	for _, e := range result.Employees {
		items = append(items, employeeResponse(e))
	}

	utils.ListSuccessResponse(c, items, result.Total, result.Page, result.PageSize)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixEmployee, "employee")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteEmployeeCommand{
		EmployeeSID: sid,
		CompanyID:   utils.CompanyID(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "employee deleted", nil)
}

// Invite regenerates the invite token and emails a tokenized signup link.
func (h *EmployeeHandler) Invite(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixEmployee, "employee")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.inviteUC.Execute(c.Request.Context(), usecases.InviteEmployeeCommand{
		EmployeeSID: sid,
		CompanyID:   utils.CompanyID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "invite sent", gin.H{
		"emailSent": result.EmailSent,
	})
}

// AcceptInvite is unauthenticated; the token proves the invite.
func (h *EmployeeHandler) AcceptInvite(c *gin.Context) {
	var req AcceptInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.acceptInviteUC.Execute(c.Request.Context(), usecases.AcceptInviteCommand{
		InviteToken: req.Token,
		Password:    req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "invite accepted", gin.H{
		"userId": result.UserSID,
	})
}

func (h *EmployeeHandler) UpdatePayRates(c *gin.Context) {
	var req UpdatePayRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]usecases.PayRateInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecases.PayRateInput{
			EmployeeSID:  item.EmployeeID,
			PayRate:      item.PayRate,
			WeeklyHours:  item.WeeklyHours,
			CurrencyCode: item.CurrencyCode,
			CountryCode:  item.CountryCode,
			Timezone:     item.Timezone,
		})
	}

	if err := h.payRatesUC.Execute(c.Request.Context(), usecases.UpdatePayRatesCommand{
		CompanyID: utils.CompanyID(c),
		Items:     items,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "pay rates updated", nil)
}
