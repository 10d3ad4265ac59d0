package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crewhub/internal/application/branch/usecases"
	"crewhub/internal/domain/branch"
	"crewhub/internal/shared/id"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/utils"
)

type BranchHandler struct {
	createUC   *usecases.CreateBranchUseCase
	updateUC   *usecases.UpdateBranchUseCase
	getUC      *usecases.GetBranchUseCase
	listUC     *usecases.ListBranchesUseCase
	deleteUC   *usecases.DeleteBranchUseCase
	assignUC   *usecases.AssignEmployeesUseCase
	unassignUC *usecases.UnassignEmployeesUseCase
	logger     logger.Interface
}

func NewBranchHandler(
	createUC *usecases.CreateBranchUseCase,
	updateUC *usecases.UpdateBranchUseCase,
	getUC *usecases.GetBranchUseCase,
	listUC *usecases.ListBranchesUseCase,
	deleteUC *usecases.DeleteBranchUseCase,
	assignUC *usecases.AssignEmployeesUseCase,
	unassignUC *usecases.UnassignEmployeesUseCase,
	logger logger.Interface,
) *BranchHandler {
	return &BranchHandler{
		createUC:   createUC,
		updateUC:   updateUC,
		getUC:      getUC,
		listUC:     listUC,
		deleteUC:   deleteUC,
		assignUC:   assignUC,
		unassignUC: unassignUC,
		logger:     logger,
	}
}

type BranchRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Address     string `json:"address" binding:"max=500"`
	CountryCode string `json:"countryCode" binding:"max=2"`
	ManagerID   *uint  `json:"managerId"`
}

type AssignBranchEmployeesRequest struct {
	EmployeeIDs []uint `json:"employeeIds" binding:"required,min=1"`
}

type BranchResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	ManagerID   *uint  `json:"managerId,omitempty"`
	EmployeeIDs []uint `json:"employeeIds,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}

func branchResponse(b *branch.Branch) BranchResponse {
	return BranchResponse{
		ID:          b.SID(),
		Name:        b.Name(),
		Address:     b.Address(),
		CountryCode: b.CountryCode(),
		ManagerID:   b.ManagerID(),
		CreatedAt:   b.CreatedAt().UnixMilli(),
		UpdatedAt:   b.UpdatedAt().UnixMilli(),
	}
}

func (h *BranchHandler) Create(c *gin.Context) {
	var req BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create branch", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), usecases.CreateBranchCommand{
		CompanyID:   utils.CompanyID(c),
		Name:        req.Name,
		Address:     req.Address,
		CountryCode: req.CountryCode,
		ManagerID:   req.ManagerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, branchResponse(b), "branch created")
}

func (h *BranchHandler) Update(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixBranch, "branch")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateBranchCommand{
		BranchSID:   sid,
		CompanyID:   utils.CompanyID(c),
		Name:        req.Name,
		Address:     req.Address,
		CountryCode: req.CountryCode,
		ManagerID:   req.ManagerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "branch updated", branchResponse(b))
}

func (h *BranchHandler) Get(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixBranch, "branch")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), sid, utils.CompanyID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := branchResponse(result.Branch)
	resp.EmployeeIDs = result.EmployeeIDs
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func (h *BranchHandler) List(c *gin.Context) {
	lp := utils.ParseListParams(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListBranchesQuery{
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

	items := make([]BranchResponse, 0, len(result.Branches))
	for _, b := range result.Branches {
		items = append(items, branchResponse(b))
	}

	utils.ListSuccessResponse(c, items, result.Total, result.Page, result.PageSize)
}

func (h *BranchHandler) Delete(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixBranch, "branch")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteBranchCommand{
		BranchSID: sid,
		CompanyID: utils.CompanyID(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "branch deleted", nil)
}

func (h *BranchHandler) AssignEmployees(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixBranch, "branch")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignBranchEmployeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.assignUC.Execute(c.Request.Context(), usecases.AssignEmployeesCommand{
		BranchSID:   sid,
		CompanyID:   utils.CompanyID(c),
		EmployeeIDs: req.EmployeeIDs,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "employees assigned", nil)
}

func (h *BranchHandler) UnassignEmployees(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixBranch, "branch")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignBranchEmployeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.unassignUC.Execute(c.Request.Context(), usecases.UnassignEmployeesCommand{
		BranchSID:   sid,
		CompanyID:   utils.CompanyID(c),
		EmployeeIDs: req.EmployeeIDs,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "employees unassigned", nil)
}
