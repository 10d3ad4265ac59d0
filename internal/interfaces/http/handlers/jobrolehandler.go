package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crewhub/internal/application/jobrole/usecases"
	"crewhub/internal/domain/jobrole"
	"crewhub/internal/shared/id"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/utils"
)

type JobRoleHandler struct {
	createUC *usecases.CreateJobRoleUseCase
	updateUC *usecases.UpdateJobRoleUseCase
	listUC   *usecases.ListJobRolesUseCase
	deleteUC *usecases.DeleteJobRoleUseCase
	assignUC *usecases.AssignJobRoleUseCase
	logger   logger.Interface
}

func NewJobRoleHandler(
	createUC *usecases.CreateJobRoleUseCase,
	updateUC *usecases.UpdateJobRoleUseCase,
	listUC *usecases.ListJobRolesUseCase,
	deleteUC *usecases.DeleteJobRoleUseCase,
	assignUC *usecases.AssignJobRoleUseCase,
	logger logger.Interface,
) *JobRoleHandler {
	return &JobRoleHandler{
		createUC: createUC,
		updateUC: updateUC,
		listUC:   listUC,
		deleteUC: deleteUC,
		assignUC: assignUC,
		logger:   logger,
	}
}

type JobRoleRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Color string `json:"color" binding:"max=20"`
}

type AssignJobRoleRequest struct {
	EmployeeIDs []uint `json:"employeeIds" binding:"required,min=1"`
}

type JobRoleResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

func jobRoleResponse(r *jobrole.JobRole) JobRoleResponse {
	return JobRoleResponse{
		ID:        r.SID(),
		Name:      r.Name(),
		Color:     r.Color(),
		CreatedAt: r.CreatedAt().UnixMilli(),
		UpdatedAt: r.UpdatedAt().UnixMilli(),
	}
}

func (h *JobRoleHandler) Create(c *gin.Context) {
	var req JobRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create job role", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	r, err := h.createUC.Execute(c.Request.Context(), usecases.CreateJobRoleCommand{
		CompanyID: utils.CompanyID(c),
		Name:      req.Name,
		Color:     req.Color,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, jobRoleResponse(r), "job role created")
}

func (h *JobRoleHandler) Update(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixJobRole, "job role")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req JobRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	r, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateJobRoleCommand{
		JobRoleSID: sid,
		CompanyID:  utils.CompanyID(c),
		Name:       req.Name,
		Color:      req.Color,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "job role updated", jobRoleResponse(r))
}

func (h *JobRoleHandler) List(c *gin.Context) {
	lp := utils.ParseListParams(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListJobRolesQuery{
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

	items := make([]JobRoleResponse, 0, len(result.JobRoles))
	for _, r := range result.JobRoles {
		items = append(items, jobRoleResponse(r))
	}

	utils.ListSuccessResponse(c, items, result.Total, result.Page, result.PageSize)
}

func (h *JobRoleHandler) Delete(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixJobRole, "job role")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteJobRoleCommand{
		JobRoleSID: sid,
		CompanyID:  utils.CompanyID(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "job role deleted", nil)
}

func (h *JobRoleHandler) AssignEmployees(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixJobRole, "job role")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignJobRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.assignUC.Execute(c.Request.Context(), usecases.AssignJobRoleCommand{
		JobRoleSID:  sid,
		CompanyID:   utils.CompanyID(c),
		EmployeeIDs: req.EmployeeIDs,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "job role assigned", nil)
}
