package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crewhub/internal/application/leavepolicy/usecases"
	"crewhub/internal/domain/leavepolicy"
	"crewhub/internal/shared/id"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/utils"
)

type LeavePolicyHandler struct {
	createUC *usecases.CreateLeavePolicyUseCase
	updateUC *usecases.UpdateLeavePolicyUseCase
	getUC    *usecases.GetLeavePolicyUseCase
	listUC   *usecases.ListLeavePoliciesUseCase
	deleteUC *usecases.DeleteLeavePolicyUseCase
	logger   logger.Interface
}

func NewLeavePolicyHandler(
	createUC *usecases.CreateLeavePolicyUseCase,
	updateUC *usecases.UpdateLeavePolicyUseCase,
	getUC *usecases.GetLeavePolicyUseCase,
	listUC *usecases.ListLeavePoliciesUseCase,
	deleteUC *usecases.DeleteLeavePolicyUseCase,
	logger logger.Interface,
) *LeavePolicyHandler {
	return &LeavePolicyHandler{
		createUC: createUC,
		updateUC: updateUC,
		getUC:    getUC,
		listUC:   listUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

type LeavePolicyRequest struct {
	Name             string `json:"name" binding:"required,max=200"`
	Description      string `json:"description" binding:"max=2000"`
	AccrualSchedule  string `json:"accrualSchedule" binding:"max=50"`
	Paid             bool   `json:"paid"`
	RequiresApproval bool   `json:"requiresApproval"`
	AllowNegative    bool   `json:"allowNegative"`
	BalanceRollover  bool   `json:"balanceRollover"`
	AutoAddNewHires  bool   `json:"autoAddNewHires"`
	MaxAccrualHours  int    `json:"maxAccrualHours" binding:"min=0"`
	BranchIDs        []uint `json:"branchIds"`
	JobRoleIDs       []uint `json:"jobRoleIds"`
	MemberIDs        []uint `json:"memberIds"`
}

type LeavePolicyResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	AccrualSchedule  string `json:"accrualSchedule,omitempty"`
	Paid             bool   `json:"paid"`
	RequiresApproval bool   `json:"requiresApproval"`
	AllowNegative    bool   `json:"allowNegative"`
	BalanceRollover  bool   `json:"balanceRollover"`
	AutoAddNewHires  bool   `json:"autoAddNewHires"`
	MaxAccrualHours  int    `json:"maxAccrualHours"`
	BranchIDs        []uint `json:"branchIds"`
	JobRoleIDs       []uint `json:"jobRoleIds"`
	MemberIDs        []uint `json:"memberIds"`
	CreatedAt        int64  `json:"createdAt"`
	UpdatedAt        int64  `json:"updatedAt"`
}

func leavePolicyResponse(p *leavepolicy.LeavePolicy) LeavePolicyResponse {
	return LeavePolicyResponse{
		ID:               p.SID(),
		Name:             p.Name(),
		Description:      p.Description(),
		AccrualSchedule:  p.AccrualSchedule(),
		Paid:             p.Paid(),
		RequiresApproval: p.RequiresApproval(),
		AllowNegative:    p.AllowNegative(),
		BalanceRollover:  p.BalanceRollover(),
		AutoAddNewHires:  p.AutoAddNewHires(),
		MaxAccrualHours:  p.MaxAccrualHours(),
		BranchIDs:        p.BranchIDs(),
		JobRoleIDs:       p.JobRoleIDs(),
		MemberIDs:        p.MemberIDs(),
		CreatedAt:        p.CreatedAt().UnixMilli(),
		UpdatedAt:        p.UpdatedAt().UnixMilli(),
	}
}

func (h *LeavePolicyHandler) Create(c *gin.Context) {
	var req LeavePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create leave policy", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.createUC.Execute(c.Request.Context(), usecases.CreateLeavePolicyCommand{
		CompanyID:        utils.CompanyID(c),
		Name:             req.Name,
		Description:      req.Description,
		AccrualSchedule:  req.AccrualSchedule,
		Paid:             req.Paid,
		RequiresApproval: req.RequiresApproval,
		AllowNegative:    req.AllowNegative,
		BalanceRollover:  req.BalanceRollover,
		AutoAddNewHires:  req.AutoAddNewHires,
		MaxAccrualHours:  req.MaxAccrualHours,
		BranchIDs:        req.BranchIDs,
		JobRoleIDs:       req.JobRoleIDs,
		MemberIDs:        req.MemberIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, leavePolicyResponse(p), "leave policy created")
}

func (h *LeavePolicyHandler) Update(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixLeavePolicy, "leave policy")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req LeavePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateLeavePolicyCommand{
		PolicySID:        sid,
		CompanyID:        utils.CompanyID(c),
		Name:             req.Name,
		Description:      req.Description,
		AccrualSchedule:  req.AccrualSchedule,
		Paid:             req.Paid,
		RequiresApproval: req.RequiresApproval,
		AllowNegative:    req.AllowNegative,
		BalanceRollover:  req.BalanceRollover,
		AutoAddNewHires:  req.AutoAddNewHires,
		MaxAccrualHours:  req.MaxAccrualHours,
		BranchIDs:        req.BranchIDs,
		JobRoleIDs:       req.JobRoleIDs,
		MemberIDs:        req.MemberIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "leave policy updated", leavePolicyResponse(p))
}

func (h *LeavePolicyHandler) Get(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixLeavePolicy, "leave policy")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p, err := h.getUC.Execute(c.Request.Context(), sid, utils.CompanyID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", leavePolicyResponse(p))
}

func (h *LeavePolicyHandler) List(c *gin.Context) {
	lp := utils.ParseListParams(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListLeavePoliciesQuery{
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

	items := make([]LeavePolicyResponse, 0, len(result.Policies))
	for _, p := range result.Policies {
		items = append(items, leavePolicyResponse(p))
	}

	utils.ListSuccessResponse(c, items, result.Total, result.Page, result.PageSize)
}

func (h *LeavePolicyHandler) Delete(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixLeavePolicy, "leave policy")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteLeavePolicyCommand{
		PolicySID: sid,
		CompanyID: utils.CompanyID(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "leave policy deleted", nil)
}
