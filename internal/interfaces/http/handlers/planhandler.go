package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crewhub/internal/application/plan/usecases"
	"crewhub/internal/domain/plan"
	"crewhub/internal/shared/id"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/utils"
)

type PlanHandler struct {
	createUC      *usecases.CreatePlanUseCase
	updateUC      *usecases.UpdatePlanUseCase
	getUC         *usecases.GetPlanUseCase
	listUC        *usecases.ListPlansUseCase
	createFeature *usecases.CreateFeatureUseCase
	listFeatures  *usecases.ListFeaturesUseCase
	getSubUC      *usecases.GetSubscriptionUseCase
	listBillingUC *usecases.ListBillingHistoryUseCase
	logger        logger.Interface
}

func NewPlanHandler(
	createUC *usecases.CreatePlanUseCase,
	updateUC *usecases.UpdatePlanUseCase,
	getUC *usecases.GetPlanUseCase,
	listUC *usecases.ListPlansUseCase,
	createFeature *usecases.CreateFeatureUseCase,
	listFeatures *usecases.ListFeaturesUseCase,
	getSubUC *usecases.GetSubscriptionUseCase,
	listBillingUC *usecases.ListBillingHistoryUseCase,
	logger logger.Interface,
) *PlanHandler {
	return &PlanHandler{
		createUC:      createUC,
		updateUC:      updateUC,
		getUC:         getUC,
		listUC:        listUC,
		createFeature: createFeature,
		listFeatures:  listFeatures,
		getSubUC:      getSubUC,
		listBillingUC: listBillingUC,
		logger:        logger,
	}
}

type PlanFeatureInput struct {
	FeatureID uint `json:"featureId" binding:"required"`
	HasLimit  bool `json:"hasLimit"`
	MaxLimit  *int `json:"maxLimit"`
}

type PlanRequest struct {
	Name         string             `json:"name" binding:"required,max=100"`
	Description  string             `json:"description" binding:"max=2000"`
	Price        float64            `json:"price" binding:"min=0"`
	MinimumUsers int                `json:"minimumUsers" binding:"min=1"`
	Active       bool               `json:"active"`
	Features     []PlanFeatureInput `json:"features" binding:"dive"`
}

type FeatureRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Active bool   `json:"active"`
}

type PlanFeatureResponse struct {
	FeatureID uint `json:"featureId"`
	HasLimit  bool `json:"hasLimit"`
	MaxLimit  *int `json:"maxLimit,omitempty"`
}

type PlanResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Description  string                `json:"description,omitempty"`
	Price        float64               `json:"price"`
	MinimumUsers int                   `json:"minimumUsers"`
	MinimumTotal float64               `json:"minimumTotal"`
	Active       bool                  `json:"active"`
	Features     []PlanFeatureResponse `json:"features"`
	CreatedAt    int64                 `json:"createdAt"`
	UpdatedAt    int64                 `json:"updatedAt"`
}

type FeatureResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type SubscriptionResponse struct {
	PlanID      string  `json:"planId"`
	PlanName    string  `json:"planName"`
	Status      string  `json:"status"`
	Users       int     `json:"users"`
	TotalAmount float64 `json:"totalAmount"`
	NextBilling int64   `json:"nextBilling"`
}

type BillingEntryResponse struct {
	InvoiceNo string  `json:"invoiceNo"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	Date      int64   `json:"date"`
}

func planResponse(p *plan.Plan) PlanResponse {
	features := make([]PlanFeatureResponse, 0, len(p.Features()))
	for _, f := range p.Features() {
		features = append(features, PlanFeatureResponse{
			FeatureID: f.FeatureID(),
			HasLimit:  f.HasLimit(),
			MaxLimit:  f.MaxLimit(),
		})
	}

	return PlanResponse{
		ID:           p.SID(),
		Name:         p.Name(),
		Description:  p.Description(),
		Price:        p.Price(),
		MinimumUsers: p.MinimumUsers(),
		MinimumTotal: p.MinimumTotal(),
		Active:       p.Active(),
		Features:     features,
		CreatedAt:    p.CreatedAt().UnixMilli(),
		UpdatedAt:    p.UpdatedAt().UnixMilli(),
	}
}

func featureInputs(inputs []PlanFeatureInput) []usecases.PlanFeatureInput {
	out := make([]usecases.PlanFeatureInput, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, usecases.PlanFeatureInput{
			FeatureID: in.FeatureID,
			HasLimit:  in.HasLimit,
			MaxLimit:  in.MaxLimit,
		})
	}
	return out
}

func (h *PlanHandler) Create(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.createUC.Execute(c.Request.Context(), usecases.CreatePlanCommand{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		MinimumUsers: req.MinimumUsers,
		Active:       req.Active,
		Features:     featureInputs(req.Features),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, planResponse(p), "plan created")
}

func (h *PlanHandler) Update(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixPlan, "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdatePlanCommand{
		PlanSID:      sid,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		MinimumUsers: req.MinimumUsers,
		Active:       req.Active,
		Features:     featureInputs(req.Features),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "plan updated", planResponse(p))
}

func (h *PlanHandler) Get(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixPlan, "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p, err := h.getUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", planResponse(p))
}

// List serves the active plan catalog, cache-first.
func (h *PlanHandler) List(c *gin.Context) {
	plans, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]PlanResponse, 0, len(plans))
	for _, p := range plans {
		items = append(items, planResponse(p))
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

func (h *PlanHandler) CreateFeature(c *gin.Context) {
	var req FeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	f, err := h.createFeature.Execute(c.Request.Context(), usecases.CreateFeatureCommand{
		Name:   req.Name,
		Active: req.Active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, FeatureResponse{ID: f.ID(), Name: f.Name(), Active: f.Active()}, "feature created")
}

func (h *PlanHandler) ListFeatures(c *gin.Context) {
	features, err := h.listFeatures.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]FeatureResponse, 0, len(features))
	for _, f := range features {
		items = append(items, FeatureResponse{ID: f.ID(), Name: f.Name(), Active: f.Active()})
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// GetSubscription returns the tenant's current subscription and its plan.
func (h *PlanHandler) GetSubscription(c *gin.Context) {
	result, err := h.getSubUC.Execute(c.Request.Context(), utils.CompanyID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", SubscriptionResponse{
		PlanID:      result.Plan.SID(),
		PlanName:    result.Plan.Name(),
		Status:      string(result.Subscription.Status()),
		Users:       result.Subscription.Users(),
		TotalAmount: result.Subscription.TotalAmount(),
		NextBilling: result.Subscription.NextBilling().UnixMilli(),
	})
}

func (h *PlanHandler) ListBillingHistory(c *gin.Context) {
	lp := utils.ParseListParams(c)

	result, err := h.listBillingUC.Execute(c.Request.Context(), usecases.ListBillingHistoryQuery{
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

	items := make([]BillingEntryResponse, 0, len(result.Entries))
	for _, e := range result.Entries {
		items = append(items, BillingEntryResponse{
			InvoiceNo: e.InvoiceNo(),
			Amount:    e.Amount(),
			Status:    string(e.Status()),
			Date:      e.Date().UnixMilli(),
		})
	}

	utils.ListSuccessResponse(c, items, result.Total, result.Page, result.PageSize)
}
