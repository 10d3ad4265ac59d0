package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crewhub/internal/application/onboarding/usecases"
	"crewhub/internal/domain/onboarding"
	"crewhub/internal/shared/id"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/utils"
)

type OnboardingHandler struct {
	createUC *usecases.CreateFlowUseCase
	updateUC *usecases.UpdateFlowUseCase
	listUC   *usecases.ListFlowsUseCase
	getUC    *usecases.GetFlowUseCase
	deleteUC *usecases.DeleteFlowUseCase
	logger   logger.Interface
}

func NewOnboardingHandler(
	createUC *usecases.CreateFlowUseCase,
	updateUC *usecases.UpdateFlowUseCase,
	listUC *usecases.ListFlowsUseCase,
	getUC *usecases.GetFlowUseCase,
	deleteUC *usecases.DeleteFlowUseCase,
	logger logger.Interface,
) *OnboardingHandler {
	return &OnboardingHandler{
		createUC: createUC,
		updateUC: updateUC,
		listUC:   listUC,
		getUC:    getUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

type OnboardingStepRequest struct {
	Type        string `json:"type" binding:"required,onboardingstep"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	Order       int    `json:"order" binding:"min=0"`
	Required    *bool  `json:"isRequired"`
}

type CreateOnboardingRequest struct {
	Name        string                  `json:"name" binding:"required,max=100"`
	Description string                  `json:"description"`
	Active      *bool                   `json:"isActive"`
	Steps       []OnboardingStepRequest `json:"steps" binding:"omitempty,dive"`
}

type UpdateOnboardingRequest struct {
	Name        string                  `json:"name" binding:"omitempty,max=100"`
	Description string                  `json:"description"`
	Active      *bool                   `json:"isActive"`
	Steps       []OnboardingStepRequest `json:"steps" binding:"omitempty,dive"`
}

type OnboardingStepResponse struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order"`
	Required    bool   `json:"isRequired"`
}

type OnboardingResponse struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description,omitempty"`
	Active      bool                     `json:"isActive"`
	Steps       []OnboardingStepResponse `json:"steps"`
	CreatedAt   int64                    `json:"createdAt"`
	UpdatedAt   int64                    `json:"updatedAt"`
}

func onboardingResponse(f *onboarding.Flow) OnboardingResponse {
	steps := make([]OnboardingStepResponse, 0, len(f.Steps()))
	for _, s := range f.Steps() {
		steps = append(steps, OnboardingStepResponse{
			Type:        string(s.Type()),
			Title:       s.Title(),
			Description: s.Description(),
			Order:       s.Order(),
			Required:    s.Required(),
		})
	}

	return OnboardingResponse{
		ID:          f.SID(),
		Name:        f.Name(),
		Description: f.Description(),
		Active:      f.Active(),
		Steps:       steps,
		CreatedAt:   f.CreatedAt().UnixMilli(),
		UpdatedAt:   f.UpdatedAt().UnixMilli(),
	}
}

func stepInputs(reqs []OnboardingStepRequest) []usecases.StepInput {
	if reqs == nil {
		return nil
	}

	inputs := make([]usecases.StepInput, 0, len(reqs))
	for _, r := range reqs {
		required := true
		if r.Required != nil {
			required = *r.Required
		}
		inputs = append(inputs, usecases.StepInput{
			Type:        r.Type,
			Title:       r.Title,
			Description: r.Description,
			Order:       r.Order,
			Required:    required,
		})
	}
	return inputs
}

func (h *OnboardingHandler) Create(c *gin.Context) {
	var req CreateOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create onboarding flow", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	f, err := h.createUC.Execute(c.Request.Context(), usecases.CreateFlowCommand{
		CompanyID:   utils.CompanyID(c),
		Name:        req.Name,
		Description: req.Description,
		Active:      active,
		Steps:       stepInputs(req.Steps),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, onboardingResponse(f), "onboarding flow created")
}

func (h *OnboardingHandler) List(c *gin.Context) {
	lp := utils.ParseListParams(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListFlowsQuery{
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

	items := make([]OnboardingResponse, 0, len(result.Flows))
	for _, f := range result.Flows {
		items = append(items, onboardingResponse(f))
	}

	utils.ListSuccessResponse(c, items, result.Total, result.Page, result.PageSize)
}

func (h *OnboardingHandler) Get(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixOnboarding, "onboarding flow")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	f, err := h.getUC.Execute(c.Request.Context(), usecases.GetFlowQuery{
		FlowSID:   sid,
		CompanyID: utils.CompanyID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "onboarding flow retrieved", onboardingResponse(f))
}

func (h *OnboardingHandler) Update(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixOnboarding, "onboarding flow")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	f, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateFlowCommand{
		FlowSID:     sid,
		CompanyID:   utils.CompanyID(c),
		Name:        req.Name,
		Description: req.Description,
		Active:      req.Active,
		Steps:       stepInputs(req.Steps),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "onboarding flow updated", onboardingResponse(f))
}

func (h *OnboardingHandler) Delete(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixOnboarding, "onboarding flow")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteFlowCommand{
		FlowSID:   sid,
		CompanyID: utils.CompanyID(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "onboarding flow deleted", nil)
}
