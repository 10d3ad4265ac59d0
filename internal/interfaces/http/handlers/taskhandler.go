package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"crewhub/internal/application/task/usecases"
	"crewhub/internal/domain/task"
	"crewhub/internal/shared/id"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/utils"
)

type TaskHandler struct {
	createUC *usecases.CreateTaskUseCase
	updateUC *usecases.UpdateTaskUseCase
	getUC    *usecases.GetTaskUseCase
	listUC   *usecases.ListTasksUseCase
	deleteUC *usecases.DeleteTaskUseCase
	logger   logger.Interface
}

func NewTaskHandler(
	createUC *usecases.CreateTaskUseCase,
	updateUC *usecases.UpdateTaskUseCase,
	getUC *usecases.GetTaskUseCase,
	listUC *usecases.ListTasksUseCase,
	deleteUC *usecases.DeleteTaskUseCase,
	logger logger.Interface,
) *TaskHandler {
	return &TaskHandler{
		createUC: createUC,
		updateUC: updateUC,
		getUC:    getUC,
		listUC:   listUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description" binding:"max=5000"`
	Priority    string     `json:"priority" binding:"omitempty,taskpriority"`
	Recurrence  string     `json:"recurrence" binding:"omitempty,taskrecurrence"`
	StartDate   time.Time  `json:"startDate" binding:"required"`
	DueDate     *time.Time `json:"dueDate"`
	Tags        []string   `json:"tags"`
	Checklist   []string   `json:"checklist"`
	AssigneeIDs []uint     `json:"assigneeIds"`
}

type UpdateTaskRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description" binding:"max=5000"`
	Status      string     `json:"status" binding:"max=20"`
	Priority    string     `json:"priority" binding:"omitempty,taskpriority"`
	DueDate     *time.Time `json:"dueDate"`
	Tags        []string   `json:"tags"`
	Checklist   []string   `json:"checklist"`
	AssigneeIDs []uint     `json:"assigneeIds"`
}

type TaskResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	Recurrence  string   `json:"recurrence,omitempty"`
	StartDate   int64    `json:"startDate"`
	DueDate     *int64   `json:"dueDate,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Checklist   []string `json:"checklist,omitempty"`
	AssigneeIDs []uint   `json:"assigneeIds"`
	CreatedAt   int64    `json:"createdAt"`
	UpdatedAt   int64    `json:"updatedAt"`
}

func taskResponse(t *task.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.SID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      string(t.Status()),
		Priority:    string(t.Priority()),
		Recurrence:  string(t.Recurrence()),
		StartDate:   t.StartDate().UnixMilli(),
		Tags:        t.Tags(),
		Checklist:   t.Checklist(),
		AssigneeIDs: t.AssigneeIDs(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
	if due := t.DueDate(); due != nil {
		millis := due.UnixMilli()
		resp.DueDate = &millis
	}
	return resp
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create task", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTaskCommand{
		CompanyID:   utils.CompanyID(c),
		ManagerID:   utils.UserID(c),
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Recurrence:  req.Recurrence,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		Tags:        req.Tags,
		Checklist:   req.Checklist,
		AssigneeIDs: req.AssigneeIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, taskResponse(t), "task created")
}

func (h *TaskHandler) Update(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixTask, "task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateTaskCommand{
		TaskSID:     sid,
		CompanyID:   utils.CompanyID(c),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Tags:        req.Tags,
		Checklist:   req.Checklist,
		AssigneeIDs: req.AssigneeIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "task updated", taskResponse(t))
}

func (h *TaskHandler) Get(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixTask, "task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	t, err := h.getUC.Execute(c.Request.Context(), sid, utils.CompanyID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", taskResponse(t))
}

func (h *TaskHandler) List(c *gin.Context) {
	lp := utils.ParseListParams(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListTasksQuery{
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

	items := make([]TaskResponse, 0, len(result.Tasks))
	for _, t := range result.Tasks {
		items = append(items, taskResponse(t))
	}

	utils.ListSuccessResponse(c, items, result.Total, result.Page, result.PageSize)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixTask, "task")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteTaskCommand{
		TaskSID:   sid,
		CompanyID: utils.CompanyID(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "task deleted", nil)
}
