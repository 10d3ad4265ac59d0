package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crewhub/internal/application/ticket/usecases"
	"crewhub/internal/domain/ticket"
	"crewhub/internal/shared/id"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/sanitize"
	"crewhub/internal/shared/utils"
)

type TicketHandler struct {
	createUC       CreateTicketExecutor
	getUC          GetTicketExecutor
	listUC         ListTicketsExecutor
	deleteUC       DeleteTicketExecutor
	assignUC       AssignTicketExecutor
	changeStatusUC ChangeTicketStatusExecutor
	sendMessageUC  SendTicketMessageExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createUC CreateTicketExecutor,
	getUC GetTicketExecutor,
	listUC ListTicketsExecutor,
	deleteUC DeleteTicketExecutor,
	assignUC AssignTicketExecutor,
	changeStatusUC ChangeTicketStatusExecutor,
	sendMessageUC SendTicketMessageExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUC:       createUC,
		getUC:          getUC,
		listUC:         listUC,
		deleteUC:       deleteUC,
		assignUC:       assignUC,
		changeStatusUC: changeStatusUC,
		sendMessageUC:  sendMessageUC,
		logger:         logger,
	}
}

type CreateTicketRequest struct {
	Subject     string   `json:"subject" binding:"required,max=200"`
	Body        string   `json:"body" binding:"required,max=10000"`
	Priority    string   `json:"priority" binding:"omitempty,ticketpriority"`
	Attachments []string `json:"attachments" binding:"max=10"`
}

type AssignTicketRequest struct {
	AssigneeID uint `json:"assigneeId" binding:"required"`
}

type ChangeTicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SendTicketMessageRequest struct {
	Body        string   `json:"body" binding:"required,max=10000"`
	Attachments []string `json:"attachments" binding:"max=10"`
}

type TicketResponse struct {
	ID         string `json:"id"`
	Reference  string `json:"reference"`
	Subject    string `json:"subject"`
	Priority   string `json:"priority"`
	Status     string `json:"status"`
	CreatorID  uint   `json:"creatorId"`
	AssigneeID *uint  `json:"assigneeId,omitempty"`
	CreatedAt  int64  `json:"createdAt"`
	UpdatedAt  int64  `json:"updatedAt"`
}

type TicketMessageResponse struct {
	ID          uint     `json:"id"`
	SenderID    uint     `json:"senderId"`
	SenderType  string   `json:"senderType"`
	Body        string   `json:"body"`
	Attachments []string `json:"attachments,omitempty"`
	CreatedAt   int64    `json:"createdAt"`
}

func ticketResponse(t *ticket.Ticket) TicketResponse {
	return TicketResponse{
		ID:         t.SID(),
		Reference:  t.Reference(),
		Subject:    t.Subject(),
		Priority:   string(t.Priority()),
		Status:     string(t.Status()),
		CreatorID:  t.CreatorID(),
		AssigneeID: t.AssigneeID(),
		CreatedAt:  t.CreatedAt().UnixMilli(),
		UpdatedAt:  t.UpdatedAt().UnixMilli(),
	}
}

func ticketMessageResponse(m *ticket.Message) TicketMessageResponse {
	return TicketMessageResponse{
		ID:          m.ID(),
		SenderID:    m.SenderID(),
		SenderType:  string(m.SenderType()),
		Body:        m.Body(),
		Attachments: m.Attachments(),
		CreatedAt:   m.CreatedAt().UnixMilli(),
	}
}

func (h *TicketHandler) Create(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Subject:     sanitize.Text(req.Subject),
		Body:        sanitize.Text(req.Body),
		Priority:    req.Priority,
		Attachments: req.Attachments,
		CreatorID:   utils.UserID(c),
		CompanyID:   utils.CompanyID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"id":        result.SID,
		"reference": result.Reference,
		"status":    result.Status,
		"createdAt": result.CreatedAt.UnixMilli(),
	}, "ticket created")
}

// Get returns the ticket with its message thread in ascending order.
// Members only see their own tickets.
func (h *TicketHandler) Get(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixTicket, "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketSID: sid,
		UserID:    utils.UserID(c),
		UserRole:  utils.UserRole(c),
		CompanyID: utils.CompanyID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	messages := make([]TicketMessageResponse, 0, len(result.Messages))
	for _, m := range result.Messages {
		messages = append(messages, ticketMessageResponse(m))
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"ticket":   ticketResponse(result.Ticket),
		"messages": messages,
	})
}

func (h *TicketHandler) List(c *gin.Context) {
	lp := utils.ParseListParams(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		CompanyID: utils.CompanyID(c),
		UserID:    utils.UserID(c),
		UserRole:  utils.UserRole(c),
		Status:    c.Query("status"),
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

	items := make([]TicketResponse, 0, len(result.Tickets))
	for _, t := range result.Tickets {
		items = append(items, ticketResponse(t))
	}

	utils.ListSuccessResponse(c, items, result.Total, result.Page, result.PageSize)
}

func (h *TicketHandler) Delete(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixTicket, "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketSID: sid,
		CompanyID: utils.CompanyID(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket deleted", nil)
}

func (h *TicketHandler) Assign(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixTicket, "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.assignUC.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		TicketSID:  sid,
		AssigneeID: req.AssigneeID,
		CompanyID:  utils.CompanyID(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket assigned", nil)
}

func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixTicket, "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		TicketSID: sid,
		Status:    req.Status,
		CompanyID: utils.CompanyID(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket status updated", nil)
}

// SendMessage appends to the thread and may flip the ticket status
// depending on who is replying.
func (h *TicketHandler) SendMessage(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixTicket, "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SendTicketMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.sendMessageUC.Execute(c.Request.Context(), usecases.SendMessageCommand{
		TicketSID:   sid,
		SenderID:    utils.UserID(c),
		SenderRole:  utils.UserRole(c),
		Body:        sanitize.Text(req.Body),
		Attachments: req.Attachments,
		CompanyID:   utils.CompanyID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"messageId":     result.MessageID,
		"ticketStatus":  result.TicketStatus,
		"statusChanged": result.StatusChanged,
		"createdAt":     result.CreatedAt.UnixMilli(),
	}, "message sent")
}
