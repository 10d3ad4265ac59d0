package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crewhub/internal/application/setting/usecases"
	"crewhub/internal/domain/setting"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/utils"
)

// SettingHandler serves the per-company settings aggregates. Each
// aggregate is a singleton keyed by company; upserts replace child
// collections wholesale.
type SettingHandler struct {
	upsertActivityUC *usecases.UpsertActivityTrackingSettingUseCase
	getActivityUC    *usecases.GetActivityTrackingSettingUseCase
	upsertBreakUC    *usecases.UpsertBreakComplianceSettingUseCase
	getBreakUC       *usecases.GetBreakComplianceSettingUseCase
	upsertNotifUC    *usecases.UpsertNotificationSettingUseCase
	getNotifUC       *usecases.GetNotificationSettingUseCase
	upsertRotaUC     *usecases.UpsertRotaRuleSettingUseCase
	getRotaUC        *usecases.GetRotaRuleSettingUseCase
	upsertScreenUC   *usecases.UpsertScreenTimeSettingUseCase
	getScreenUC      *usecases.GetScreenTimeSettingUseCase
	upsertShiftUC    *usecases.UpsertShiftSettingUseCase
	getShiftUC       *usecases.GetShiftSettingUseCase
	logger           logger.Interface
}

func NewSettingHandler(
	upsertActivityUC *usecases.UpsertActivityTrackingSettingUseCase,
	getActivityUC *usecases.GetActivityTrackingSettingUseCase,
	upsertBreakUC *usecases.UpsertBreakComplianceSettingUseCase,
	getBreakUC *usecases.GetBreakComplianceSettingUseCase,
	upsertNotifUC *usecases.UpsertNotificationSettingUseCase,
	getNotifUC *usecases.GetNotificationSettingUseCase,
	upsertRotaUC *usecases.UpsertRotaRuleSettingUseCase,
	getRotaUC *usecases.GetRotaRuleSettingUseCase,
	upsertScreenUC *usecases.UpsertScreenTimeSettingUseCase,
	getScreenUC *usecases.GetScreenTimeSettingUseCase,
	upsertShiftUC *usecases.UpsertShiftSettingUseCase,
	getShiftUC *usecases.GetShiftSettingUseCase,
	logger logger.Interface,
) *SettingHandler {
	return &SettingHandler{
		upsertActivityUC: upsertActivityUC,
		getActivityUC:    getActivityUC,
		upsertBreakUC:    upsertBreakUC,
		getBreakUC:       getBreakUC,
		upsertNotifUC:    upsertNotifUC,
		getNotifUC:       getNotifUC,
		upsertRotaUC:     upsertRotaUC,
		getRotaUC:        getRotaUC,
		upsertScreenUC:   upsertScreenUC,
		getScreenUC:      getScreenUC,
		upsertShiftUC:    upsertShiftUC,
		getShiftUC:       getShiftUC,
		logger:           logger,
	}
}

type ActivityTrackingSettingRequest struct {
	MonitoringEnabled         bool   `json:"monitoringEnabled"`
	ScreenshotFrequency       string `json:"screenshotFrequency" binding:"max=20"`
	ScreenshotIntervalMinutes int    `json:"screenshotIntervalMinutes" binding:"min=0"`
	ManagerDeleteScreenshots  bool   `json:"managerDeleteScreenshots"`
	TrackedEmployeeIDs        []uint `json:"trackedEmployeeIds"`
}

type ActivityTrackingSettingResponse struct {
	MonitoringEnabled         bool   `json:"monitoringEnabled"`
	ScreenshotFrequency       string `json:"screenshotFrequency"`
	ScreenshotIntervalMinutes int    `json:"screenshotIntervalMinutes"`
	ManagerDeleteScreenshots  bool   `json:"managerDeleteScreenshots"`
	TrackedEmployeeIDs        []uint `json:"trackedEmployeeIds"`
	UpdatedAt                 int64  `json:"updatedAt"`
}

func activityTrackingResponse(s *setting.ActivityTrackingSetting) ActivityTrackingSettingResponse {
	return ActivityTrackingSettingResponse{
		MonitoringEnabled:         s.MonitoringEnabled(),
		ScreenshotFrequency:       string(s.ScreenshotFrequency()),
		ScreenshotIntervalMinutes: s.ScreenshotIntervalMinutes(),
		ManagerDeleteScreenshots:  s.ManagerDeleteScreenshots(),
		TrackedEmployeeIDs:        s.TrackedEmployeeIDs(),
		UpdatedAt:                 s.UpdatedAt().UnixMilli(),
	}
}

func (h *SettingHandler) GetActivityTracking(c *gin.Context) {
	s, err := h.getActivityUC.Execute(c.Request.Context(), utils.CompanyID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", activityTrackingResponse(s))
}

func (h *SettingHandler) UpsertActivityTracking(c *gin.Context) {
	var req ActivityTrackingSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for activity tracking setting", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := h.upsertActivityUC.Execute(c.Request.Context(), usecases.UpsertActivityTrackingSettingCommand{
		CompanyID:                 utils.CompanyID(c),
		MonitoringEnabled:         req.MonitoringEnabled,
		ScreenshotFrequency:       req.ScreenshotFrequency,
		ScreenshotIntervalMinutes: req.ScreenshotIntervalMinutes,
		ManagerDeleteScreenshots:  req.ManagerDeleteScreenshots,
		TrackedEmployeeIDs:        req.TrackedEmployeeIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "activity tracking settings saved", activityTrackingResponse(s))
}

type BreakRuleRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	DurationMinutes int    `json:"durationMinutes" binding:"min=1"`
	Active          bool   `json:"active"`
}

type BreakComplianceSettingRequest struct {
	Enabled  bool               `json:"enabled"`
	Grouping string             `json:"grouping" binding:"max=20"`
	Breaks   []BreakRuleRequest `json:"breaks" binding:"dive"`
}

type BreakRuleResponse struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	Active          bool   `json:"active"`
}

type BreakComplianceSettingResponse struct {
	Enabled   bool                `json:"enabled"`
	Grouping  string              `json:"grouping"`
	Breaks    []BreakRuleResponse `json:"breaks"`
	UpdatedAt int64               `json:"updatedAt"`
}

func breakComplianceResponse(s *setting.BreakComplianceSetting) BreakComplianceSettingResponse {
	breaks := make([]BreakRuleResponse, 0, len(s.Breaks()))
	for _, b := range s.Breaks() {
		breaks = append(breaks, BreakRuleResponse{
			Name:            b.Name(),
			DurationMinutes: b.DurationMinutes(),
			Active:          b.Active(),
		})
	}
	return BreakComplianceSettingResponse{
		Enabled:   s.Enabled(),
		Grouping:  string(s.Grouping()),
		Breaks:    breaks,
		UpdatedAt: s.UpdatedAt().UnixMilli(),
	}
}

func (h *SettingHandler) GetBreakCompliance(c *gin.Context) {
	s, err := h.getBreakUC.Execute(c.Request.Context(), utils.CompanyID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", breakComplianceResponse(s))
}

func (h *SettingHandler) UpsertBreakCompliance(c *gin.Context) {
	var req BreakComplianceSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	breaks := make([]usecases.BreakRuleInput, 0, len(req.Breaks))
	for _, b := range req.Breaks {
		breaks = append(breaks, usecases.BreakRuleInput{
			Name:            b.Name,
			DurationMinutes: b.DurationMinutes,
			Active:          b.Active,
		})
	}

	s, err := h.upsertBreakUC.Execute(c.Request.Context(), usecases.UpsertBreakComplianceSettingCommand{
		CompanyID: utils.CompanyID(c),
		Enabled:   req.Enabled,
		Grouping:  req.Grouping,
		Breaks:    breaks,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "break compliance settings saved", breakComplianceResponse(s))
}

type NotificationSettingRequest struct {
	RotaAlerts          bool   `json:"rotaAlerts"`
	TimesheetAlerts     bool   `json:"timesheetAlerts"`
	LeaveAlerts         bool   `json:"leaveAlerts"`
	Celebrations        bool   `json:"celebrations"`
	NewsUpdates         bool   `json:"newsUpdates"`
	EmailEnabled        bool   `json:"emailEnabled"`
	PushEnabled         bool   `json:"pushEnabled"`
	InAppEnabled        bool   `json:"inAppEnabled"`
	RecipientJobRoleIDs []uint `json:"recipientJobRoleIds"`
}

type NotificationSettingResponse struct {
	RotaAlerts          bool   `json:"rotaAlerts"`
	TimesheetAlerts     bool   `json:"timesheetAlerts"`
	LeaveAlerts         bool   `json:"leaveAlerts"`
	Celebrations        bool   `json:"celebrations"`
	NewsUpdates         bool   `json:"newsUpdates"`
	EmailEnabled        bool   `json:"emailEnabled"`
	PushEnabled         bool   `json:"pushEnabled"`
	InAppEnabled        bool   `json:"inAppEnabled"`
	RecipientJobRoleIDs []uint `json:"recipientJobRoleIds"`
	UpdatedAt           int64  `json:"updatedAt"`
}

func notificationResponse(s *setting.NotificationSetting) NotificationSettingResponse {
	return NotificationSettingResponse{
		RotaAlerts:          s.RotaAlerts(),
		TimesheetAlerts:     s.TimesheetAlerts(),
		LeaveAlerts:         s.LeaveAlerts(),
		Celebrations:        s.Celebrations(),
		NewsUpdates:         s.NewsUpdates(),
		EmailEnabled:        s.EmailEnabled(),
		PushEnabled:         s.PushEnabled(),
		InAppEnabled:        s.InAppEnabled(),
		RecipientJobRoleIDs: s.RecipientJobRoleIDs(),
		UpdatedAt:           s.UpdatedAt().UnixMilli(),
	}
}

func (h *SettingHandler) GetNotification(c *gin.Context) {
	s, err := h.getNotifUC.Execute(c.Request.Context(), utils.CompanyID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", notificationResponse(s))
}

func (h *SettingHandler) UpsertNotification(c *gin.Context) {
	var req NotificationSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := h.upsertNotifUC.Execute(c.Request.Context(), usecases.UpsertNotificationSettingCommand{
		CompanyID:           utils.CompanyID(c),
		RotaAlerts:          req.RotaAlerts,
		TimesheetAlerts:     req.TimesheetAlerts,
		LeaveAlerts:         req.LeaveAlerts,
		Celebrations:        req.Celebrations,
		NewsUpdates:         req.NewsUpdates,
		EmailEnabled:        req.EmailEnabled,
		PushEnabled:         req.PushEnabled,
		InAppEnabled:        req.InAppEnabled,
		RecipientJobRoleIDs: req.RecipientJobRoleIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "notification settings saved", notificationResponse(s))
}

type RotaRuleSettingRequest struct {
	AllowMemberSwaps       bool `json:"allowMemberSwaps"`
	MinShiftHours          int  `json:"minShiftHours" binding:"min=0"`
	MaxShiftHours          int  `json:"maxShiftHours" binding:"min=0"`
	MinRestHoursBetween    int  `json:"minRestHoursBetween" binding:"min=0"`
	MaxConsecutiveWorkdays int  `json:"maxConsecutiveWorkdays" binding:"min=0"`
	MaxWeeklyHours         int  `json:"maxWeeklyHours" binding:"min=0"`
	MinWeeklyHours         int  `json:"minWeeklyHours" binding:"min=0"`
}

type RotaRuleSettingResponse struct {
	AllowMemberSwaps       bool  `json:"allowMemberSwaps"`
	MinShiftHours          int   `json:"minShiftHours"`
	MaxShiftHours          int   `json:"maxShiftHours"`
	MinRestHoursBetween    int   `json:"minRestHoursBetween"`
	MaxConsecutiveWorkdays int   `json:"maxConsecutiveWorkdays"`
	MaxWeeklyHours         int   `json:"maxWeeklyHours"`
	MinWeeklyHours         int   `json:"minWeeklyHours"`
	UpdatedAt              int64 `json:"updatedAt"`
}

func rotaRuleResponse(s *setting.RotaRuleSetting) RotaRuleSettingResponse {
	return RotaRuleSettingResponse{
		AllowMemberSwaps:       s.AllowMemberSwaps(),
		MinShiftHours:          s.MinShiftHours(),
		MaxShiftHours:          s.MaxShiftHours(),
		MinRestHoursBetween:    s.MinRestHoursBetween(),
		MaxConsecutiveWorkdays: s.MaxConsecutiveWorkdays(),
		MaxWeeklyHours:         s.MaxWeeklyHours(),
		MinWeeklyHours:         s.MinWeeklyHours(),
		UpdatedAt:              s.UpdatedAt().UnixMilli(),
	}
}

func (h *SettingHandler) GetRotaRules(c *gin.Context) {
	s, err := h.getRotaUC.Execute(c.Request.Context(), utils.CompanyID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", rotaRuleResponse(s))
}

func (h *SettingHandler) UpsertRotaRules(c *gin.Context) {
	var req RotaRuleSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := h.upsertRotaUC.Execute(c.Request.Context(), usecases.UpsertRotaRuleSettingCommand{
		CompanyID:              utils.CompanyID(c),
		AllowMemberSwaps:       req.AllowMemberSwaps,
		MinShiftHours:          req.MinShiftHours,
		MaxShiftHours:          req.MaxShiftHours,
		MinRestHoursBetween:    req.MinRestHoursBetween,
		MaxConsecutiveWorkdays: req.MaxConsecutiveWorkdays,
		MaxWeeklyHours:         req.MaxWeeklyHours,
		MinWeeklyHours:         req.MinWeeklyHours,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "rota rule settings saved", rotaRuleResponse(s))
}

type AppClassificationRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Category string `json:"category" binding:"max=100"`
	URL      string `json:"url" binding:"max=500"`
	Kind     string `json:"kind" binding:"max=20"`
}

type ScreenTimeSettingRequest struct {
	EnableTimeTracking  bool                       `json:"enableTimeTracking"`
	ProductivityEnabled bool                       `json:"productivityEnabled"`
	EnableOvertime      bool                       `json:"enableOvertime"`
	BaseHourlyRate      float64                    `json:"baseHourlyRate" binding:"min=0"`
	Currency            string                     `json:"currency" binding:"max=3"`
	StandardDailyHours  int                        `json:"standardDailyHours" binding:"min=0,max=24"`
	StandardWeeklyHours int                        `json:"standardWeeklyHours" binding:"min=0,max=168"`
	Apps                []AppClassificationRequest `json:"apps" binding:"dive"`
}

type AppClassificationResponse struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	URL      string `json:"url,omitempty"`
	Kind     string `json:"kind"`
}

type ScreenTimeSettingResponse struct {
	EnableTimeTracking  bool                        `json:"enableTimeTracking"`
	ProductivityEnabled bool                        `json:"productivityEnabled"`
	EnableOvertime      bool                        `json:"enableOvertime"`
	BaseHourlyRate      float64                     `json:"baseHourlyRate"`
	Currency            string                      `json:"currency"`
	StandardDailyHours  int                         `json:"standardDailyHours"`
	StandardWeeklyHours int                         `json:"standardWeeklyHours"`
	Apps                []AppClassificationResponse `json:"apps"`
	UpdatedAt           int64                       `json:"updatedAt"`
}

func screenTimeResponse(s *setting.ScreenTimeSetting) ScreenTimeSettingResponse {
	apps := make([]AppClassificationResponse, 0, len(s.Apps()))
	for _, a := range s.Apps() {
		apps = append(apps, AppClassificationResponse{
			Name:     a.Name(),
			Category: a.Category(),
			URL:      a.URL(),
			Kind:     string(a.Kind()),
		})
	}
	return ScreenTimeSettingResponse{
		EnableTimeTracking:  s.EnableTimeTracking(),
		ProductivityEnabled: s.ProductivityEnabled(),
		EnableOvertime:      s.EnableOvertime(),
		BaseHourlyRate:      s.BaseHourlyRate(),
		Currency:            s.Currency(),
		StandardDailyHours:  s.StandardDailyHours(),
		StandardWeeklyHours: s.StandardWeeklyHours(),
		Apps:                apps,
		UpdatedAt:           s.UpdatedAt().UnixMilli(),
	}
}

func (h *SettingHandler) GetScreenTime(c *gin.Context) {
	s, err := h.getScreenUC.Execute(c.Request.Context(), utils.CompanyID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", screenTimeResponse(s))
}

func (h *SettingHandler) UpsertScreenTime(c *gin.Context) {
	var req ScreenTimeSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	apps := make([]usecases.AppClassificationInput, 0, len(req.Apps))
	for _, a := range req.Apps {
		apps = append(apps, usecases.AppClassificationInput{
			Name:     a.Name,
			Category: a.Category,
			URL:      a.URL,
			Kind:     a.Kind,
		})
	}

	s, err := h.upsertScreenUC.Execute(c.Request.Context(), usecases.UpsertScreenTimeSettingCommand{
		CompanyID:           utils.CompanyID(c),
		EnableTimeTracking:  req.EnableTimeTracking,
		ProductivityEnabled: req.ProductivityEnabled,
		EnableOvertime:      req.EnableOvertime,
		BaseHourlyRate:      req.BaseHourlyRate,
		Currency:            req.Currency,
		StandardDailyHours:  req.StandardDailyHours,
		StandardWeeklyHours: req.StandardWeeklyHours,
		Apps:                apps,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "screen time settings saved", screenTimeResponse(s))
}

type ShiftSettingRequest struct {
	EnableShiftTrading   bool `json:"enableShiftTrading"`
	TradesAcrossBranches bool `json:"tradesAcrossBranches"`
	TradesAcrossRoles    bool `json:"tradesAcrossRoles"`
	MinTradeNoticeHours  int  `json:"minTradeNoticeHours" binding:"min=0"`
	EnableOpenShifts     bool `json:"enableOpenShifts"`
	AllowAdminOverride   bool `json:"allowAdminOverride"`
}

type ShiftSettingResponse struct {
	EnableShiftTrading   bool  `json:"enableShiftTrading"`
	TradesAcrossBranches bool  `json:"tradesAcrossBranches"`
	TradesAcrossRoles    bool  `json:"tradesAcrossRoles"`
	MinTradeNoticeHours  int   `json:"minTradeNoticeHours"`
	EnableOpenShifts     bool  `json:"enableOpenShifts"`
	AllowAdminOverride   bool  `json:"allowAdminOverride"`
	UpdatedAt            int64 `json:"updatedAt"`
}

func shiftResponse(s *setting.ShiftSetting) ShiftSettingResponse {
	return ShiftSettingResponse{
		EnableShiftTrading:   s.EnableShiftTrading(),
		TradesAcrossBranches: s.TradesAcrossBranches(),
		TradesAcrossRoles:    s.TradesAcrossRoles(),
		MinTradeNoticeHours:  s.MinTradeNoticeHours(),
		EnableOpenShifts:     s.EnableOpenShifts(),
		AllowAdminOverride:   s.AllowAdminOverride(),
		UpdatedAt:            s.UpdatedAt().UnixMilli(),
	}
}

func (h *SettingHandler) GetShift(c *gin.Context) {
	s, err := h.getShiftUC.Execute(c.Request.Context(), utils.CompanyID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", shiftResponse(s))
}

func (h *SettingHandler) UpsertShift(c *gin.Context) {
	var req ShiftSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := h.upsertShiftUC.Execute(c.Request.Context(), usecases.UpsertShiftSettingCommand{
		CompanyID:            utils.CompanyID(c),
		EnableShiftTrading:   req.EnableShiftTrading,
		TradesAcrossBranches: req.TradesAcrossBranches,
		TradesAcrossRoles:    req.TradesAcrossRoles,
		MinTradeNoticeHours:  req.MinTradeNoticeHours,
		EnableOpenShifts:     req.EnableOpenShifts,
		AllowAdminOverride:   req.AllowAdminOverride,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "shift settings saved", shiftResponse(s))
}
