package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"crewhub/internal/domain/onboarding"
	"crewhub/internal/domain/task"
	vo "crewhub/internal/domain/ticket/valueobjects"
)

// Custom binding rules for domain enums, so malformed values are
// rejected before a command is built.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("ticketpriority", func(fl validator.FieldLevel) bool {
		return vo.Priority(fl.Field().String()).IsValid()
	})
	v.RegisterValidation("taskpriority", func(fl validator.FieldLevel) bool {
		return task.TaskPriority(fl.Field().String()).IsValid()
	})
	v.RegisterValidation("taskrecurrence", func(fl validator.FieldLevel) bool {
		return task.Recurrence(fl.Field().String()).IsValid()
	})
	v.RegisterValidation("onboardingstep", func(fl validator.FieldLevel) bool {
		return onboarding.StepType(fl.Field().String()).IsValid()
	})
}
