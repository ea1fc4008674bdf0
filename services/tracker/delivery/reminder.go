package delivery

import (
	"context"
	"gifttracker/domain"

	"github.com/gofiber/fiber/v2"
)

type reminderHandler struct {
	uc domain.ReminderUseCase
}

func NewReminderHandler(api fiber.Router, useCase domain.ReminderUseCase) {
	handler := &reminderHandler{
		uc: useCase,
	}

	api.Get("/reminders", handler.GetReminders)
}

func (rh *reminderHandler) GetReminders(c *fiber.Ctx) error {
	ctx := context.Background()
	reminders, err := rh.uc.GetReminders(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Internal Server Error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(reminders)
}
