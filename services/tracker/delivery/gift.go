package delivery

import (
	"context"
	"errors"
	"gifttracker/domain"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type giftHandler struct {
	uc domain.GiftUseCase
}

func NewGiftHandler(api fiber.Router, useCase domain.GiftUseCase) {
	handler := &giftHandler{
		uc: useCase,
	}

	route := api.Group("/gifts")
	route.Post("/", handler.CreateGift)
	route.Get("/", handler.GetAllGifts)
	route.Get("/kid/:id", handler.GetGiftsByKid)
	route.Put("/:id", handler.UpdateGift)
	route.Delete("/:id", handler.DeleteGift)
}

func (gh *giftHandler) CreateGift(c *fiber.Ctx) error {
	var req domain.GiftCreate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid gift data",
		})
	}

	ctx := context.Background()
	gift, err := gh.uc.CreateGift(ctx, &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Internal Server Error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(gift)
}

func (gh *giftHandler) GetAllGifts(c *fiber.Ctx) error {
	ctx := context.Background()
	gifts, err := gh.uc.GetAllGifts(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Internal Server Error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(gifts)
}

func (gh *giftHandler) GetGiftsByKid(c *fiber.Ctx) error {
	ctx := context.Background()
	gifts, err := gh.uc.GetGiftsByKid(ctx, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Internal Server Error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(gifts)
}

func (gh *giftHandler) UpdateGift(c *fiber.Ctx) error {
	var req domain.GiftUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	ctx := context.Background()
	gift, err := gh.uc.UpdateGift(ctx, c.Params("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyUpdate):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "No data to update",
			})
		case errors.Is(err, domain.ErrGiftNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Gift not found",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": "Internal Server Error",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(gift)
}

func (gh *giftHandler) DeleteGift(c *fiber.Ctx) error {
	ctx := context.Background()
	if err := gh.uc.DeleteGift(ctx, c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrGiftNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Gift not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Internal Server Error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Gift deleted successfully",
	})
}
