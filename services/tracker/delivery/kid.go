package delivery

import (
	"context"
	"errors"
	"gifttracker/domain"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type kidHandler struct {
	uc domain.KidUseCase
}

func NewKidHandler(api fiber.Router, useCase domain.KidUseCase) {
	handler := &kidHandler{
		uc: useCase,
	}

	route := api.Group("/kids")
	route.Post("/", handler.CreateKid)
	route.Get("/", handler.GetAllKids)
	route.Get("/:id", handler.GetKidByID)
	route.Put("/:id", handler.UpdateKid)
	route.Delete("/:id", handler.DeleteKid)
}

func (kh *kidHandler) CreateKid(c *fiber.Ctx) error {
	var req domain.KidCreate
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
			"message": "Invalid kid data",
		})
	}

	ctx := context.Background()
	kid, err := kh.uc.CreateKid(ctx, &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Internal Server Error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(kid)
}

func (kh *kidHandler) GetAllKids(c *fiber.Ctx) error {
	ctx := context.Background()
	kids, err := kh.uc.GetAllKids(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Internal Server Error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(kids)
}

func (kh *kidHandler) GetKidByID(c *fiber.Ctx) error {
	ctx := context.Background()
	kid, err := kh.uc.GetKidByID(ctx, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrKidNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Kid not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Internal Server Error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(kid)
}

func (kh *kidHandler) UpdateKid(c *fiber.Ctx) error {
	var req domain.KidUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	ctx := context.Background()
	kid, err := kh.uc.UpdateKid(ctx, c.Params("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyUpdate):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "No data to update",
			})
		case errors.Is(err, domain.ErrKidNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Kid not found",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": "Internal Server Error",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(kid)
}

func (kh *kidHandler) DeleteKid(c *fiber.Ctx) error {
	ctx := context.Background()
	if err := kh.uc.DeleteKid(ctx, c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrKidNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Kid not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Internal Server Error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Kid deleted successfully",
	})
}
