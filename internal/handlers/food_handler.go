package handlers

import (
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type FoodHandler struct {
	service *services.FoodService
}

func NewFoodHandler(service *services.FoodService) *FoodHandler {
	return &FoodHandler{service: service}
}

func (h *FoodHandler) List(c *fiber.Ctx) error {
	foods, err := h.service.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewFoodListResponse(foods))
}

func (h *FoodHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	food, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewFoodResponse(food))
}

func (h *FoodHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateFoodRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	food, err := h.service.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewFoodResponse(food))
}

func (h *FoodHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateFoodRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	food, err := h.service.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewFoodResponse(food))
}

func (h *FoodHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Food deleted"})
}

func (h *FoodHandler) ToggleOpen(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	food, err := h.service.ToggleOpen(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewFoodResponse(food))
}
