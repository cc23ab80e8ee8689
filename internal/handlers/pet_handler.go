package handlers

import (
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PetHandler struct {
	service *services.PetService
}

func NewPetHandler(service *services.PetService) *PetHandler {
	return &PetHandler{service: service}
}

// List and Get embed the referenced food unless ?resolve=false.
func (h *PetHandler) List(c *fiber.Ctx) error {
	pets, err := h.service.List(c.UserContext(), c.QueryBool("resolve", true))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewPetListResponse(pets))
}

func (h *PetHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	pet, err := h.service.Get(c.UserContext(), id, c.QueryBool("resolve", true))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewPetResponse(pet))
}

func (h *PetHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePetRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	pet, err := h.service.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewPetResponse(pet))
}

func (h *PetHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdatePetRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	pet, err := h.service.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewPetResponse(pet))
}

func (h *PetHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Pet deleted"})
}
