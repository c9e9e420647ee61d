package handlers

import (
	"errors"
	"strconv"

	"github.com/civitas-io/denuncias-backend/internal/dto"
	"github.com/civitas-io/denuncias-backend/internal/middleware"
	"github.com/civitas-io/denuncias-backend/internal/repository"
	"github.com/civitas-io/denuncias-backend/internal/services"
	"github.com/civitas-io/denuncias-backend/internal/storage"
	"github.com/gofiber/fiber/v2"
)

type ComplaintHandler struct {
	complaintService *services.ComplaintService
}

func NewComplaintHandler(complaintService *services.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService}
}

func (h *ComplaintHandler) Create(c *fiber.Ctx) error {
	reporterEmail, err := middleware.ReporterEmail(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.complaintService.Submit(c.Context(), reporterEmail, &req)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
				Error: true, Message: vErr.Error(), Fields: vErr.Fields,
			})
		}
		if errors.Is(err, storage.ErrImageDecode) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, repository.ErrDescriptionRequired) || errors.Is(err, repository.ErrImageRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save complaint",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *ComplaintHandler) List(c *fiber.Ctx) error {
	if _, err := middleware.ReporterEmail(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	complaints, err := h.complaintService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch complaints",
		})
	}

	return c.JSON(complaints)
}

func (h *ComplaintHandler) GetDetail(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid complaint ID",
		})
	}

	resp, err := h.complaintService.GetDetail(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrComplaintNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch complaint",
		})
	}

	return c.JSON(resp)
}
