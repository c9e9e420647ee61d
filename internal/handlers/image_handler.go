package handlers

import (
	"errors"

	"github.com/civitas-io/denuncias-backend/internal/dto"
	"github.com/civitas-io/denuncias-backend/internal/storage"
	"github.com/gofiber/fiber/v2"
)

// ImageHandler serves stored image bytes regardless of backend.
type ImageHandler struct {
	store storage.Store
}

func NewImageHandler(store storage.Store) *ImageHandler {
	return &ImageHandler{store: store}
}

func (h *ImageHandler) Serve(c *fiber.Ctx) error {
	rc, err := h.store.Open(c.Context(), c.Params("filename"))
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Image not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to read image",
		})
	}

	c.Set("Content-Type", "image/png")
	c.Set("Cache-Control", "public, max-age=86400")
	return c.SendStream(rc)
}
