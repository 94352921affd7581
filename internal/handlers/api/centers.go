package api

import (
	"github.com/gofiber/fiber/v3"

	"youthhub/internal/config"
)

// CenterHandler serves the youth-center directory loaded from site config.
type CenterHandler struct {
	site *config.SiteConfig
}

// NewCenterHandler creates a new API center handler.
func NewCenterHandler(site *config.SiteConfig) *CenterHandler {
	return &CenterHandler{site: site}
}

// List returns all configured youth centers.
func (h *CenterHandler) List(c fiber.Ctx) error {
	if h.site == nil {
		return jsonSuccess(c, []config.CenterConfig{})
	}
	return jsonSuccess(c, h.site.Centers)
}

// Categories returns the configured spark and club categories.
func (h *CenterHandler) Categories(c fiber.Ctx) error {
	if h.site == nil {
		return jsonSuccess(c, []string{})
	}
	return jsonSuccess(c, h.site.Categories)
}
