package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nomadeprod/backoffice-api/internal/application/dto"
	"github.com/nomadeprod/backoffice-api/internal/application/usecase"
)

// SettingsHandler gère le profil société (ligne unique, protégé).
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construit le handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get retourne le profil société.
// GET /api/settings
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.uc.Get()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(settings))
}

// Save crée ou remplace le profil société.
// PUT /api/settings
func (h *SettingsHandler) Save(c *fiber.Ctx) error {
	var in dto.SettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("corps de requête invalide"))
	}
	settings, err := h.uc.Save(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage(settings, "paramètres enregistrés avec succès"))
}
