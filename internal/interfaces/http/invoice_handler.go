package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nomadeprod/backoffice-api/internal/application/billing"
	"github.com/nomadeprod/backoffice-api/internal/application/dto"
)

// InvoiceHandler gère les requêtes HTTP de facturation (protégé).
type InvoiceHandler struct {
	uc *billing.InvoiceUseCase
}

// NewInvoiceHandler construit le handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Create crée une facture (statut forcé à draft, numéro attribué côté serveur).
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("corps de requête invalide"))
	}
	invoice, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage(invoice, "facture créée avec succès"))
}

// List liste toutes les factures avec leurs lignes, les plus récentes d'abord.
// GET /api/invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	invoices, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKCount(invoices, len(invoices)))
}

// GetByID retourne le détail complet d'une facture.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	invoice, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(invoice))
}

// Update modifie les champs fournis d'une facture ; si les lignes sont
// fournies, elles remplacent l'existant en bloc et les totaux sont recalculés.
// PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("corps de requête invalide"))
	}
	invoice, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage(invoice, "facture mise à jour avec succès"))
}

// Delete supprime une facture et ses lignes. Une facture payée est refusée.
// DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.APIResponse{Success: true, Message: "facture supprimée avec succès"})
}

// Stats agrège les compteurs et montants par statut.
// GET /api/invoices/stats
func (h *InvoiceHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(stats))
}

// SendEmail envoie la facture en PDF par email au destinataire fourni.
// POST /api/invoices/:id/send-email
func (h *InvoiceHandler) SendEmail(c *fiber.Ctx) error {
	var in dto.SendInvoiceEmailRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("corps de requête invalide"))
	}
	if err := h.uc.SendEmail(c.Context(), c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.APIResponse{Success: true, Message: "facture envoyée par email avec succès"})
}

// AssignPayment rattache un paiement d'intermittent à la facture.
// POST /api/invoices/:id/payments
func (h *InvoiceHandler) AssignPayment(c *fiber.Ctx) error {
	var in dto.AssignPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("corps de requête invalide"))
	}
	payment, err := h.uc.AssignPayment(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage(payment, "paiement rattaché avec succès"))
}

// DownloadPDF rend la facture en PDF.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.RenderPDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
