package billing

import (
	"context"
	"fmt"

	"github.com/nomadeprod/backoffice-api/internal/application/dto"
	"github.com/nomadeprod/backoffice-api/internal/domain"
	domainbilling "github.com/nomadeprod/backoffice-api/internal/domain/billing"
	"github.com/nomadeprod/backoffice-api/internal/domain/entity"
)

// SendEmail génère le PDF de la facture et le remet au transport mail en
// pièce jointe. N'altère pas l'état de la facture hormis updated_at.
// Transport non configuré = échec immédiat (service indisponible).
func (uc *InvoiceUseCase) SendEmail(ctx context.Context, id string, in dto.SendInvoiceEmailRequest) error {
	if in.Email == "" {
		return domain.ErrInvalidInput
	}
	if !uc.mailer.Configured() {
		return domain.ErrMailNotConfigured
	}

	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrInvoiceNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return err
	}
	// Profil société absent = rendu avec les valeurs par défaut du PDF.
	profile, err := uc.settingsRepo.Get()
	if err != nil {
		return err
	}

	pdfBytes, err := uc.pdf.GenerateInvoicePDF(ctx, inv, items, profile)
	if err != nil {
		return fmt.Errorf("générer le PDF de la facture: %w", err)
	}

	clientName := in.ClientName
	if clientName == "" {
		clientName = inv.Client
	}
	msg := OutboundMessage{
		To:      in.Email,
		ToName:  clientName,
		Subject: fmt.Sprintf("Facture %s", inv.Number),
		Body: fmt.Sprintf(
			"Bonjour %s,\n\nVeuillez trouver ci-joint la facture %s d'un montant de %s TTC.\n\nCordialement",
			clientName, inv.Number, domainbilling.FormatAmountMAD(inv.TotalAmount),
		),
		Attachment:     pdfBytes,
		AttachmentName: inv.Number + ".pdf",
	}
	if err := uc.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("envoyer la facture par email: %w", err)
	}

	// Trace de l'envoi : seul updated_at bouge (patch vide, COALESCE partout).
	return uc.invoiceRepo.Update(id, &entity.InvoicePatch{})
}

// RenderPDF rend la facture en PDF pour téléchargement direct. Retourne les
// octets et le nom de fichier suggéré.
func (uc *InvoiceUseCase) RenderPDF(ctx context.Context, id string) ([]byte, string, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if inv == nil {
		return nil, "", domain.ErrInvoiceNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, "", err
	}
	profile, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.pdf.GenerateInvoicePDF(ctx, inv, items, profile)
	if err != nil {
		return nil, "", fmt.Errorf("générer le PDF de la facture: %w", err)
	}
	return pdfBytes, inv.Number + ".pdf", nil
}
