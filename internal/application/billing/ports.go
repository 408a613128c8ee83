package billing

import (
	"context"

	"github.com/nomadeprod/backoffice-api/internal/domain/entity"
	"github.com/nomadeprod/backoffice-api/internal/domain/repository"
)

// TxRunner exécute fn dans une transaction avec un repository de factures
// lié à cette transaction. Toute erreur de fn déclenche le rollback complet.
type TxRunner interface {
	RunInvoice(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// PDFGenerator rend la représentation imprimable d'une facture.
type PDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, items []*entity.InvoiceItem, profile *entity.Settings) ([]byte, error)
}

// OutboundMessage email sortant avec pièce jointe.
type OutboundMessage struct {
	To             string
	ToName         string
	Subject        string
	Body           string
	Attachment     []byte
	AttachmentName string
}

// Mailer transport mail sortant. Configured() faux = envoi refusé
// immédiatement (erreur service indisponible), aucune tentative de livraison.
type Mailer interface {
	Configured() bool
	Send(ctx context.Context, msg OutboundMessage) error
}
