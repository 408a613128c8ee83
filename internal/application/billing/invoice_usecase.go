package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nomadeprod/backoffice-api/internal/application/dto"
	"github.com/nomadeprod/backoffice-api/internal/domain"
	domainbilling "github.com/nomadeprod/backoffice-api/internal/domain/billing"
	"github.com/nomadeprod/backoffice-api/internal/domain/entity"
	"github.com/nomadeprod/backoffice-api/internal/domain/repository"
)

// Format de date des payloads API.
const dateLayout = "2006-01-02"

// InvoiceUseCase porte le cycle de vie complet des factures :
// création (numérotation + totaux + écriture transactionnelle), mise à jour
// partielle avec remplacement de lignes, garde de suppression, lectures,
// statistiques, envoi par email et affectation de paiements employés.
type InvoiceUseCase struct {
	txRunner     TxRunner
	invoiceRepo  repository.InvoiceRepository // lié au pool, pour les lectures
	employeeRepo repository.EmployeeRepository
	settingsRepo repository.SettingsRepository
	pdf          PDFGenerator
	mailer       Mailer
	prefix       string
}

// NewInvoiceUseCase construit le cas d'usage facturation.
func NewInvoiceUseCase(
	txRunner TxRunner,
	invoiceRepo repository.InvoiceRepository,
	employeeRepo repository.EmployeeRepository,
	settingsRepo repository.SettingsRepository,
	pdf PDFGenerator,
	mailer Mailer,
	prefix string,
) *InvoiceUseCase {
	if prefix == "" {
		prefix = domainbilling.DefaultPrefix
	}
	return &InvoiceUseCase{
		txRunner:     txRunner,
		invoiceRepo:  invoiceRepo,
		employeeRepo: employeeRepo,
		settingsRepo: settingsRepo,
		pdf:          pdf,
		mailer:       mailer,
		prefix:       prefix,
	}
}

// buildItems valide les lignes de la requête et retourne les entités avec
// leur total recalculé. Un total fourni qui ne correspond pas à
// unitPrice × quantity (arrondi à 2 décimales) est rejeté.
func buildItems(in []dto.InvoiceItemRequest) ([]*entity.InvoiceItem, domainbilling.Totals, error) {
	if len(in) == 0 {
		return nil, domainbilling.Totals{}, domain.ErrInvalidInput
	}
	items := make([]*entity.InvoiceItem, 0, len(in))
	lines := make([]domainbilling.Line, 0, len(in))
	for _, it := range in {
		if it.Description == "" || it.UnitPrice.IsNegative() || !it.Quantity.IsPositive() {
			return nil, domainbilling.Totals{}, domain.ErrInvalidInput
		}
		line := domainbilling.Line{UnitPrice: it.UnitPrice, Quantity: it.Quantity}
		total := domainbilling.LineTotal(line)
		if !it.Total.IsZero() && !it.Total.Equal(total) {
			return nil, domainbilling.Totals{}, domain.ErrInvalidInput
		}
		lines = append(lines, line)
		items = append(items, &entity.InvoiceItem{
			Description: it.Description,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			Total:       total,
		})
	}
	return items, domainbilling.ComputeTotals(lines), nil
}

// Create crée la facture : totaux, numéro séquentiel de l'année d'émission,
// en-tête forcé en draft et lignes, le tout dans une transaction.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.Client == "" || in.IssueDate == "" || in.DueDate == "" {
		return nil, domain.ErrInvalidInput
	}
	issueDate, err := time.Parse(dateLayout, in.IssueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	dueDate, err := time.Parse(dateLayout, in.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	items, totals, err := buildItems(in.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	inv := &entity.Invoice{
		Client:      in.Client,
		ClientICE:   in.ClientICE,
		Project:     in.Project,
		ProjectID:   in.ProjectID,
		Amount:      totals.Amount,
		TaxAmount:   totals.TaxAmount,
		TotalAmount: totals.TotalAmount,
		IssueDate:   issueDate,
		DueDate:     dueDate,
		Status:      entity.InvoiceStatusDraft, // imposé quel que soit l'appelant
		TeamMembers: in.TeamMembers,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.ProfitMargin != nil {
		inv.ProfitMargin = decimal.NewNullDecimal(*in.ProfitMargin)
	}
	if in.EstimatedCosts != nil {
		inv.EstimatedCosts = decimal.NewNullDecimal(*in.EstimatedCosts)
	}

	// Numérotation et écritures dans la même transaction : le verrou du
	// compteur annuel garantit l'unicité sous créations concurrentes.
	err = uc.txRunner.RunInvoice(ctx, func(repo repository.InvoiceRepository) error {
		year := issueDate.Year()
		seq, err := repo.NextSequence(year)
		if err != nil {
			return err
		}
		inv.Number = domainbilling.FormatNumber(uc.prefix, year, seq)
		if err := repo.Create(inv); err != nil {
			return err
		}
		for _, item := range items {
			item.InvoiceID = inv.ID
			if err := repo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Aucun employé affecté à la création.
	return toInvoiceResponse(inv, items, nil), nil
}

// Update applique une mise à jour partielle. Lignes fournies = remplacement
// en bloc avec recalcul des totaux ; lignes absentes = totaux conservés.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	patch := &entity.InvoicePatch{
		Client:         in.Client,
		ClientICE:      in.ClientICE,
		Project:        in.Project,
		ProjectID:      in.ProjectID,
		ProfitMargin:   in.ProfitMargin,
		EstimatedCosts: in.EstimatedCosts,
		TeamMembers:    in.TeamMembers,
		Notes:          in.Notes,
	}
	if in.IssueDate != nil {
		d, err := time.Parse(dateLayout, *in.IssueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		patch.IssueDate = &d
	}
	if in.DueDate != nil {
		d, err := time.Parse(dateLayout, *in.DueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		patch.DueDate = &d
	}
	if in.Status != nil {
		if !entity.ValidInvoiceStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		patch.Status = in.Status
	}

	var newItems []*entity.InvoiceItem
	if in.Items != nil {
		items, totals, err := buildItems(*in.Items)
		if err != nil {
			return nil, err
		}
		newItems = items
		patch.Amount = &totals.Amount
		patch.TaxAmount = &totals.TaxAmount
		patch.TotalAmount = &totals.TotalAmount
	}

	err := uc.txRunner.RunInvoice(ctx, func(repo repository.InvoiceRepository) error {
		existing, err := repo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrInvoiceNotFound
		}
		if newItems != nil {
			if err := repo.DeleteItemsByInvoiceID(id); err != nil {
				return err
			}
			for _, item := range newItems {
				item.InvoiceID = id
				if err := repo.CreateItem(item); err != nil {
					return err
				}
			}
		}
		return repo.Update(id, patch)
	})
	if err != nil {
		return nil, err
	}

	return uc.Get(ctx, id)
}

// Delete supprime une facture. Une facture payée n'est jamais supprimée :
// la garde lit le statut sous verrou dans la transaction de suppression.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.RunInvoice(ctx, func(repo repository.InvoiceRepository) error {
		inv, err := repo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrInvoiceNotFound
		}
		if inv.Status == entity.InvoiceStatusPaid {
			return domain.ErrInvoicePaid
		}
		// Lignes et paiements suivent par cascade.
		return repo.Delete(id)
	})
}

// Get retourne une facture complète (en-tête, lignes, paiements affectés).
func (uc *InvoiceUseCase) Get(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	payments, err := uc.invoiceRepo.GetPaymentsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, items, payments), nil
}

// List retourne toutes les factures avec lignes et paiements affectés.
func (uc *InvoiceUseCase) List(ctx context.Context) ([]*dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		items, err := uc.invoiceRepo.GetItemsByInvoiceID(inv.ID)
		if err != nil {
			return nil, err
		}
		payments, err := uc.invoiceRepo.GetPaymentsByInvoiceID(inv.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, toInvoiceResponse(inv, items, payments))
	}
	return out, nil
}

// Stats retourne les agrégats par statut.
func (uc *InvoiceUseCase) Stats(ctx context.Context) (*dto.InvoiceStatsResponse, error) {
	stats, err := uc.invoiceRepo.Stats()
	if err != nil {
		return nil, err
	}
	resp := &dto.InvoiceStatsResponse{
		TotalCount:  stats.TotalCount,
		TotalAmount: stats.TotalAmount,
		TotalTax:    stats.TotalTax,
		TotalBilled: stats.TotalBilled,
		ByStatus:    make(map[string]dto.InvoiceStatusStats, len(stats.CountByStatus)),
	}
	for status, count := range stats.CountByStatus {
		resp.ByStatus[status] = dto.InvoiceStatusStats{
			Count: count,
			Total: stats.SumByStatus[status],
		}
	}
	return resp, nil
}

// AssignPayment affecte un paiement employé à une facture (statut pending).
// Le flux création/mise à jour de facture ne touche jamais ces lignes.
func (uc *InvoiceUseCase) AssignPayment(ctx context.Context, invoiceID string, in dto.AssignPaymentRequest) (*dto.EmployeePaymentResponse, error) {
	if in.EmployeeID == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	emp, err := uc.employeeRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	payment := &entity.EmployeePayment{
		InvoiceID:    invoiceID,
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Amount:       in.Amount.Round(2),
		Status:       "pending",
		CreatedAt:    time.Now(),
	}
	if err := uc.invoiceRepo.CreatePayment(payment); err != nil {
		return nil, err
	}
	return &dto.EmployeePaymentResponse{
		ID:           payment.ID,
		EmployeeID:   payment.EmployeeID,
		EmployeeName: payment.EmployeeName,
		Amount:       payment.Amount,
		Status:       payment.Status,
	}, nil
}

func toInvoiceResponse(inv *entity.Invoice, items []*entity.InvoiceItem, payments []*entity.EmployeePayment) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:                inv.ID,
		Number:            inv.Number,
		Client:            inv.Client,
		ClientICE:         inv.ClientICE,
		Project:           inv.Project,
		ProjectID:         inv.ProjectID,
		Amount:            inv.Amount,
		TaxAmount:         inv.TaxAmount,
		TotalAmount:       inv.TotalAmount,
		IssueDate:         inv.IssueDate.Format(dateLayout),
		DueDate:           inv.DueDate.Format(dateLayout),
		Status:            inv.Status,
		TeamMembers:       inv.TeamMembers,
		Notes:             inv.Notes,
		Items:             make([]dto.InvoiceItemResponse, 0, len(items)),
		AssignedEmployees: make([]dto.EmployeePaymentResponse, 0, len(payments)),
		CreatedAt:         inv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         inv.UpdatedAt.Format(time.RFC3339),
	}
	if resp.TeamMembers == nil {
		resp.TeamMembers = []string{}
	}
	if inv.ProfitMargin.Valid {
		resp.ProfitMargin = &inv.ProfitMargin.Decimal
	}
	if inv.EstimatedCosts.Valid {
		resp.EstimatedCosts = &inv.EstimatedCosts.Decimal
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:          it.ID,
			Description: it.Description,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			Total:       it.Total,
		})
	}
	for _, p := range payments {
		resp.AssignedEmployees = append(resp.AssignedEmployees, dto.EmployeePaymentResponse{
			ID:           p.ID,
			EmployeeID:   p.EmployeeID,
			EmployeeName: p.EmployeeName,
			Amount:       p.Amount,
			Status:       p.Status,
		})
	}
	return resp
}
