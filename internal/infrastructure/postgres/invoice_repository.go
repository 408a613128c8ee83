package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/nomadeprod/backoffice-api/internal/domain"
	"github.com/nomadeprod/backoffice-api/internal/domain/entity"
	"github.com/nomadeprod/backoffice-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implémentation d'InvoiceRepository (utilisable avec pool ou tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construit l'adaptateur. Passer le pool ou une tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `
	id, number, COALESCE(client, ''), COALESCE(client_ice, ''),
	COALESCE(project, ''), COALESCE(project_id, ''),
	amount, tax_amount, total_amount, issue_date, due_date, status,
	profit_margin, estimated_costs, COALESCE(team_members, '{}'),
	COALESCE(notes, ''), created_at, updated_at`

// NextSequence incrémente le compteur annuel et retourne le nouveau suffixe.
// L'upsert verrouille la ligne de l'année : deux créations concurrentes sur la
// même année sont sérialisées par PostgreSQL, la seconde attend le commit de
// la première et obtient le suffixe suivant.
func (r *InvoiceRepo) NextSequence(year int) (int, error) {
	const query = `
		INSERT INTO invoice_counters (year, last_number)
		VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE SET last_number = invoice_counters.last_number + 1
		RETURNING last_number`
	var n int
	if err := r.q.QueryRow(context.Background(), query, year).Scan(&n); err != nil {
		return 0, fmt.Errorf("next invoice sequence: %w", err)
	}
	return n, nil
}

// Create persiste l'en-tête de la facture.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	const query = `
		INSERT INTO invoices (id, number, client, client_ice, project, project_id,
			amount, tax_amount, total_amount, issue_date, due_date, status,
			profit_margin, estimated_costs, team_members, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.Number, invoice.Client, nullIfEmpty(invoice.ClientICE),
		nullIfEmpty(invoice.Project), nullIfEmpty(invoice.ProjectID),
		invoice.Amount, invoice.TaxAmount, invoice.TotalAmount,
		invoice.IssueDate, invoice.DueDate, invoice.Status,
		invoice.ProfitMargin, invoice.EstimatedCosts, invoice.TeamMembers,
		nullIfEmpty(invoice.Notes), invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateNumber
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItem persiste une ligne de facture.
func (r *InvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	const query = `
		INSERT INTO invoice_items (id, invoice_id, description, unit_price, quantity, total)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.InvoiceID, item.Description, item.UnitPrice, item.Quantity, item.Total,
	)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// GetByID retourne l'en-tête d'une facture, ou nil si absente.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT` + invoiceColumns + ` FROM invoices WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate lit l'en-tête avec un verrou de ligne (flux update/delete).
func (r *InvoiceRepo) GetForUpdate(id string) (*entity.Invoice, error) {
	query := `SELECT` + invoiceColumns + ` FROM invoices WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

func (r *InvoiceRepo) scanOne(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.Number, &inv.Client, &inv.ClientICE,
		&inv.Project, &inv.ProjectID,
		&inv.Amount, &inv.TaxAmount, &inv.TotalAmount,
		&inv.IssueDate, &inv.DueDate, &inv.Status,
		&inv.ProfitMargin, &inv.EstimatedCosts, &inv.TeamMembers,
		&inv.Notes, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// List retourne toutes les factures, les plus récentes d'abord.
func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	query := `SELECT` + invoiceColumns + ` FROM invoices ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.Number, &inv.Client, &inv.ClientICE,
			&inv.Project, &inv.ProjectID,
			&inv.Amount, &inv.TaxAmount, &inv.TotalAmount,
			&inv.IssueDate, &inv.DueDate, &inv.Status,
			&inv.ProfitMargin, &inv.EstimatedCosts, &inv.TeamMembers,
			&inv.Notes, &inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// GetItemsByInvoiceID retourne toutes les lignes d'une facture.
func (r *InvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	const query = `
		SELECT id, invoice_id, description, unit_price, quantity, total
		FROM invoice_items WHERE invoice_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceItem
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.Description, &it.UnitPrice, &it.Quantity, &it.Total); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// DeleteItemsByInvoiceID supprime toutes les lignes d'une facture
// (remplacement en bloc lors d'une mise à jour du détail).
func (r *InvoiceRepo) DeleteItemsByInvoiceID(invoiceID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoice_items WHERE invoice_id = $1`, invoiceID)
	if err != nil {
		return fmt.Errorf("delete invoice items: %w", err)
	}
	return nil
}

// Update applique une mise à jour partielle : chaque champ NULL du patch
// conserve la valeur existante (COALESCE), les champs fournis écrasent.
func (r *InvoiceRepo) Update(id string, patch *entity.InvoicePatch) error {
	const query = `
		UPDATE invoices
		SET client          = COALESCE($2,  client),
		    client_ice      = COALESCE($3,  client_ice),
		    project         = COALESCE($4,  project),
		    project_id      = COALESCE($5,  project_id),
		    issue_date      = COALESCE($6,  issue_date),
		    due_date        = COALESCE($7,  due_date),
		    status          = COALESCE($8,  status),
		    profit_margin   = COALESCE($9,  profit_margin),
		    estimated_costs = COALESCE($10, estimated_costs),
		    team_members    = COALESCE($11, team_members),
		    notes           = COALESCE($12, notes),
		    amount          = COALESCE($13, amount),
		    tax_amount      = COALESCE($14, tax_amount),
		    total_amount    = COALESCE($15, total_amount),
		    updated_at      = $16
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		id,
		patch.Client, patch.ClientICE, patch.Project, patch.ProjectID,
		patch.IssueDate, patch.DueDate, patch.Status,
		patch.ProfitMargin, patch.EstimatedCosts, patch.TeamMembers, patch.Notes,
		patch.Amount, patch.TaxAmount, patch.TotalAmount,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Delete supprime l'en-tête ; lignes et paiements associés suivent par
// cascade (ON DELETE CASCADE).
func (r *InvoiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// Stats agrège nombre et montants de factures par statut.
func (r *InvoiceRepo) Stats() (*entity.InvoiceStats, error) {
	const query = `
		SELECT status, COUNT(*),
		       COALESCE(SUM(amount), 0), COALESCE(SUM(tax_amount), 0), COALESCE(SUM(total_amount), 0)
		FROM invoices GROUP BY status`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("invoice stats: %w", err)
	}
	defer rows.Close()

	stats := &entity.InvoiceStats{
		TotalAmount:   decimal.Zero,
		TotalTax:      decimal.Zero,
		TotalBilled:   decimal.Zero,
		CountByStatus: make(map[string]int),
		SumByStatus:   make(map[string]decimal.Decimal),
	}
	for rows.Next() {
		var status string
		var count int
		var amount, tax, total decimal.Decimal
		if err := rows.Scan(&status, &count, &amount, &tax, &total); err != nil {
			return nil, fmt.Errorf("scan invoice stats: %w", err)
		}
		stats.TotalCount += count
		stats.TotalAmount = stats.TotalAmount.Add(amount)
		stats.TotalTax = stats.TotalTax.Add(tax)
		stats.TotalBilled = stats.TotalBilled.Add(total)
		stats.CountByStatus[status] = count
		stats.SumByStatus[status] = total
	}
	return stats, rows.Err()
}

// GetPaymentsByInvoiceID retourne les paiements employés affectés à une facture
// (lecture seule dans le flux facturation, nom dénormalisé depuis employees).
func (r *InvoiceRepo) GetPaymentsByInvoiceID(invoiceID string) ([]*entity.EmployeePayment, error) {
	const query = `
		SELECT p.id, p.invoice_id, p.employee_id, COALESCE(e.name, ''),
		       p.amount, p.status, p.created_at
		FROM assigned_employee_payments p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.invoice_id = $1 ORDER BY p.created_at`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list employee payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.EmployeePayment
	for rows.Next() {
		var p entity.EmployeePayment
		if err := rows.Scan(&p.ID, &p.InvoiceID, &p.EmployeeID, &p.EmployeeName, &p.Amount, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan employee payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// CreatePayment affecte un paiement employé à une facture.
func (r *InvoiceRepo) CreatePayment(payment *entity.EmployeePayment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	const query = `
		INSERT INTO assigned_employee_payments (id, invoice_id, employee_id, amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.InvoiceID, payment.EmployeeID, payment.Amount, payment.Status, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee payment: %w", err)
	}
	return nil
}
