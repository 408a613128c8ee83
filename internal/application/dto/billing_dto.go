package dto

import "github.com/shopspring/decimal"

// InvoiceItemRequest ligne de facture côté API.
// Total est optionnel : il est recalculé serveur (unitPrice × quantity) ;
// s'il est fourni et incohérent, la requête est rejetée.
type InvoiceItemRequest struct {
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    decimal.Decimal `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
}

// CreateInvoiceRequest body de POST /api/invoices.
// Le statut n'est pas accepté : toute facture naît en draft.
type CreateInvoiceRequest struct {
	Client         string               `json:"client"`
	ClientICE      string               `json:"clientIce,omitempty"`
	Project        string               `json:"project,omitempty"`
	ProjectID      string               `json:"projectId,omitempty"`
	Items          []InvoiceItemRequest `json:"items"`
	IssueDate      string               `json:"issueDate"` // AAAA-MM-JJ
	DueDate        string               `json:"dueDate"`   // AAAA-MM-JJ
	ProfitMargin   *decimal.Decimal     `json:"profitMargin,omitempty"`
	EstimatedCosts *decimal.Decimal     `json:"estimatedCosts,omitempty"`
	TeamMembers    []string             `json:"teamMembers,omitempty"`
	Notes          string               `json:"notes,omitempty"`
}

// UpdateInvoiceRequest body de PUT /api/invoices/:id.
// Champs pointeurs : nil = absent (valeur conservée), non-nil = fourni.
// Si Items est fourni, l'ensemble des lignes est remplacé et les totaux
// recalculés ; sinon les totaux stockés restent intacts.
type UpdateInvoiceRequest struct {
	Client         *string               `json:"client,omitempty"`
	ClientICE      *string               `json:"clientIce,omitempty"`
	Project        *string               `json:"project,omitempty"`
	ProjectID      *string               `json:"projectId,omitempty"`
	Items          *[]InvoiceItemRequest `json:"items,omitempty"`
	IssueDate      *string               `json:"issueDate,omitempty"`
	DueDate        *string               `json:"dueDate,omitempty"`
	Status         *string               `json:"status,omitempty"`
	ProfitMargin   *decimal.Decimal      `json:"profitMargin,omitempty"`
	EstimatedCosts *decimal.Decimal      `json:"estimatedCosts,omitempty"`
	TeamMembers    *[]string             `json:"teamMembers,omitempty"`
	Notes          *string               `json:"notes,omitempty"`
}

// InvoiceItemResponse ligne de facture en réponse.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    decimal.Decimal `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
}

// EmployeePaymentResponse paiement employé affecté à une facture.
type EmployeePaymentResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employeeId"`
	EmployeeName string          `json:"employeeName,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
}

// InvoiceResponse facture complète : en-tête, lignes et paiements affectés.
type InvoiceResponse struct {
	ID                string                    `json:"id"`
	Number            string                    `json:"invoiceNumber"`
	Client            string                    `json:"client"`
	ClientICE         string                    `json:"clientIce,omitempty"`
	Project           string                    `json:"project,omitempty"`
	ProjectID         string                    `json:"projectId,omitempty"`
	Amount            decimal.Decimal           `json:"amount"`
	TaxAmount         decimal.Decimal           `json:"taxAmount"`
	TotalAmount       decimal.Decimal           `json:"totalAmount"`
	IssueDate         string                    `json:"issueDate"`
	DueDate           string                    `json:"dueDate"`
	Status            string                    `json:"status"`
	ProfitMargin      *decimal.Decimal          `json:"profitMargin,omitempty"`
	EstimatedCosts    *decimal.Decimal          `json:"estimatedCosts,omitempty"`
	TeamMembers       []string                  `json:"teamMembers"`
	Notes             string                    `json:"notes,omitempty"`
	Items             []InvoiceItemResponse     `json:"items"`
	AssignedEmployees []EmployeePaymentResponse `json:"assignedEmployees"`
	CreatedAt         string                    `json:"createdAt"`
	UpdatedAt         string                    `json:"updatedAt"`
}

// InvoiceStatusStats agrégat pour un statut.
type InvoiceStatusStats struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// InvoiceStatsResponse agrégats de GET /api/invoices/stats.
type InvoiceStatsResponse struct {
	TotalCount  int                           `json:"totalCount"`
	TotalAmount decimal.Decimal               `json:"totalAmount"`
	TotalTax    decimal.Decimal               `json:"totalTax"`
	TotalBilled decimal.Decimal               `json:"totalBilled"`
	ByStatus    map[string]InvoiceStatusStats `json:"byStatus"`
}

// SendInvoiceEmailRequest body de POST /api/invoices/:id/send-email.
type SendInvoiceEmailRequest struct {
	Email      string `json:"email"`
	ClientName string `json:"clientName,omitempty"`
}

// AssignPaymentRequest body de POST /api/invoices/:id/payments.
type AssignPaymentRequest struct {
	EmployeeID string          `json:"employeeId"`
	Amount     decimal.Decimal `json:"amount"`
}
