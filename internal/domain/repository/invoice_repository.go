package repository

import "github.com/nomadeprod/backoffice-api/internal/domain/entity"

// InvoiceRepository définit le port de persistance des factures, lignes et
// paiements employés associés.
type InvoiceRepository interface {
	// NextSequence incrémente atomiquement le compteur de l'année et retourne
	// le nouveau suffixe. Doit être appelé dans la même transaction que Create :
	// le verrou de ligne du compteur sérialise les créations concurrentes.
	NextSequence(year int) (int, error)
	Create(invoice *entity.Invoice) error
	CreateItem(item *entity.InvoiceItem) error
	GetByID(id string) (*entity.Invoice, error)
	// GetForUpdate lit l'en-tête avec SELECT ... FOR UPDATE (flux update/delete).
	GetForUpdate(id string) (*entity.Invoice, error)
	List() ([]*entity.Invoice, error)
	GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error)
	DeleteItemsByInvoiceID(invoiceID string) error
	// Update applique une mise à jour partielle (COALESCE sur les champs absents).
	Update(id string, patch *entity.InvoicePatch) error
	Delete(id string) error
	Stats() (*entity.InvoiceStats, error)
	GetPaymentsByInvoiceID(invoiceID string) ([]*entity.EmployeePayment, error)
	CreatePayment(payment *entity.EmployeePayment) error
}
