package billing_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/nomadeprod/backoffice-api/internal/application/billing"
	"github.com/nomadeprod/backoffice-api/internal/application/dto"
	"github.com/nomadeprod/backoffice-api/internal/domain"
	"github.com/nomadeprod/backoffice-api/internal/domain/entity"
	"github.com/nomadeprod/backoffice-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en mémoire
// ──────────────────────────────────────────────────────────────────────────────

// fakeInvoiceRepo implémente repository.InvoiceRepository en mémoire, avec la
// même sémantique que le dépôt PostgreSQL : compteur annuel, patch partiel,
// lecture nil quand la facture est absente.
type fakeInvoiceRepo struct {
	counters map[int]int
	invoices map[string]*entity.Invoice
	items    map[string][]*entity.InvoiceItem
	payments map[string][]*entity.EmployeePayment
	nextID   int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		counters: map[int]int{},
		invoices: map[string]*entity.Invoice{},
		items:    map[string][]*entity.InvoiceItem{},
		payments: map[string][]*entity.EmployeePayment{},
	}
}

func (r *fakeInvoiceRepo) genID() string {
	r.nextID++
	return fmt.Sprintf("id-%03d", r.nextID)
}

func (r *fakeInvoiceRepo) NextSequence(year int) (int, error) {
	r.counters[year]++
	return r.counters[year], nil
}

func (r *fakeInvoiceRepo) Create(invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = r.genID()
	}
	cp := *invoice
	r.invoices[invoice.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	if item.ID == "" {
		item.ID = r.genID()
	}
	cp := *item
	r.items[item.InvoiceID] = append(r.items[item.InvoiceID], &cp)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) GetForUpdate(id string) (*entity.Invoice, error) {
	return r.GetByID(id)
}

func (r *fakeInvoiceRepo) List() ([]*entity.Invoice, error) {
	out := make([]*entity.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		cp := *inv
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	return r.items[invoiceID], nil
}

func (r *fakeInvoiceRepo) DeleteItemsByInvoiceID(invoiceID string) error {
	delete(r.items, invoiceID)
	return nil
}

func (r *fakeInvoiceRepo) Update(id string, patch *entity.InvoicePatch) error {
	inv, ok := r.invoices[id]
	if !ok {
		return domain.ErrInvoiceNotFound
	}
	if patch.Client != nil {
		inv.Client = *patch.Client
	}
	if patch.ClientICE != nil {
		inv.ClientICE = *patch.ClientICE
	}
	if patch.Project != nil {
		inv.Project = *patch.Project
	}
	if patch.ProjectID != nil {
		inv.ProjectID = *patch.ProjectID
	}
	if patch.IssueDate != nil {
		inv.IssueDate = *patch.IssueDate
	}
	if patch.DueDate != nil {
		inv.DueDate = *patch.DueDate
	}
	if patch.Status != nil {
		inv.Status = *patch.Status
	}
	if patch.ProfitMargin != nil {
		inv.ProfitMargin = decimal.NewNullDecimal(*patch.ProfitMargin)
	}
	if patch.EstimatedCosts != nil {
		inv.EstimatedCosts = decimal.NewNullDecimal(*patch.EstimatedCosts)
	}
	if patch.TeamMembers != nil {
		inv.TeamMembers = *patch.TeamMembers
	}
	if patch.Notes != nil {
		inv.Notes = *patch.Notes
	}
	if patch.Amount != nil {
		inv.Amount = *patch.Amount
	}
	if patch.TaxAmount != nil {
		inv.TaxAmount = *patch.TaxAmount
	}
	if patch.TotalAmount != nil {
		inv.TotalAmount = *patch.TotalAmount
	}
	inv.UpdatedAt = time.Now()
	return nil
}

func (r *fakeInvoiceRepo) Delete(id string) error {
	delete(r.invoices, id)
	delete(r.items, id)
	delete(r.payments, id)
	return nil
}

func (r *fakeInvoiceRepo) Stats() (*entity.InvoiceStats, error) {
	stats := &entity.InvoiceStats{
		CountByStatus: map[string]int{},
		SumByStatus:   map[string]decimal.Decimal{},
	}
	for _, inv := range r.invoices {
		stats.TotalCount++
		stats.TotalAmount = stats.TotalAmount.Add(inv.Amount)
		stats.TotalTax = stats.TotalTax.Add(inv.TaxAmount)
		stats.TotalBilled = stats.TotalBilled.Add(inv.TotalAmount)
		stats.CountByStatus[inv.Status]++
		stats.SumByStatus[inv.Status] = stats.SumByStatus[inv.Status].Add(inv.TotalAmount)
	}
	return stats, nil
}

func (r *fakeInvoiceRepo) GetPaymentsByInvoiceID(invoiceID string) ([]*entity.EmployeePayment, error) {
	return r.payments[invoiceID], nil
}

func (r *fakeInvoiceRepo) CreatePayment(payment *entity.EmployeePayment) error {
	if payment.ID == "" {
		payment.ID = r.genID()
	}
	cp := *payment
	r.payments[payment.InvoiceID] = append(r.payments[payment.InvoiceID], &cp)
	return nil
}

// fakeTxRunner exécute fn directement sur le fake, sans transaction réelle.
type fakeTxRunner struct {
	repo *fakeInvoiceRepo
}

func (t *fakeTxRunner) RunInvoice(_ context.Context, fn func(repository.InvoiceRepository) error) error {
	return fn(t.repo)
}

type fakeEmployeeRepo struct {
	employees map[string]*entity.Employee
}

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error { return nil }
func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return r.employees[id], nil
}
func (r *fakeEmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) { return nil, nil }
func (r *fakeEmployeeRepo) Update(e *entity.Employee) error                    { return nil }
func (r *fakeEmployeeRepo) Delete(id string) error                             { return nil }

type fakeSettingsRepo struct {
	settings *entity.Settings
}

func (r *fakeSettingsRepo) Get() (*entity.Settings, error) { return r.settings, nil }
func (r *fakeSettingsRepo) Save(s *entity.Settings) error  { r.settings = s; return nil }

// fakePDF retourne un contenu constant.
type fakePDF struct{ calls int }

func (p *fakePDF) GenerateInvoicePDF(_ context.Context, _ *entity.Invoice, _ []*entity.InvoiceItem, _ *entity.Settings) ([]byte, error) {
	p.calls++
	return []byte("%PDF-1.4 fake"), nil
}

// fakeMailer capture les messages envoyés.
type fakeMailer struct {
	configured bool
	sent       []appbilling.OutboundMessage
}

func (m *fakeMailer) Configured() bool { return m.configured }
func (m *fakeMailer) Send(_ context.Context, msg appbilling.OutboundMessage) error {
	m.sent = append(m.sent, msg)
	return nil
}

// newTestUseCase câble le cas d'usage sur les fakes.
func newTestUseCase(mailConfigured bool) (*appbilling.InvoiceUseCase, *fakeInvoiceRepo, *fakeMailer, *fakePDF) {
	repo := newFakeInvoiceRepo()
	mailer := &fakeMailer{configured: mailConfigured}
	pdf := &fakePDF{}
	employees := &fakeEmployeeRepo{employees: map[string]*entity.Employee{
		"emp-1": {ID: "emp-1", Name: "Karim Bennani", Role: "cadreur", Active: true},
	}}
	settings := &fakeSettingsRepo{settings: &entity.Settings{
		CompanyName: "Nomade Productions",
		TaxID:       "001528596000057",
	}}
	uc := appbilling.NewInvoiceUseCase(
		&fakeTxRunner{repo: repo}, repo, employees, settings, pdf, mailer, "NOM",
	)
	return uc, repo, mailer, pdf
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// tournageRequest : facture type — 4 jours de tournage à 500 MAD/jour.
func tournageRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		Client:    "Atlas Films",
		ClientICE: "002345678000091",
		Project:   "Documentaire Atlas",
		IssueDate: "2024-03-15",
		DueDate:   "2024-04-15",
		Items: []dto.InvoiceItemRequest{
			{Description: "Tournage — 4 jours", UnitPrice: dec("500"), Quantity: dec("4")},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Création
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_NumeroteEtCalculeLesTotaux(t *testing.T) {
	uc, _, _, _ := newTestUseCase(false)

	resp, err := uc.Create(context.Background(), tournageRequest())
	require.NoError(t, err)

	assert.Equal(t, "NOM-2024-001", resp.Number, "première facture de 2024")
	assert.True(t, dec("2000").Equal(resp.Amount), "sous-total HT : 4 × 500")
	assert.True(t, dec("400").Equal(resp.TaxAmount), "TVA de 20 pour cent sur 2000")
	assert.True(t, dec("2400").Equal(resp.TotalAmount), "TTC = HT + TVA")
	assert.Equal(t, entity.InvoiceStatusDraft, resp.Status, "toute facture naît en draft")
	require.Len(t, resp.Items, 1)
	assert.True(t, dec("2000").Equal(resp.Items[0].Total))
}

func TestCreate_SequenceSansTrou(t *testing.T) {
	uc, _, _, _ := newTestUseCase(false)

	for i := 1; i <= 3; i++ {
		resp, err := uc.Create(context.Background(), tournageRequest())
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("NOM-2024-%03d", i), resp.Number)
	}
}

func TestCreate_CompteurParAnneeDEmission(t *testing.T) {
	uc, _, _, _ := newTestUseCase(false)

	in2024 := tournageRequest()
	resp, err := uc.Create(context.Background(), in2024)
	require.NoError(t, err)
	assert.Equal(t, "NOM-2024-001", resp.Number)

	in2025 := tournageRequest()
	in2025.IssueDate = "2025-01-10"
	in2025.DueDate = "2025-02-10"
	resp, err = uc.Create(context.Background(), in2025)
	require.NoError(t, err)
	assert.Equal(t, "NOM-2025-001", resp.Number, "le compteur repart à 1 chaque année")
}

func TestCreate_ArrondiDemiCentime(t *testing.T) {
	uc, _, _, _ := newTestUseCase(false)

	in := tournageRequest()
	// 3 × 33.335 = 100.005 → 100.01 (arrondi commercial au centime)
	in.Items = []dto.InvoiceItemRequest{
		{Description: "Prestation", UnitPrice: dec("33.335"), Quantity: dec("3")},
	}
	resp, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, dec("100.01").Equal(resp.Amount), "HT arrondi : %s", resp.Amount)
	assert.True(t, resp.TotalAmount.Equal(resp.Amount.Add(resp.TaxAmount)),
		"le TTC doit rester la somme exacte du HT et de la TVA")
}

func TestCreate_SansLignes_Rejetee(t *testing.T) {
	uc, repo, _, _ := newTestUseCase(false)

	in := tournageRequest()
	in.Items = nil
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.invoices, "rien ne doit être persisté")
}

func TestCreate_LigneInvalide_Rejetee(t *testing.T) {
	uc, _, _, _ := newTestUseCase(false)

	cases := []struct {
		name string
		item dto.InvoiceItemRequest
	}{
		{"description vide", dto.InvoiceItemRequest{UnitPrice: dec("100"), Quantity: dec("1")}},
		{"prix négatif", dto.InvoiceItemRequest{Description: "x", UnitPrice: dec("-1"), Quantity: dec("1")}},
		{"quantité nulle", dto.InvoiceItemRequest{Description: "x", UnitPrice: dec("100"), Quantity: dec("0")}},
		{"total incohérent", dto.InvoiceItemRequest{Description: "x", UnitPrice: dec("100"), Quantity: dec("2"), Total: dec("150")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := tournageRequest()
			in.Items = []dto.InvoiceItemRequest{tc.item}
			_, err := uc.Create(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCreate_DateInvalide_Rejetee(t *testing.T) {
	uc, _, _, _ := newTestUseCase(false)

	in := tournageRequest()
	in.IssueDate = "15/03/2024"
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mise à jour
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_RemplaceLesLignesEtRecalcule(t *testing.T) {
	uc, repo, _, _ := newTestUseCase(false)
	created, err := uc.Create(context.Background(), tournageRequest())
	require.NoError(t, err)

	newItems := []dto.InvoiceItemRequest{
		{Description: "Tournage — 4 jours", UnitPrice: dec("500"), Quantity: dec("4")},
		{Description: "Montage — 5 jours", UnitPrice: dec("200"), Quantity: dec("5")},
	}
	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateInvoiceRequest{Items: &newItems})
	require.NoError(t, err)

	assert.True(t, dec("3000").Equal(resp.Amount), "HT recalculé : 2000 + 1000")
	assert.True(t, dec("600").Equal(resp.TaxAmount))
	assert.True(t, dec("3600").Equal(resp.TotalAmount))
	require.Len(t, resp.Items, 2, "les lignes sont remplacées en bloc")
	assert.Len(t, repo.items[created.ID], 2, "les anciennes lignes ne subsistent pas")
}

func TestUpdate_SansLignes_ConserveLesTotaux(t *testing.T) {
	uc, _, _, _ := newTestUseCase(false)
	created, err := uc.Create(context.Background(), tournageRequest())
	require.NoError(t, err)

	client := "Sahara Studios"
	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateInvoiceRequest{Client: &client})
	require.NoError(t, err)

	assert.Equal(t, "Sahara Studios", resp.Client)
	assert.True(t, dec("2400").Equal(resp.TotalAmount), "totaux intacts sans remplacement de lignes")
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "NOM-2024-001", resp.Number, "le numéro ne change jamais")
}

func TestUpdate_ChampAbsent_ValeurConservee(t *testing.T) {
	uc, _, _, _ := newTestUseCase(false)
	created, err := uc.Create(context.Background(), tournageRequest())
	require.NoError(t, err)

	status := entity.InvoiceStatusPending
	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateInvoiceRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, entity.InvoiceStatusPending, resp.Status)
	assert.Equal(t, "Atlas Films", resp.Client, "client non fourni = conservé")
	assert.Equal(t, created.IssueDate, resp.IssueDate)
}

func TestUpdate_StatutInconnu_Rejete(t *testing.T) {
	uc, _, _, _ := newTestUseCase(false)
	created, err := uc.Create(context.Background(), tournageRequest())
	require.NoError(t, err)

	status := "archived"
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateInvoiceRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_ListeDeLignesVide_Rejetee(t *testing.T) {
	uc, _, _, _ := newTestUseCase(false)
	created, err := uc.Create(context.Background(), tournageRequest())
	require.NoError(t, err)

	empty := []dto.InvoiceItemRequest{}
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateInvoiceRequest{Items: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"items fournis mais vides = facture sans lignes, interdit")
}

func TestUpdate_FactureInconnue_Retourne404(t *testing.T) {
	uc, _, _, _ := newTestUseCase(false)

	client := "X"
	_, err := uc.Update(context.Background(), "inconnu", dto.UpdateInvoiceRequest{Client: &client})
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Suppression
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_FacturePayee_Refusee(t *testing.T) {
	uc, repo, _, _ := newTestUseCase(false)
	created, err := uc.Create(context.Background(), tournageRequest())
	require.NoError(t, err)

	paid := entity.InvoiceStatusPaid
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateInvoiceRequest{Status: &paid})
	require.NoError(t, err)

	err = uc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrInvoicePaid)
	assert.Contains(t, repo.invoices, created.ID, "la facture payée doit rester en base")
}

func TestDelete_FactureNonPayee_Supprimee(t *testing.T) {
	uc, repo, _, _ := newTestUseCase(false)
	created, err := uc.Create(context.Background(), tournageRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	assert.NotContains(t, repo.invoices, created.ID)
	assert.Empty(t, repo.items[created.ID], "les lignes partent avec la facture")
}

func TestDelete_FactureInconnue_Retourne404(t *testing.T) {
	uc, _, _, _ := newTestUseCase(false)
	err := uc.Delete(context.Background(), "inconnu")
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectures et statistiques
// ──────────────────────────────────────────────────────────────────────────────

func TestGet_FactureInconnue_Retourne404(t *testing.T) {
	uc, _, _, _ := newTestUseCase(false)
	_, err := uc.Get(context.Background(), "inconnu")
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestStats_AgregeParStatut(t *testing.T) {
	uc, _, _, _ := newTestUseCase(false)

	first, err := uc.Create(context.Background(), tournageRequest())
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), tournageRequest())
	require.NoError(t, err)

	paid := entity.InvoiceStatusPaid
	_, err = uc.Update(context.Background(), first.ID, dto.UpdateInvoiceRequest{Status: &paid})
	require.NoError(t, err)

	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalCount)
	assert.True(t, dec("4800").Equal(stats.TotalBilled), "2 × 2400 TTC")
	assert.Equal(t, 1, stats.ByStatus[entity.InvoiceStatusPaid].Count)
	assert.Equal(t, 1, stats.ByStatus[entity.InvoiceStatusDraft].Count)
	assert.True(t, dec("2400").Equal(stats.ByStatus[entity.InvoiceStatusPaid].Total))
}

// ──────────────────────────────────────────────────────────────────────────────
// Envoi par email
// ──────────────────────────────────────────────────────────────────────────────

func TestSendEmail_TransportNonConfigure_Retourne503(t *testing.T) {
	uc, _, mailer, pdf := newTestUseCase(false)
	created, err := uc.Create(context.Background(), tournageRequest())
	require.NoError(t, err)

	err = uc.SendEmail(context.Background(), created.ID, dto.SendInvoiceEmailRequest{Email: "client@atlasfilms.ma"})
	assert.ErrorIs(t, err, domain.ErrMailNotConfigured)
	assert.Empty(t, mailer.sent, "aucune tentative de livraison")
	assert.Zero(t, pdf.calls, "le PDF n'est même pas généré")
}

func TestSendEmail_JointLePDF(t *testing.T) {
	uc, _, mailer, pdf := newTestUseCase(true)
	created, err := uc.Create(context.Background(), tournageRequest())
	require.NoError(t, err)

	err = uc.SendEmail(context.Background(), created.ID, dto.SendInvoiceEmailRequest{
		Email:      "client@atlasfilms.ma",
		ClientName: "Atlas Films",
	})
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	msg := mailer.sent[0]
	assert.Equal(t, "client@atlasfilms.ma", msg.To)
	assert.Equal(t, "Facture NOM-2024-001", msg.Subject)
	assert.Equal(t, "NOM-2024-001.pdf", msg.AttachmentName)
	assert.NotEmpty(t, msg.Attachment)
	assert.Equal(t, 1, pdf.calls)
}

func TestSendEmail_SansDestinataire_Rejete(t *testing.T) {
	uc, _, _, _ := newTestUseCase(true)
	created, err := uc.Create(context.Background(), tournageRequest())
	require.NoError(t, err)

	err = uc.SendEmail(context.Background(), created.ID, dto.SendInvoiceEmailRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSendEmail_FactureInconnue_Retourne404(t *testing.T) {
	uc, _, _, _ := newTestUseCase(true)
	err := uc.SendEmail(context.Background(), "inconnu", dto.SendInvoiceEmailRequest{Email: "x@y.ma"})
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Paiements employés
// ──────────────────────────────────────────────────────────────────────────────

func TestAssignPayment_RattacheLePaiement(t *testing.T) {
	uc, _, _, _ := newTestUseCase(false)
	created, err := uc.Create(context.Background(), tournageRequest())
	require.NoError(t, err)

	payment, err := uc.AssignPayment(context.Background(), created.ID, dto.AssignPaymentRequest{
		EmployeeID: "emp-1",
		Amount:     dec("800"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Karim Bennani", payment.EmployeeName)
	assert.Equal(t, "pending", payment.Status)

	full, err := uc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, full.AssignedEmployees, 1)
	assert.True(t, dec("2400").Equal(full.TotalAmount),
		"les paiements affectés ne touchent pas les totaux de la facture")
}

func TestAssignPayment_EmployeInconnu_Rejete(t *testing.T) {
	uc, _, _, _ := newTestUseCase(false)
	created, err := uc.Create(context.Background(), tournageRequest())
	require.NoError(t, err)

	_, err = uc.AssignPayment(context.Background(), created.ID, dto.AssignPaymentRequest{
		EmployeeID: "emp-999",
		Amount:     dec("800"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
