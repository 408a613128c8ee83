package domain

import "errors"

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound           = errors.New("ressource introuvable")
	ErrInvoiceNotFound    = errors.New("facture introuvable")
	ErrInvalidInput       = errors.New("entrée invalide")
	ErrEmailAlreadyExists = errors.New("cet email est déjà enregistré")
	ErrUserNotFound       = errors.New("utilisateur introuvable")
	ErrUnauthorized       = errors.New("non autorisé")
	ErrForbidden          = errors.New("accès refusé")
	ErrInvoicePaid        = errors.New("impossible de supprimer une facture payée")
	ErrDuplicateNumber    = errors.New("numéro de facture déjà attribué")
	ErrMailNotConfigured  = errors.New("service d'envoi d'emails non configuré")
)
