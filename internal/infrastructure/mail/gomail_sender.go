// Package mail implémente le transport SMTP sortant avec gomail.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"

	appbilling "github.com/nomadeprod/backoffice-api/internal/application/billing"
	"github.com/nomadeprod/backoffice-api/pkg/config"
)

var _ appbilling.Mailer = (*GomailSender)(nil)

// GomailSender implémente billing.Mailer au-dessus d'un dialer SMTP.
// Le transport est considéré non configuré si l'hôte ou l'adresse
// d'expédition manquent ; Send refuse alors tout envoi.
type GomailSender struct {
	cfg        config.SMTPConfig
	senderName string
}

// NewGomailSender construit le transport. senderName est le nom affiché
// dans l'en-tête From (vide = adresse brute).
func NewGomailSender(cfg config.SMTPConfig, senderName string) *GomailSender {
	return &GomailSender{cfg: cfg, senderName: senderName}
}

// Configured indique si le transport peut livrer des messages.
func (s *GomailSender) Configured() bool {
	return s.cfg.Configured()
}

// Send livre le message via SMTP. Le contexte interrompt l'attente de la
// livraison mais pas la connexion SMTP déjà engagée.
func (s *GomailSender) Send(ctx context.Context, msg appbilling.OutboundMessage) error {
	if !s.Configured() {
		return fmt.Errorf("mail: transport SMTP non configuré")
	}

	m := gomail.NewMessage()
	if s.senderName != "" {
		m.SetAddressHeader("From", s.cfg.From, s.senderName)
	} else {
		m.SetHeader("From", s.cfg.From)
	}
	if msg.ToName != "" {
		m.SetAddressHeader("To", msg.To, msg.ToName)
	} else {
		m.SetHeader("To", msg.To)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if len(msg.Attachment) > 0 {
		m.Attach(msg.AttachmentName,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := io.Copy(w, bytes.NewReader(msg.Attachment))
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type": {"application/pdf"},
			}),
		)
	}

	dialer := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)

	done := make(chan error, 1)
	go func() { done <- dialer.DialAndSend(m) }()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("mail: envoi à %s: %w", msg.To, err)
		}
		return nil
	}
}
