// internal/email/service.go
package email

import (
	"fmt"

	"github.com/Braham27/churchflow-sub002/internal/config"
	"github.com/sendgrid/sendgrid-go"
)

// Provider identifies supported email providers
type Provider string

const (
	ProviderSendgrid Provider = "sendgrid"
)

// EmailData contains all necessary information for sending an email
type EmailData struct {
	To       string
	From     string
	FromName string
	Subject  string
}

// Service handles outbound email. Delivery is an external collaborator;
// everything above this package talks to Service, never to a provider SDK.
type Service struct {
	config         *config.Config
	provider       Provider
	sendgridClient *sendgrid.Client
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg *config.Config, provider Provider) (*Service, error) {
	s := &Service{
		config:   cfg,
		provider: provider,
	}

	switch provider {
	case ProviderSendgrid:
		if cfg.Sendgrid.APIKey == "" {
			return nil, fmt.Errorf("sendgrid api key not configured")
		}
		s.sendgridClient = sendgrid.NewSendClient(cfg.Sendgrid.APIKey)
	default:
		return nil, fmt.Errorf("unsupported email provider: %s", provider)
	}

	return s, nil
}

// Send delivers a rendered email through the configured provider.
func (s *Service) Send(data EmailData, htmlContent, textContent string) error {
	if data.From == "" {
		data.From = s.config.Sendgrid.From
	}
	if data.FromName == "" {
		data.FromName = "ChurchFlow"
	}

	switch s.provider {
	case ProviderSendgrid:
		return s.sendWithSendgrid(data, htmlContent, textContent)
	default:
		return fmt.Errorf("unsupported email provider: %s", s.provider)
	}
}
