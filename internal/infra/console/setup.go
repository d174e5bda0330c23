package console

import (
	"fmt"
	"io"

	"gym_admin/internal/infra/secrets"

	"github.com/sirupsen/logrus"
)

// SecretWriter persists the collected bundle.
type SecretWriter interface {
	Write(b secrets.Bundle) error
}

// Setup collects the three secrets the admin tool needs and stores them.
type Setup struct {
	prompter Prompter
	store    SecretWriter
	out      io.Writer
	logger   *logrus.Entry
}

func NewSetup(p Prompter, store SecretWriter, out io.Writer, logger *logrus.Entry) *Setup {
	return &Setup{
		prompter: p,
		store:    store,
		out:      out,
		logger:   logger,
	}
}

// Run asks for every value before writing anything, so an aborted setup
// leaves the previous secrets untouched.
func (s *Setup) Run() error {
	credentialPath, err := s.prompter.Input("Service Account Path: ", "", validateFileAnswer)
	if err != nil {
		return err
	}
	accessToken, err := s.prompter.Input("Supabase admin access token: ", "", validateTokenAnswer)
	if err != nil {
		return err
	}
	backendURL, err := s.prompter.Input("Supabase URL: ", "", validateURLAnswer)
	if err != nil {
		return err
	}

	if err := s.store.Write(secrets.Bundle{
		CredentialPath: credentialPath,
		AccessToken:    accessToken,
		BackendURL:     backendURL,
	}); err != nil {
		return fmt.Errorf("failed to save secrets: %w", err)
	}
	s.logger.WithField("backend_url", backendURL).Info("Secrets saved")

	fmt.Fprintln(s.out, "Successfully set up.")
	return nil
}
