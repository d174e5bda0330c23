package firebase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gym_admin/internal/domain/push"

	fb "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

var ErrMissingCredentials = errors.New("firebase credentials path is empty")

// messenger is the part of *messaging.Client the sender needs.
type messenger interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// Sender delivers push notifications through Firebase Cloud Messaging.
type Sender struct {
	client  messenger
	timeout time.Duration
	logger  *logrus.Entry
}

// NewSender initialises a Firebase app from the service-account file at
// credentialsPath. projectID may be empty, in which case it is read from
// the credentials. A positive timeout bounds every single send.
func NewSender(ctx context.Context, credentialsPath, projectID string, timeout time.Duration, logger *logrus.Entry) (*Sender, error) {
	if credentialsPath == "" {
		return nil, ErrMissingCredentials
	}

	var cfg *fb.Config
	if projectID != "" {
		cfg = &fb.Config{ProjectID: projectID}
	}

	app, err := fb.NewApp(ctx, cfg, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("initialise firebase app from %s: %w", credentialsPath, err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialise firebase messaging: %w", err)
	}

	return newSender(client, timeout, logger), nil
}

func newSender(client messenger, timeout time.Duration, logger *logrus.Entry) *Sender {
	return &Sender{client: client, timeout: timeout, logger: logger}
}

func (s *Sender) Send(ctx context.Context, n push.Notification) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	id, err := s.client.Send(ctx, toMessage(n))
	if err != nil {
		if messaging.IsUnregistered(err) {
			return fmt.Errorf("device token is no longer registered: %w", err)
		}
		return fmt.Errorf("fcm send: %w", err)
	}
	s.logger.WithField("message_id", id).Debug("Push notification accepted")
	return nil
}

func toMessage(n push.Notification) *messaging.Message {
	return &messaging.Message{
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Token: n.Token,
	}
}
