// internal/app/notification_service.go
package app

import (
	"context"
	"fmt"

	"gym_admin/internal/domain/membership"
	"gym_admin/internal/domain/push"

	"github.com/sirupsen/logrus"
)

// FanoutPolicy decides what happens when one recipient cannot be notified.
type FanoutPolicy struct {
	ContinueOnError bool
}

var (
	// FailFast stops at the first failed send and returns its error.
	FailFast = FanoutPolicy{ContinueOnError: false}
	// BestEffort swallows per-recipient failures and keeps going.
	BestEffort = FanoutPolicy{ContinueOnError: true}
)

// FanoutHooks let callers render progress. Both are optional.
type FanoutHooks struct {
	// BeforeSend runs right before a notification is handed to the sender.
	BeforeSend func(token string)
	// AfterRecord runs once per record, after its send attempt or its skip.
	AfterRecord func(skipped bool, err error)
}

// FanoutResult counts what happened to each record of a dispatch.
type FanoutResult struct {
	Attempted int
	Sent      int
	Skipped   int
	Failed    int
}

// NotificationService sends one notification per device token, sequentially.
type NotificationService struct {
	sender push.Sender
	logger *logrus.Entry
}

func NewNotificationService(sender push.Sender, logger *logrus.Entry) *NotificationService {
	return &NotificationService{
		sender: sender,
		logger: logger,
	}
}

// Dispatch renders tmpl for every record with a token and sends it, awaiting
// each send before starting the next. Records without a token are skipped.
func (s *NotificationService) Dispatch(
	ctx context.Context,
	records []membership.DeviceToken,
	tmpl push.Template,
	policy FanoutPolicy,
	hooks FanoutHooks,
) (FanoutResult, error) {
	var result FanoutResult

	for i, record := range records {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("notification fan-out interrupted after %d of %d records: %w", i, len(records), err)
		}

		if !record.HasToken() {
			result.Skipped++
			s.logger.WithField("record", i).Debug("Skipping session without notification token")
			if hooks.AfterRecord != nil {
				hooks.AfterRecord(true, nil)
			}
			continue
		}

		token := record.Value()
		if hooks.BeforeSend != nil {
			hooks.BeforeSend(token)
		}

		result.Attempted++
		err := s.sender.Send(ctx, tmpl(token))
		if err != nil {
			result.Failed++
			logCtx := s.logger.WithError(err).WithField("token", redact(token))
			if policy.ContinueOnError {
				logCtx.Debug("Notification send failed, continuing")
			} else {
				logCtx.Error("Notification send failed, aborting fan-out")
			}
		} else {
			result.Sent++
		}

		if hooks.AfterRecord != nil {
			hooks.AfterRecord(false, err)
		}

		if err != nil && !policy.ContinueOnError {
			return result, fmt.Errorf("failed to send notification to token %s: %w", redact(token), err)
		}
	}

	s.logger.WithFields(logrus.Fields{
		"records":   len(records),
		"attempted": result.Attempted,
		"sent":      result.Sent,
		"skipped":   result.Skipped,
		"failed":    result.Failed,
	}).Info("Notification fan-out finished")

	return result, nil
}

// redact keeps only the tail of a device token for logs and errors.
func redact(token string) string {
	const keep = 6
	if len(token) <= keep {
		return "…" + token
	}
	return "…" + token[len(token)-keep:]
}
