package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gym_admin/internal/domain/membership"
	"gym_admin/internal/domain/push"
	"gym_admin/internal/domain/training"

	"github.com/sirupsen/logrus"
)

var ErrUploadTrainingWeek = errors.New("failed to upload training week")
var ErrListRecipients = errors.New("failed to list notification recipients")

// progressMark is written once per send attempt during the broadcast.
const progressMark = "."

// TrainingService publishes weekly training PDFs and announces them to members.
type TrainingService struct {
	storage   training.Storage
	directory membership.Directory
	notifier  *NotificationService
	out       io.Writer
	logger    *logrus.Entry
}

func NewTrainingService(st training.Storage, d membership.Directory, n *NotificationService, out io.Writer, logger *logrus.Entry) *TrainingService {
	return &TrainingService{
		storage:   st,
		directory: d,
		notifier:  n,
		out:       out,
		logger:    logger,
	}
}

// PublishWeek uploads the PDF at pdfPath as the week starting on start, then
// notifies every member device. Send failures are ignored per recipient.
func (s *TrainingService) PublishWeek(ctx context.Context, pdfPath string, start time.Time) (FanoutResult, error) {
	week := training.NewWeek(start)
	logCtx := s.logger.WithFields(logrus.Fields{
		"file": pdfPath,
		"key":  week.ObjectKey(),
	})

	fmt.Fprintln(s.out, "uploading...")
	content, err := os.ReadFile(pdfPath)
	if err != nil {
		return FanoutResult{}, fmt.Errorf("%w: read %s: %w", ErrUploadTrainingWeek, pdfPath, err)
	}
	if err := s.storage.Upload(ctx, week.ObjectKey(), bytes.NewReader(content)); err != nil {
		logCtx.WithError(err).Error("Training week upload failed")
		return FanoutResult{}, fmt.Errorf("%w: %w", ErrUploadTrainingWeek, err)
	}
	logCtx.WithField("bytes", len(content)).Info("Training week uploaded")

	label := week.Label()

	tokens, err := s.memberTokens(ctx)
	if err != nil {
		logCtx.WithError(err).Error("Could not resolve member device tokens")
		return FanoutResult{}, err
	}

	fmt.Fprintln(s.out, "Sending the training notification...")
	fmt.Fprintf(s.out, "We got %d active sessions\n", len(tokens))

	result, err := s.notifier.Dispatch(ctx, tokens, push.TrainingAvailable(label), BestEffort, FanoutHooks{
		AfterRecord: func(skipped bool, _ error) {
			if !skipped {
				fmt.Fprint(s.out, progressMark)
			}
		},
	})
	fmt.Fprintln(s.out)
	if err != nil {
		return result, err
	}

	fmt.Fprintln(s.out, "New training week uploaded! 🎉")
	return result, nil
}

func (s *TrainingService) memberTokens(ctx context.Context) ([]membership.DeviceToken, error) {
	ids, err := s.directory.ListMemberIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: members: %w", ErrListRecipients, err)
	}
	if len(ids) == 0 {
		s.logger.Warn("No members found, nobody will be notified")
		return nil, nil
	}

	tokens, err := s.directory.ListTokensForUsers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: tokens: %w", ErrListRecipients, err)
	}
	return tokens, nil
}
