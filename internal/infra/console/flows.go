package console

import (
	"context"
	"time"

	"gym_admin/internal/app"

	"github.com/sirupsen/logrus"
)

// MemberEnabler is implemented by app.AdminService.
type MemberEnabler interface {
	EnableMember(ctx context.Context, email string) (app.FanoutResult, error)
}

// WeekPublisher is implemented by app.TrainingService.
type WeekPublisher interface {
	PublishWeek(ctx context.Context, pdfPath string, start time.Time) (app.FanoutResult, error)
}

// EnableUserFlow asks for an email and turns its owner into a member.
type EnableUserFlow struct {
	prompter Prompter
	service  MemberEnabler
	logger   *logrus.Entry
}

func NewEnableUserFlow(p Prompter, service MemberEnabler, logger *logrus.Entry) *EnableUserFlow {
	return &EnableUserFlow{prompter: p, service: service, logger: logger}
}

func (f *EnableUserFlow) Run(ctx context.Context) error {
	email, err := f.prompter.Input("Enter the email you want to enable as member: ", "", validateEmailAnswer)
	if err != nil {
		return err
	}

	result, err := f.service.EnableMember(ctx, email)
	if err != nil {
		return err
	}
	f.logger.WithFields(logrus.Fields{
		"email": email,
		"sent":  result.Sent,
	}).Info("Enable-user flow finished")
	return nil
}

// UploadTrainingFlow asks for a PDF and the first day of its week, then
// publishes it.
type UploadTrainingFlow struct {
	prompter Prompter
	service  WeekPublisher
	now      func() time.Time
	logger   *logrus.Entry
}

func NewUploadTrainingFlow(p Prompter, service WeekPublisher, logger *logrus.Entry) *UploadTrainingFlow {
	return &UploadTrainingFlow{prompter: p, service: service, now: time.Now, logger: logger}
}

func (f *UploadTrainingFlow) Run(ctx context.Context) error {
	path, err := f.prompter.Input("Path of the new training week: ", "", validatePDFAnswer)
	if err != nil {
		return err
	}
	start, err := f.prompter.Date("When is the first training week day?", f.now())
	if err != nil {
		return err
	}

	result, err := f.service.PublishWeek(ctx, path, start)
	if err != nil {
		return err
	}
	f.logger.WithFields(logrus.Fields{
		"file":    path,
		"sent":    result.Sent,
		"failed":  result.Failed,
		"skipped": result.Skipped,
	}).Info("Upload flow finished")
	return nil
}
