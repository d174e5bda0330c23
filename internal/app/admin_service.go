package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gym_admin/internal/domain/membership"
	"gym_admin/internal/domain/push"

	"github.com/sirupsen/logrus"
)

// ErrEnableMembership wraps any backend failure of the enable_membership call.
var ErrEnableMembership = errors.New("failed to enable membership")

// AdminService approves members and welcomes them on their devices.
type AdminService struct {
	directory membership.Directory
	notifier  *NotificationService
	out       io.Writer
	logger    *logrus.Entry
}

func NewAdminService(d membership.Directory, n *NotificationService, out io.Writer, logger *logrus.Entry) *AdminService {
	return &AdminService{
		directory: d,
		notifier:  n,
		out:       out,
		logger:    logger,
	}
}

// EnableMember turns the user owning email into a member and sends a welcome
// notification to each of the user's active sessions. A failed send aborts.
func (s *AdminService) EnableMember(ctx context.Context, email string) (FanoutResult, error) {
	if err := membership.ValidateEmail(email); err != nil {
		return FanoutResult{}, err
	}
	logCtx := s.logger.WithField("email", email)

	fmt.Fprintf(s.out, "Enabling membership for %s...\n", email)
	tokens, err := s.directory.EnableMembership(ctx, email)
	if err != nil {
		logCtx.WithError(err).Error("enable_membership call failed")
		return FanoutResult{}, fmt.Errorf("%w for %s: %w", ErrEnableMembership, email, err)
	}
	logCtx.WithField("sessions", len(tokens)).Info("Membership enabled")

	fmt.Fprintf(s.out, "We got %d active sessions for this user\n", len(tokens))

	result, err := s.notifier.Dispatch(ctx, tokens, push.MembershipApproved(), FailFast, FanoutHooks{
		BeforeSend: func(string) {
			fmt.Fprintln(s.out, "Sending a welcoming notification...")
		},
	})
	if err != nil {
		return result, err
	}

	fmt.Fprintln(s.out, "New member set! 🎉")
	return result, nil
}
