package membership

import (
	"context"
)

// LevelMember is the membership_level value of approved members.
const LevelMember = "member"

// Directory defines the remote operations on member profiles and their device tokens.
type Directory interface {
	// EnableMembership promotes the user owning email to member and returns
	// the device tokens of that user's active sessions.
	EnableMembership(ctx context.Context, email string) ([]DeviceToken, error)
	ListMemberIDs(ctx context.Context) ([]string, error)
	ListTokensForUsers(ctx context.Context, userIDs []string) ([]DeviceToken, error)
}
