package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"gym_admin/internal/domain/membership"
	"gym_admin/internal/domain/push"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminService(d membership.Directory, s push.Sender, out *bytes.Buffer) *AdminService {
	return NewAdminService(d, NewNotificationService(s, testLogger()), out, testLogger())
}

func TestEnableMember_WelcomesEverySession(t *testing.T) {
	dir := &directoryMock{}
	dir.On("EnableMembership", mock.Anything, "user.name@sub.domain.com").Return(tokens("tok-1", "tok-2"), nil)
	sender := &senderMock{}
	sender.On("Send", mock.Anything, mock.MatchedBy(func(n push.Notification) bool {
		return n.Title == "Membresía abrobada" && n.Body == "Te damos la bienvenida a GMadrid! 🏊"
	})).Return(nil)

	var out bytes.Buffer
	result, err := newAdminService(dir, sender, &out).EnableMember(context.Background(), "user.name@sub.domain.com")
	require.NoError(t, err)
	require.Equal(t, 2, result.Sent)

	require.Equal(t,
		"Enabling membership for user.name@sub.domain.com...\n"+
			"We got 2 active sessions for this user\n"+
			"Sending a welcoming notification...\n"+
			"Sending a welcoming notification...\n"+
			"New member set! 🎉\n",
		out.String())
	sender.AssertNumberOfCalls(t, "Send", 2)
}

func TestEnableMember_BackendErrorSendsNothing(t *testing.T) {
	backendErr := errors.New("(P0001) user not found")
	dir := &directoryMock{}
	dir.On("EnableMembership", mock.Anything, "ghost@gym.es").Return(nil, backendErr)
	sender := &senderMock{}

	var out bytes.Buffer
	_, err := newAdminService(dir, sender, &out).EnableMember(context.Background(), "ghost@gym.es")
	require.ErrorIs(t, err, ErrEnableMembership)
	require.ErrorIs(t, err, backendErr)

	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	require.NotContains(t, out.String(), "New member set!")
}

func TestEnableMember_SendFailureAborts(t *testing.T) {
	dir := &directoryMock{}
	dir.On("EnableMembership", mock.Anything, "user@gym.es").Return(tokens("tok-1", "tok-2"), nil)
	sender := &senderMock{}
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("quota exceeded"))

	var out bytes.Buffer
	result, err := newAdminService(dir, sender, &out).EnableMember(context.Background(), "user@gym.es")
	require.Error(t, err)
	require.Equal(t, 1, result.Attempted)
	sender.AssertNumberOfCalls(t, "Send", 1)
	require.NotContains(t, out.String(), "New member set!")
}

func TestEnableMember_RejectsInvalidEmail(t *testing.T) {
	dir := &directoryMock{}
	var out bytes.Buffer

	_, err := newAdminService(dir, &senderMock{}, &out).EnableMember(context.Background(), "user@domain")
	require.ErrorIs(t, err, membership.ErrInvalidEmail)
	dir.AssertNotCalled(t, "EnableMembership", mock.Anything, mock.Anything)
}

func TestEnableMember_NoSessions(t *testing.T) {
	dir := &directoryMock{}
	dir.On("EnableMembership", mock.Anything, "user@gym.es").Return([]membership.DeviceToken{}, nil)
	sender := &senderMock{}

	var out bytes.Buffer
	result, err := newAdminService(dir, sender, &out).EnableMember(context.Background(), "user@gym.es")
	require.NoError(t, err)
	require.Equal(t, FanoutResult{}, result)
	require.Contains(t, out.String(), "We got 0 active sessions for this user\n")
	require.Contains(t, out.String(), "New member set! 🎉")
}
