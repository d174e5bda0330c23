package app

import (
	"context"
	"io"

	"gym_admin/internal/domain/membership"
	"gym_admin/internal/domain/push"
	"gym_admin/internal/domain/training"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
)

type directoryMock struct{ mock.Mock }

var _ membership.Directory = (*directoryMock)(nil)

func (m *directoryMock) EnableMembership(ctx context.Context, email string) ([]membership.DeviceToken, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]membership.DeviceToken), args.Error(1)
}

func (m *directoryMock) ListMemberIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *directoryMock) ListTokensForUsers(ctx context.Context, userIDs []string) ([]membership.DeviceToken, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]membership.DeviceToken), args.Error(1)
}

type senderMock struct{ mock.Mock }

var _ push.Sender = (*senderMock)(nil)

func (m *senderMock) Send(ctx context.Context, n push.Notification) error {
	return m.Called(ctx, n).Error(0)
}

type storageMock struct {
	mock.Mock
	uploaded []byte
}

var _ training.Storage = (*storageMock)(nil)

func (m *storageMock) Upload(ctx context.Context, key string, content io.Reader) error {
	data, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	m.uploaded = data
	return m.Called(ctx, key).Error(0)
}

func testLogger() *logrus.Entry {
	logger, _ := test.NewNullLogger()
	return logrus.NewEntry(logger)
}

func tokens(values ...string) []membership.DeviceToken {
	out := make([]membership.DeviceToken, 0, len(values))
	for _, v := range values {
		out = append(out, membership.NewDeviceToken(v))
	}
	return out
}
