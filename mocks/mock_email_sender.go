package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"salesdesk/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendReport(ctx context.Context, msg port.ReportEmail) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
