package noop

import (
	"context"
	"log"

	"salesdesk/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendReport(_ context.Context, msg port.ReportEmail) error {
	log.Printf("[NOOP EMAIL] report %s (%d bytes) to %s: %s",
		msg.FileName, len(msg.Attachment), msg.To, msg.Subject)
	return nil
}
