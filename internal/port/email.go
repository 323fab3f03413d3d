package port

import "context"

// ReportEmail is a rendered report sent as a mail attachment.
type ReportEmail struct {
	To          string
	Subject     string
	Body        string
	FileName    string
	ContentType string
	Attachment  []byte
}

// EmailSender defines the contract for outbound report delivery.
type EmailSender interface {
	SendReport(ctx context.Context, msg ReportEmail) error
}
