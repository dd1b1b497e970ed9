package domain

import "time"

// DispatchResult is the outcome of a best-effort email send.
type DispatchResult int

const (
	DispatchFailed DispatchResult = iota
	DispatchSent
)

func (r DispatchResult) String() string {
	if r == DispatchSent {
		return "sent"
	}
	return "failed"
}

// Sent reports whether delivery was confirmed.
func (r DispatchResult) Sent() bool { return r == DispatchSent }

// CapsuleOpenedNotification is the payload of the "time to open" email.
type CapsuleOpenedNotification struct {
	Title    string
	ViewLink string
}

// CapsuleCreatedNotification is the payload of the creation confirmation email.
type CapsuleCreatedNotification struct {
	Title    string
	OpenDate time.Time
	ViewLink string
}

// GiftNotification is the payload of the email sent to a gift recipient.
type GiftNotification struct {
	SenderName    string
	RecipientName string
	ViewLink      string
}
