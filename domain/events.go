package domain

import (
	"fmt"
	"time"
)

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	AccountRegisteredEvent   AuditEventType = "ACCOUNT_REGISTERED"
	AccountVerifiedEvent     AuditEventType = "ACCOUNT_VERIFIED"
	LoginEvent               AuditEventType = "LOGIN"
	LoginFailedEvent         AuditEventType = "LOGIN_FAILED"
	AccountLockedEvent       AuditEventType = "ACCOUNT_LOCKED"
	LogoutEvent              AuditEventType = "LOGOUT"
	EmailDeliveryFailedEvent AuditEventType = "EMAIL_DELIVERY_FAILED"
)

// AuditEvent represents a security-relevant state transition. Events are
// emitted to the server log only; they carry no secrets.
type AuditEvent struct {
	EventType AuditEventType
	AccountID uint
	Email     string
	Timestamp time.Time
	Success   bool
	ErrorMsg  string
}

// NewAuditEvent creates an audit event with common fields populated
func NewAuditEvent(eventType AuditEventType, accountID uint) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		AccountID: accountID,
		Timestamp: time.Now().UTC(),
		Success:   true,
	}
}

// WithEmail sets the email field
func (e *AuditEvent) WithEmail(email string) *AuditEvent {
	e.Email = email
	return e
}

// WithError marks the event failed and records the cause
func (e *AuditEvent) WithError(err error) *AuditEvent {
	e.Success = false
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	return e
}

// String renders the event in a single log-friendly line.
func (e *AuditEvent) String() string {
	s := fmt.Sprintf("%s account_id=%d success=%t ts=%s", e.EventType, e.AccountID, e.Success, e.Timestamp.Format(time.RFC3339))
	if e.Email != "" {
		s += " email=" + e.Email
	}
	if e.ErrorMsg != "" {
		s += " error=" + e.ErrorMsg
	}
	return s
}
