package secp256k1

import (
	"crypto/rand"
	"fmt"
	"time"
)

// AuditEventType represents the type of audit event
type AuditEventType string

const (
	// Key lifecycle events
	AuditEventKeyGeneration AuditEventType = "key_generation"

	// Signature events
	AuditEventSigning      AuditEventType = "signing"
	AuditEventVerification AuditEventType = "verification"

	// Key agreement events
	AuditEventKeyAgreement AuditEventType = "key_agreement"

	// Error events
	AuditEventValidationFailure AuditEventType = "validation_failure"
)

// AuditEvent represents a single audit event in the engine
type AuditEvent struct {
	// Event metadata
	EventID   string         `json:"event_id"`
	Timestamp time.Time      `json:"timestamp"`
	EventType AuditEventType `json:"event_type"`

	// Success/failure information
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	// Additional context
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// AuditEventHandler defines the interface for handling audit events.
// Applications implement this interface to record events according to their
// needs; none of the core arithmetic ever calls it, only the Engine façade.
type AuditEventHandler interface {
	// OnKeyGeneration is called when a key pair is generated
	OnKeyGeneration(event *AuditEvent)

	// OnSigning is called when a signature is produced
	OnSigning(event *AuditEvent)

	// OnVerification is called when a signature is checked
	OnVerification(event *AuditEvent)

	// OnKeyAgreement is called when an ECDH shared secret is derived
	OnKeyAgreement(event *AuditEvent)

	// OnValidationFailure is called when key or point validation fails
	OnValidationFailure(event *AuditEvent)
}

// NullAuditHandler is a no-op implementation of AuditEventHandler, used
// when no audit handling is needed.
type NullAuditHandler struct{}

func (n *NullAuditHandler) OnKeyGeneration(event *AuditEvent)     {}
func (n *NullAuditHandler) OnSigning(event *AuditEvent)           {}
func (n *NullAuditHandler) OnVerification(event *AuditEvent)      {}
func (n *NullAuditHandler) OnKeyAgreement(event *AuditEvent)      {}
func (n *NullAuditHandler) OnValidationFailure(event *AuditEvent) {}

// AuditEventBuilder helps construct audit events with proper defaults
type AuditEventBuilder struct {
	event *AuditEvent
}

// NewAuditEventBuilder creates a new audit event builder
func NewAuditEventBuilder(eventType AuditEventType) *AuditEventBuilder {
	return &AuditEventBuilder{
		event: &AuditEvent{
			EventID:   generateEventID(),
			Timestamp: time.Now(),
			EventType: eventType,
			Success:   true, // Default to success, can be overridden
			Metadata:  make(map[string]interface{}),
		},
	}
}

// WithError marks the event as failed and sets error information
func (b *AuditEventBuilder) WithError(err error) *AuditEventBuilder {
	b.event.Success = false
	if err != nil {
		b.event.Error = err.Error()
	}
	return b
}

// WithMetadata adds metadata to the event
func (b *AuditEventBuilder) WithMetadata(key string, value interface{}) *AuditEventBuilder {
	b.event.Metadata[key] = value
	return b
}

// Build returns the constructed audit event
func (b *AuditEventBuilder) Build() *AuditEvent {
	return b.event
}

// generateEventID generates a unique event ID
// Uses a combination of timestamp and random bytes to ensure uniqueness
func generateEventID() string {
	timestamp := time.Now().Format("20060102150405.000000")

	// Add 4 random bytes to ensure uniqueness even for events created at the same microsecond
	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Sprintf("%s.%d", timestamp, time.Now().UnixNano()%10000)
	}

	return fmt.Sprintf("%s.%x", timestamp, randomBytes)
}
