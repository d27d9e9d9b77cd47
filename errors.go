package secp256k1

import (
	"fmt"
)

// ErrorCategory represents the category of an engine error
type ErrorCategory string

const (
	ErrorCategoryValidation ErrorCategory = "validation"
	ErrorCategoryArithmetic ErrorCategory = "arithmetic"
	ErrorCategoryEncoding   ErrorCategory = "encoding"
	ErrorCategorySigning    ErrorCategory = "signing"
	ErrorCategoryEntropy    ErrorCategory = "entropy"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

const (
	ErrorSeverityLow      ErrorSeverity = "low"      // Non-critical, operation can continue
	ErrorSeverityMedium   ErrorSeverity = "medium"   // Important, may affect functionality
	ErrorSeverityHigh     ErrorSeverity = "high"     // Critical, operation should stop
	ErrorSeverityCritical ErrorSeverity = "critical" // System-level failure
)

// EngineError represents a structured error in the secp256k1 engine
type EngineError struct {
	Category    ErrorCategory `json:"category"`
	Severity    ErrorSeverity `json:"severity"`
	Code        string        `json:"code"`
	Message     string        `json:"message"`
	Cause       error         `json:"-"` // Original error, not serialized
	Recoverable bool          `json:"recoverable"`
}

// Error implements the error interface
func (e *EngineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Category, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Category, e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *EngineError) Unwrap() error {
	return e.Cause
}

// Is matches engine errors on category and code, so copies carrying a cause
// still compare equal to their sentinel under errors.Is.
func (e *EngineError) Is(target error) bool {
	t, ok := target.(*EngineError)
	if !ok {
		return false
	}
	return e.Category == t.Category && e.Code == t.Code
}

// WithCause returns a copy of the error with the underlying cause set
func (e *EngineError) WithCause(cause error) *EngineError {
	return &EngineError{
		Category:    e.Category,
		Severity:    e.Severity,
		Code:        e.Code,
		Message:     e.Message,
		Cause:       cause,
		Recoverable: e.Recoverable,
	}
}

// IsRecoverable returns whether the error is recoverable
func (e *EngineError) IsRecoverable() bool {
	return e.Recoverable
}

// NewEngineError creates a new engine error
func NewEngineError(category ErrorCategory, severity ErrorSeverity, code, message string) *EngineError {
	return &EngineError{
		Category:    category,
		Severity:    severity,
		Code:        code,
		Message:     message,
		Recoverable: severity != ErrorSeverityCritical,
	}
}

// Validation errors
var (
	ErrInvalidScalar = NewEngineError(
		ErrorCategoryValidation, ErrorSeverityHigh, "INVALID_SCALAR",
		"scalar is outside the required range")

	ErrInvalidFieldElement = NewEngineError(
		ErrorCategoryValidation, ErrorSeverityHigh, "INVALID_FIELD_ELEMENT",
		"field element bytes are not canonical")

	ErrPointNotOnCurve = NewEngineError(
		ErrorCategoryValidation, ErrorSeverityHigh, "POINT_NOT_ON_CURVE",
		"point does not satisfy the curve equation")

	ErrInvalidPublicKey = NewEngineError(
		ErrorCategoryValidation, ErrorSeverityHigh, "INVALID_PUBLIC_KEY",
		"public key is infinity, off curve, or in the wrong subgroup")

	ErrInvalidPrivateKey = NewEngineError(
		ErrorCategoryValidation, ErrorSeverityHigh, "INVALID_PRIVATE_KEY",
		"private key must satisfy 0 < d < n")

	ErrInvalidSignature = NewEngineError(
		ErrorCategoryValidation, ErrorSeverityHigh, "INVALID_SIGNATURE",
		"signature components must satisfy 1 <= r, s < n")
)

// Arithmetic errors
var (
	ErrZeroInverse = NewEngineError(
		ErrorCategoryArithmetic, ErrorSeverityHigh, "ZERO_INVERSE",
		"zero has no multiplicative inverse")
)

// Encoding errors
var (
	ErrInvalidPointEncoding = NewEngineError(
		ErrorCategoryEncoding, ErrorSeverityHigh, "INVALID_POINT_ENCODING",
		"point bytes are not a valid compressed or uncompressed encoding")

	ErrInfinityEncoding = NewEngineError(
		ErrorCategoryEncoding, ErrorSeverityHigh, "INFINITY_ENCODING",
		"the point at infinity has no wire encoding")
)

// Signing errors
var (
	ErrSigningFailed = NewEngineError(
		ErrorCategorySigning, ErrorSeverityHigh, "SIGNING_FAILED",
		"nonce retry budget exhausted without producing a valid signature")
)

// Entropy errors
var (
	ErrInsufficientEntropy = NewEngineError(
		ErrorCategoryEntropy, ErrorSeverityCritical, "INSUFFICIENT_ENTROPY",
		"cryptographically secure random source is unavailable")
)
