package secp256k1

// Engine is a convenience façade over the package-level operations that
// reports every key-material operation to an AuditEventHandler. The core
// functions stay pure; applications that do not need an audit trail call
// them directly.
type Engine struct {
	audit AuditEventHandler
}

// NewEngine creates an engine with the given audit handler. A nil handler
// disables auditing.
func NewEngine(handler AuditEventHandler) *Engine {
	if handler == nil {
		handler = &NullAuditHandler{}
	}
	return &Engine{audit: handler}
}

// GenerateKeyPair generates a fresh key pair and records the outcome.
func (e *Engine) GenerateKeyPair() (*KeyPair, error) {
	kp, err := GenerateKeyPair()
	builder := NewAuditEventBuilder(AuditEventKeyGeneration)
	if err != nil {
		builder.WithError(err)
	}
	e.audit.OnKeyGeneration(builder.Build())
	return kp, err
}

// Sign signs a digest scalar and records the outcome. Only success and
// failure are recorded; no key or nonce material reaches the audit stream.
func (e *Engine) Sign(priv Scalar, digest Scalar) (Signature, error) {
	sig, err := Sign(priv, digest)
	builder := NewAuditEventBuilder(AuditEventSigning)
	if err != nil {
		builder.WithError(err)
	}
	e.audit.OnSigning(builder.Build())
	return sig, err
}

// Verify checks a signature and records the verdict.
func (e *Engine) Verify(pub Point, digest Scalar, sig Signature) bool {
	ok := Verify(pub, digest, sig)
	e.audit.OnVerification(NewAuditEventBuilder(AuditEventVerification).
		WithMetadata("valid", ok).Build())
	return ok
}

// SharedSecret derives an ECDH shared key and records the outcome.
func (e *Engine) SharedSecret(priv Scalar, peer Point, info []byte) ([32]byte, error) {
	key, err := SharedSecret(priv, peer, info)
	builder := NewAuditEventBuilder(AuditEventKeyAgreement)
	if err != nil {
		builder.WithError(err)
	}
	e.audit.OnKeyAgreement(builder.Build())
	return key, err
}

// ValidatePublicKey applies the full public-key acceptance rule, recording
// rejections as validation failures.
func (e *Engine) ValidatePublicKey(b []byte) (Point, error) {
	q, err := ValidatePublicKeyBytes(b)
	if err != nil {
		e.audit.OnValidationFailure(
			NewAuditEventBuilder(AuditEventValidationFailure).WithError(err).Build())
	}
	return q, err
}
