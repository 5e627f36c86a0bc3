package domain

// AuthMethod names a way of proving identity.
type AuthMethod string

const (
	AuthMethodPIN       AuthMethod = "pin"
	AuthMethodBiometric AuthMethod = "biometric"
)

// BiometricType is the kind of sensor that accepted the user.
type BiometricType string

const (
	BiometricFingerprint BiometricType = "fingerprint"
	BiometricFace        BiometricType = "face"
	BiometricIris        BiometricType = "iris"
)

// BiometricResult is the answer of the platform authenticator.
type BiometricResult struct {
	Success bool          `json:"success"`
	Error   string        `json:"error,omitempty"`
	Type    BiometricType `json:"biometricType,omitempty"`
}

// AuthState records which challenges were passed during this app session.
type AuthState struct {
	HasValidatedPIN       bool `json:"hasValidatedPin"`
	HasValidatedBiometric bool `json:"hasValidatedBiometric"`
}

// Has reports whether the challenge for m was passed.
func (s AuthState) Has(m AuthMethod) bool {
	switch m {
	case AuthMethodPIN:
		return s.HasValidatedPIN
	case AuthMethodBiometric:
		return s.HasValidatedBiometric
	default:
		return false
	}
}

// Any reports whether any challenge was passed.
func (s AuthState) Any() bool {
	return s.HasValidatedPIN || s.HasValidatedBiometric
}
