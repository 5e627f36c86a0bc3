package domain

import "errors"

// Error messages are shown to the user verbatim.
var (
	// ErrAccountNotFound is the normal outcome of looking up an unknown account.
	ErrAccountNotFound = errors.New("Account number not found")

	// ErrInsufficientFunds is the transfer service rejecting the amount.
	ErrInsufficientFunds = errors.New("Insufficient funds for this transaction")

	// ErrNetwork is a transient failure of the remote service.
	ErrNetwork = errors.New("Network error occurred. Please try again.")

	// ErrNoCurrentTransfer means the confirmation step was reached without a
	// transfer in progress.
	ErrNoCurrentTransfer = errors.New("Transfer data not found")

	// ErrIncompleteTransfer means the draft still misses a required field.
	ErrIncompleteTransfer = errors.New("Transfer details are incomplete")

	// ErrInvalidTransfer means the draft fails the transfer rules.
	ErrInvalidTransfer = errors.New("Transfer details are invalid")

	// ErrSubmissionInProgress is returned while another submission is in flight.
	ErrSubmissionInProgress = errors.New("A transfer is already being processed")

	// ErrNotAuthenticated means no authentication gate has been passed.
	ErrNotAuthenticated = errors.New("Please verify your identity to continue")

	// ErrGateNotChallenging is returned for input given to a gate that is not
	// waiting for any.
	ErrGateNotChallenging = errors.New("Authentication is not in progress")

	// ErrLockedOut is the PIN challenge running out of attempts.
	ErrLockedOut = errors.New("Too many failed PIN attempts. Please try again later or contact support.")

	// ErrBiometricUnavailable means the device cannot run a biometric prompt.
	ErrBiometricUnavailable = errors.New("Biometric authentication is not available on this device")

	// ErrBiometricFailed is a rejected biometric prompt; the user may retry.
	ErrBiometricFailed = errors.New("Authentication failed. Please try again.")
)

var userFacing = []error{
	ErrAccountNotFound,
	ErrInsufficientFunds,
	ErrNetwork,
	ErrNoCurrentTransfer,
	ErrIncompleteTransfer,
	ErrInvalidTransfer,
	ErrSubmissionInProgress,
	ErrNotAuthenticated,
	ErrGateNotChallenging,
	ErrLockedOut,
	ErrBiometricUnavailable,
	ErrBiometricFailed,
}

// UserMessage returns the text to show for err. Wrapped domain errors are
// reduced to their own message; anything else is reported generically.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, known := range userFacing {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return "Unknown error occurred"
}
