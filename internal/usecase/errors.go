package usecase

import "errors"

// Operational errors surfaced to handlers. Anything not listed here is
// treated as unexpected and reported as an internal server error with the
// message suppressed.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrBikeNotFound     = errors.New("bike not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrDocumentNotFound = errors.New("document not found")
	ErrTokenNotFound    = errors.New("token not found")

	// ErrBikeUnavailable means the availability flag was already false when
	// the booking tried to reserve the bike.
	ErrBikeUnavailable = errors.New("bike is not available")

	// ErrIdentityNotVerified gates booking creation on an approved document.
	ErrIdentityNotVerified = errors.New("identity document not approved")

	ErrForbidden = errors.New("operation not permitted for this role")

	// ErrInvalidTransition is returned when the requested booking status
	// change is not in the allowed-transitions table.
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// ErrSignatureMismatch is returned when the recomputed payment signature
	// does not equal the one supplied by the gateway callback.
	ErrSignatureMismatch = errors.New("payment signature verification failed")

	// ErrOwnerRoleTaken enforces the single-owner invariant.
	ErrOwnerRoleTaken = errors.New("another user already holds the owner role")

	ErrInvalidRole = errors.New("unknown role")

	// ErrDocumentReviewed means the document was already approved or rejected.
	ErrDocumentReviewed = errors.New("document has already been reviewed")

	ErrRejectionReasonRequired = errors.New("rejecting a document requires a reason")
	ErrApprovalReasonForbidden = errors.New("approving a document must not carry a reason")

	ErrBookingNotCompleted = errors.New("booking is not completed")
	ErrNotBookingOwner     = errors.New("booking belongs to another user")
)
