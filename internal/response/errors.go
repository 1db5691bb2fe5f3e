package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrSessionInvalidated ErrCode = "SESSION_INVALIDATED"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrTokenExpired       ErrCode = "TOKEN_EXPIRED"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden        ErrCode = "FORBIDDEN"
	ErrPermissionDenied ErrCode = "PERMISSION_DENIED"
	ErrAdminAccessOnly  ErrCode = "ADMIN_ACCESS_ONLY"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Schedule validation ───────────────────────────────────────────
	ErrIncompleteEntry    ErrCode = "INCOMPLETE_ENTRY"
	ErrNoCompleteSchedule ErrCode = "NO_COMPLETE_SCHEDULE"
	ErrInvalidDayOfWeek   ErrCode = "INVALID_DAY_OF_WEEK"
	ErrInvalidTimeRange   ErrCode = "INVALID_TIME_RANGE"
	ErrDuplicateEntry     ErrCode = "DUPLICATE_ENTRY"
	ErrOverlappingEntry   ErrCode = "OVERLAPPING_ENTRY"

	// ─── Enrollment / referential ──────────────────────────────────────
	ErrDuplicateSubjectEnrollment ErrCode = "DUPLICATE_SUBJECT_ENROLLMENT"
	ErrSelectionOutsideDepartment ErrCode = "SELECTION_OUTSIDE_DEPARTMENT"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound         ErrCode = "NOT_FOUND"
	ErrConflict         ErrCode = "CONFLICT"
	ErrDependencyExists ErrCode = "DEPENDENCY_EXISTS"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Email or password is incorrect."
	case ErrSessionInvalidated:
		return "Your session has ended. Please sign in again."
	case ErrTokenRequired:
		return "An authentication token is required."
	case ErrTokenInvalid:
		return "The authentication token is not valid."
	case ErrTokenExpired:
		return "The authentication token has expired."

	// ─── Authorization ─────────────────────────────────────────────────
	case ErrForbidden:
		return "You do not have permission to access this resource."
	case ErrPermissionDenied:
		return "Permission denied."
	case ErrAdminAccessOnly:
		return "This resource is restricted to console administrators."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please review your input."
	case ErrInvalidID:
		return "The ID format is not valid."
	case ErrInvalidPayload:
		return "The request payload is not valid."

	// ─── Schedule validation ───────────────────────────────────────────
	case ErrIncompleteEntry:
		return "A schedule row is only partially filled in. Complete it or remove it."
	case ErrNoCompleteSchedule:
		return "A class needs at least one complete time slot."
	case ErrInvalidDayOfWeek:
		return "The day of week must be a number from 1 (Monday) to 7 (Sunday)."
	case ErrInvalidTimeRange:
		return "A time slot must start before it ends."
	case ErrDuplicateEntry:
		return "The same time slot appears more than once."
	case ErrOverlappingEntry:
		return "Two time slots on the same day overlap."

	// ─── Enrollment / referential ──────────────────────────────────────
	case ErrDuplicateSubjectEnrollment:
		return "The student is already enrolled in another class teaching this subject."
	case ErrSelectionOutsideDepartment:
		return "The subject, section, and teacher must all belong to the selected department."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "The requested resource was not found."
	case ErrConflict:
		return "The resource already exists."
	case ErrDependencyExists:
		return "This record cannot be deleted because other records still depend on it."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
