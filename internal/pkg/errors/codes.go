package errors

import "net/http"

var (
	ErrRouteNotFound = New(
		"ROUTE_NOT_FOUND",
		"Route not found",
		http.StatusNotFound,
	)

	ErrStopNotFound = New(
		"STOP_NOT_FOUND",
		"Stop not found",
		http.StatusNotFound,
	)

	ErrStaffNotFound = New(
		"STAFF_NOT_FOUND",
		"Staff user not found",
		http.StatusNotFound,
	)

	ErrNotificationNotFound = New(
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		http.StatusNotFound,
	)

	ErrDictionaryNotFound = New(
		"DICTIONARY_NOT_FOUND",
		"Dictionary record not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidSchedule = New(
		"INVALID_SCHEDULE",
		"Departure times must be in HH:MM format",
		http.StatusBadRequest,
	)

	ErrValidationFailed = New(
		"VALIDATION_FAILED",
		"Record failed validation",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authorization required",
		http.StatusUnauthorized,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
