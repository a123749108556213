package apperrors

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrAnimalNotFound      = errors.New("animal not found")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrPerformanceNotFound = errors.New("performance not found")
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrHumanActNotFound    = errors.New("human act not found")
	ErrAnimalActNotFound   = errors.New("animal act not found")
	ErrSessionNotFound     = errors.New("session not found")

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrEmailRequired      = errors.New("email is required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidToken       = errors.New("invalid token")
)

var notFound = []error{
	ErrUserNotFound,
	ErrAnimalNotFound,
	ErrEmployeeNotFound,
	ErrPerformanceNotFound,
	ErrTicketNotFound,
	ErrHumanActNotFound,
	ErrAnimalActNotFound,
}

// IsNotFound 判斷錯誤是否為任一實體的 not found
func IsNotFound(err error) bool {
	for _, target := range notFound {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
