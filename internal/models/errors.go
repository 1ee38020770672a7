package models

import "errors"

// Domain errors surfaced to the view layer. Storage failures never appear
// here; they are absorbed and logged at the store boundary.
var (
	// ErrCourseNotFound is returned when a course ID is absent from the catalog
	ErrCourseNotFound = errors.New("course not found")
	// ErrLessonNotFound is returned when a lesson ID does not exist in a course curriculum
	ErrLessonNotFound = errors.New("lesson not found")
	// ErrPlanNotFound is returned when a plan name is absent from the pricing catalog
	ErrPlanNotFound = errors.New("plan not found")
	// ErrAccountExists is returned by signup when the email is already registered
	ErrAccountExists = errors.New("an account with this email already exists")
	// ErrInvalidCredentials is returned by login on unknown email or password mismatch
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrCartEmpty is returned by checkout when the cart has no items
	ErrCartEmpty = errors.New("cart is empty")
)
