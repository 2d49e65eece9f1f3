package usecasecontract

// IValidator validates user-supplied values beyond struct binding.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
}
