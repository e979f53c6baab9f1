package domain

import "strings"

// Registration is the sign-up form.
type Registration struct {
	Username     string `form:"username" validate:"required,max=150"`
	Email        string `form:"email" validate:"required,email"`
	Password     string `form:"password" validate:"required"`
	Confirmation string `form:"confirmation" validate:"required,eqfield=Password"`
}

func (r Registration) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	return validateStruct(r)
}
