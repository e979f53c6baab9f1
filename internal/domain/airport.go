package domain

import "strings"

type Airport struct {
	ID   int64  `form:"-"`
	Code string `form:"code" validate:"required,alphaunicode"`
	City string `form:"city" validate:"required,alphaunicode"`
}

// NewAirport trims its input and returns the airport only if it is valid.
func NewAirport(code, city string) (Airport, error) {
	a := Airport{Code: strings.TrimSpace(code), City: strings.TrimSpace(city)}
	if err := a.Validate(); err != nil {
		return Airport{}, err
	}
	return a, nil
}

func (a Airport) Validate() error {
	return validateStruct(a)
}

func (a Airport) String() string {
	return a.City + " (" + a.Code + ")"
}
