package domain

import "strings"

type Passenger struct {
	ID    int64  `form:"-"`
	First string `form:"first" validate:"required,alphaunicode"`
	Last  string `form:"last" validate:"required,alphaunicode"`
}

func NewPassenger(first, last string) (Passenger, error) {
	p := Passenger{First: strings.TrimSpace(first), Last: strings.TrimSpace(last)}
	if err := p.Validate(); err != nil {
		return Passenger{}, err
	}
	return p, nil
}

func (p Passenger) Validate() error {
	return validateStruct(p)
}

func (p Passenger) String() string {
	return p.First + " " + p.Last
}
