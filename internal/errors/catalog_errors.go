package errors

import "errors"

var (
	ErrClinicNotFound = errors.New("clinic not found")
	ErrDoctorNotFound = errors.New("no doctor available at this clinic")
)
