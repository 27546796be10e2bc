package models

// TransportMode is how the patient plans to reach the clinic.
type TransportMode string

const (
	TransportCar  TransportMode = "car"
	TransportBike TransportMode = "bike"
	TransportWalk TransportMode = "walk"
)

func (m TransportMode) Valid() bool {
	switch m {
	case TransportCar, TransportBike, TransportWalk:
		return true
	}
	return false
}

// Booking is a single queue membership at a clinic: either the one active
// booking or an archived entry in history. Archived bookings are never
// mutated again.
type Booking struct {
	ID            string        `json:"id"`
	ClinicID      string        `json:"clinic_id"`
	ClinicName    string        `json:"clinic_name"`
	DoctorName    string        `json:"doctor_name"`
	TokenNumber   int           `json:"token_number"`
	ServingToken  int           `json:"serving_token"`
	TransportMode TransportMode `json:"transport_mode"`
	TravelTime    int           `json:"travel_time"`
	AvgWaitTime   int           `json:"avg_wait_time"`
	IsEmergency   bool          `json:"is_emergency"`
	BookedAt      int64         `json:"booked_at"` // epoch millis
}

// Fulfilled reports whether the serving token has reached or passed the
// user's token, meaning the queue has arrived at the user's turn.
func (b *Booking) Fulfilled() bool {
	return b.ServingToken >= b.TokenNumber
}
