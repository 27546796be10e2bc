package models

type Clinic struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Type              string  `json:"type"`
	Address           string  `json:"address"`
	AvgWaitPerPatient int     `json:"avg_wait_per_patient"` // minutes per queue position
	QueueLength       int     `json:"queue_length"`
	Lat               float64 `json:"lat"`
	Lng               float64 `json:"lng"`
	DistanceKm        float64 `json:"distance_km"`
	Rating            float64 `json:"rating"`
}

type DoctorStatus string

const (
	DoctorInCabin   DoctorStatus = "in_cabin"
	DoctorOnBreak   DoctorStatus = "on_break"
	DoctorAvailable DoctorStatus = "available"
)

type Doctor struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Specialty  string       `json:"specialty"`
	ClinicID   string       `json:"clinic_id"`
	Experience int          `json:"experience"`
	Patients   int          `json:"patients"`
	Reviews    int          `json:"reviews"`
	Rating     float64      `json:"rating"`
	Fee        int          `json:"fee"`
	Status     DoctorStatus `json:"status"`
}

// TransportOption pairs a transport mode with its estimated travel time to
// the clinic. Times are static estimates until a real routing provider is
// plugged in.
type TransportOption struct {
	Mode       TransportMode `json:"mode"`
	Label      string        `json:"label"`
	TravelTime int           `json:"travel_time"` // minutes
}
