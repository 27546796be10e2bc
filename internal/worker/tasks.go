package worker

const (
	TypeDepartureReminder = "booking:departure_reminder"
)

type DepartureReminderPayload struct {
	BookingID   string `json:"booking_id"`
	ClinicName  string `json:"clinic_name"`
	TokenNumber int    `json:"token_number"`
	TimeToLeave int    `json:"time_to_leave"`
	State       string `json:"state"`
}
