package catalog

import (
	"testing"

	"github.com/vogiaan1904/smartq-queue/internal/errors"
	"github.com/vogiaan1904/smartq-queue/internal/models"
)

func TestClinicLookup(t *testing.T) {
	c := New()

	cl, err := c.Clinic("1")
	if err != nil {
		t.Fatalf("Clinic(1): %v", err)
	}
	if cl.Name != "City Dental Clinic" {
		t.Fatalf("clinic name = %q", cl.Name)
	}

	if _, err := c.Clinic("999"); err != errors.ErrClinicNotFound {
		t.Fatalf("Clinic(999): got %v, want ErrClinicNotFound", err)
	}
}

func TestClinicsFilter(t *testing.T) {
	c := New()

	if got := len(c.Clinics("")); got != 6 {
		t.Fatalf("all clinics = %d, want 6", got)
	}
	if got := len(c.Clinics("all")); got != 6 {
		t.Fatalf("clinics(all) = %d, want 6", got)
	}
	if got := len(c.Clinics("dentist")); got != 2 {
		t.Fatalf("dentist clinics = %d, want 2", got)
	}
	if got := len(c.Clinics("labs")); got != 1 {
		t.Fatalf("labs clinics = %d, want 1", got)
	}
}

func TestDoctorForClinic(t *testing.T) {
	c := New()

	d, err := c.DoctorForClinic("3")
	if err != nil {
		t.Fatalf("DoctorForClinic(3): %v", err)
	}
	if d.Name != "Dr. Priya Sharma" {
		t.Fatalf("doctor name = %q", d.Name)
	}

	if _, err := c.DoctorForClinic("999"); err != errors.ErrDoctorNotFound {
		t.Fatalf("DoctorForClinic(999): got %v, want ErrDoctorNotFound", err)
	}
}

func TestTravelTime(t *testing.T) {
	c := New()

	cases := []struct {
		mode models.TransportMode
		want int
	}{
		{models.TransportCar, 20},
		{models.TransportBike, 15},
		{models.TransportWalk, 40},
	}
	for _, tt := range cases {
		got, err := c.TravelTime(tt.mode)
		if err != nil {
			t.Fatalf("TravelTime(%s): %v", tt.mode, err)
		}
		if got != tt.want {
			t.Fatalf("TravelTime(%s) = %d, want %d", tt.mode, got, tt.want)
		}
	}

	if _, err := c.TravelTime("teleport"); err != errors.ErrInvalidTransportMode {
		t.Fatalf("TravelTime(teleport): got %v, want ErrInvalidTransportMode", err)
	}
}
