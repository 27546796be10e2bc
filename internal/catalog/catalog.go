package catalog

import (
	"strings"

	"github.com/vogiaan1904/smartq-queue/internal/errors"
	"github.com/vogiaan1904/smartq-queue/internal/models"
)

// Catalog is the clinic and doctor directory. It is backed by a static seed
// dataset until a real directory service is wired in; lookups copy so callers
// cannot mutate the seed data.
type Catalog struct {
	clinics []models.Clinic
	doctors []models.Doctor
	modes   []models.TransportOption
}

func New() *Catalog {
	return &Catalog{
		clinics: clinics,
		doctors: doctors,
		modes:   transportOptions,
	}
}

// Clinics returns all clinics, optionally filtered by type. An empty or "all"
// filter returns everything.
func (c *Catalog) Clinics(clinicType string) []models.Clinic {
	out := make([]models.Clinic, 0, len(c.clinics))
	for _, cl := range c.clinics {
		if clinicType != "" && clinicType != "all" && !strings.EqualFold(cl.Type, clinicType) {
			continue
		}
		out = append(out, cl)
	}
	return out
}

func (c *Catalog) Clinic(id string) (models.Clinic, error) {
	for _, cl := range c.clinics {
		if cl.ID == id {
			return cl, nil
		}
	}
	return models.Clinic{}, errors.ErrClinicNotFound
}

// DoctorForClinic returns the doctor attending the given clinic.
func (c *Catalog) DoctorForClinic(clinicID string) (models.Doctor, error) {
	for _, d := range c.doctors {
		if d.ClinicID == clinicID {
			return d, nil
		}
	}
	return models.Doctor{}, errors.ErrDoctorNotFound
}

func (c *Catalog) TransportOptions() []models.TransportOption {
	out := make([]models.TransportOption, len(c.modes))
	copy(out, c.modes)
	return out
}

// TravelTime returns the estimated travel minutes for a transport mode.
func (c *Catalog) TravelTime(mode models.TransportMode) (int, error) {
	for _, m := range c.modes {
		if m.Mode == mode {
			return m.TravelTime, nil
		}
	}
	return 0, errors.ErrInvalidTransportMode
}
