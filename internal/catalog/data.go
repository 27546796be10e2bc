package catalog

import "github.com/vogiaan1904/smartq-queue/internal/models"

// Seed dataset, stands in for the clinic directory service.

var clinics = []models.Clinic{
	{
		ID:                "1",
		Name:              "City Dental Clinic",
		Type:              "dentist",
		Address:           "15, MG Road, Andheri East",
		AvgWaitPerPatient: 10,
		QueueLength:       4,
		Lat:               19.1136,
		Lng:               72.8697,
		DistanceKm:        1.2,
		Rating:            4.8,
	},
	{
		ID:                "2",
		Name:              "Lotus Medical Centre",
		Type:              "general",
		Address:           "42, Bandra West, Mumbai",
		AvgWaitPerPatient: 8,
		QueueLength:       12,
		Lat:               19.0596,
		Lng:               72.8295,
		DistanceKm:        2.5,
		Rating:            4.6,
	},
	{
		ID:                "3",
		Name:              "SkinCare Plus",
		Type:              "skin",
		Address:           "78, Juhu Lane, Mumbai",
		AvgWaitPerPatient: 15,
		QueueLength:       3,
		Lat:               19.0883,
		Lng:               72.8263,
		DistanceKm:        3.8,
		Rating:            4.9,
	},
	{
		ID:                "4",
		Name:              "ClearVision Eye Care",
		Type:              "eye",
		Address:           "23, Powai, Mumbai",
		AvgWaitPerPatient: 12,
		QueueLength:       8,
		Lat:               19.1176,
		Lng:               72.9060,
		DistanceKm:        5.1,
		Rating:            4.7,
	},
	{
		ID:                "5",
		Name:              "HealthFirst Labs",
		Type:              "labs",
		Address:           "56, Dadar, Mumbai",
		AvgWaitPerPatient: 5,
		QueueLength:       15,
		Lat:               19.0178,
		Lng:               72.8478,
		DistanceKm:        4.2,
		Rating:            4.5,
	},
	{
		ID:                "6",
		Name:              "Sharma Dental Studio",
		Type:              "dentist",
		Address:           "9, Malad West, Mumbai",
		AvgWaitPerPatient: 12,
		QueueLength:       6,
		Lat:               19.1874,
		Lng:               72.8484,
		DistanceKm:        1.8,
		Rating:            4.4,
	},
}

var doctors = []models.Doctor{
	{ID: "1", Name: "Dr. Aditi Kulkarni", Specialty: "Dentist", ClinicID: "1", Experience: 12, Patients: 500, Reviews: 340, Rating: 4.8, Fee: 499, Status: models.DoctorInCabin},
	{ID: "2", Name: "Dr. Rahul Mehta", Specialty: "General Physician", ClinicID: "2", Experience: 8, Patients: 350, Reviews: 210, Rating: 4.6, Fee: 399, Status: models.DoctorInCabin},
	{ID: "3", Name: "Dr. Priya Sharma", Specialty: "Dermatologist", ClinicID: "3", Experience: 15, Patients: 800, Reviews: 520, Rating: 4.9, Fee: 599, Status: models.DoctorAvailable},
	{ID: "4", Name: "Dr. Suresh Iyer", Specialty: "Ophthalmologist", ClinicID: "4", Experience: 10, Patients: 420, Reviews: 280, Rating: 4.7, Fee: 549, Status: models.DoctorInCabin},
	{ID: "5", Name: "Dr. Amit Verma", Specialty: "Pathologist", ClinicID: "5", Experience: 6, Patients: 200, Reviews: 150, Rating: 4.5, Fee: 299, Status: models.DoctorAvailable},
	{ID: "6", Name: "Dr. Nikhil Joshi", Specialty: "Dentist", ClinicID: "6", Experience: 7, Patients: 280, Reviews: 190, Rating: 4.4, Fee: 449, Status: models.DoctorOnBreak},
}

var transportOptions = []models.TransportOption{
	{Mode: models.TransportCar, Label: "Car", TravelTime: 20},
	{Mode: models.TransportBike, Label: "Bike", TravelTime: 15},
	{Mode: models.TransportWalk, Label: "Walk", TravelTime: 40},
}
