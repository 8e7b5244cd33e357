package seeder

import (
	"fmt"
	"time"

	"backend_chiccit/pkg/models"
)

// awardMinimums maps classification level to the minimum hourly rate under
// the hospitality award.
var awardMinimums = map[int]float64{
	1: 23.20,
	2: 24.10,
	3: 25.05,
	4: 26.40,
	5: 28.30,
}

// seedChiccitStaff inserts the fixed roster: 4 full-time, 8 part-time and 10
// casual employees, plus three certification documents. Sofia Nguyen is paid
// under the level 2 award minimum on purpose so the underpayment checker has
// a case to detect, and Ryan's food safety certificate is already expired.
func seedChiccitStaff(s *Seeder, p Params) (Result, error) {
	if err := requireOrg(p); err != nil {
		return nil, err
	}

	type staffSpec struct {
		name  string
		typ   models.EmploymentType
		level int
		rate  float64
		start string
	}

	roster := []staffSpec{
		// Full time
		{"Ryan Calloway", models.EmploymentFullTime, 5, 38.50, "2023-02-13"},
		{"Ben Okafor", models.EmploymentFullTime, 4, 33.20, "2023-07-03"},
		{"Emma Whitfield", models.EmploymentFullTime, 4, 32.80, "2024-01-22"},
		{"Daniel Marsh", models.EmploymentFullTime, 3, 29.90, "2024-05-06"},
		// Part time
		{"Priya Raman", models.EmploymentPartTime, 3, 27.40, "2024-03-11"},
		{"Lucas Ferreira", models.EmploymentPartTime, 3, 26.80, "2024-06-17"},
		{"Grace Donnelly", models.EmploymentPartTime, 2, 25.60, "2024-08-05"},
		{"Tom Hartley", models.EmploymentPartTime, 2, 25.10, "2024-09-30"},
		{"Mei Tanaka", models.EmploymentPartTime, 2, 24.90, "2024-11-18"},
		{"Jack Sullivan", models.EmploymentPartTime, 2, 24.50, "2025-01-20"},
		{"Aisha Patel", models.EmploymentPartTime, 1, 23.90, "2025-02-24"},
		{"Oliver Brennan", models.EmploymentPartTime, 1, 23.60, "2025-04-14"},
		// Casual
		{"Chloe Martin", models.EmploymentCasual, 2, 30.10, "2025-03-03"},
		{"Noah Kim", models.EmploymentCasual, 2, 30.10, "2025-03-03"},
		{"Sofia Nguyen", models.EmploymentCasual, 2, 21.40, "2025-05-12"}, // below the 24.10 award minimum
		{"Ethan Walsh", models.EmploymentCasual, 1, 29.00, "2025-06-09"},
		{"Isla Thompson", models.EmploymentCasual, 1, 29.00, "2025-06-23"},
		{"Leo Costa", models.EmploymentCasual, 1, 29.00, "2025-07-07"},
		{"Zara Ahmed", models.EmploymentCasual, 1, 29.00, "2025-08-04"},
		{"Max Petrov", models.EmploymentCasual, 1, 29.00, "2025-08-18"},
		{"Ruby Fletcher", models.EmploymentCasual, 1, 29.00, "2025-09-01"},
		{"Harry Lindqvist", models.EmploymentCasual, 1, 29.00, "2025-09-15"},
	}

	profiles := make([]models.EmployeeProfile, 0, len(roster))
	for _, spec := range roster {
		start, err := time.Parse("2006-01-02", spec.start)
		if err != nil {
			return nil, fmt.Errorf("bad roster start date %q: %w", spec.start, err)
		}
		profiles = append(profiles, models.EmployeeProfile{
			OrgID:               p.OrgID,
			FullName:            spec.name,
			EmploymentType:      spec.typ,
			ClassificationLevel: spec.level,
			HourlyRate:          spec.rate,
			StartDate:           start,
			IsActive:            true,
		})
	}
	if err := s.Store.Create(&profiles); err != nil {
		return nil, err
	}

	employeeIDs := make(map[string]int, len(profiles))
	for _, profile := range profiles {
		employeeIDs[profile.FullName] = profile.ID
	}

	documents := []models.EmployeeDocument{
		{
			OrgID:      p.OrgID,
			EmployeeID: employeeIDs["Ryan Calloway"],
			DocType:    "food_safety_certificate",
			Status:     models.DocumentStatusExpired,
			ExpiresAt:  time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			OrgID:      p.OrgID,
			EmployeeID: employeeIDs["Ben Okafor"],
			DocType:    "rsa_certificate",
			Status:     models.DocumentStatusCurrent,
			ExpiresAt:  time.Date(2027, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			OrgID:      p.OrgID,
			EmployeeID: employeeIDs["Emma Whitfield"],
			DocType:    "first_aid_certificate",
			Status:     models.DocumentStatusCurrent,
			ExpiresAt:  time.Date(2026, time.November, 15, 0, 0, 0, 0, time.UTC),
		},
	}
	if err := s.Store.Create(&documents); err != nil {
		return nil, err
	}

	return Result{
		"employee_profiles":  len(profiles),
		"employee_documents": len(documents),
	}, nil
}
