package seeder

import (
	"errors"
	"math/rand"
	"time"

	"backend_chiccit/pkg/models"
)

const restViolationProbability = 0.042

// seedChiccitLabour writes clock-in/out pairs for the seeded roster across
// every open trading day. Most events are compliant; a small probabilistic
// slice gets a rest violation (short turnaround from the previous close), and
// exactly three break violations are appended so the compliance screens always
// have deterministic rows to show.
func seedChiccitLabour(s *Seeder, p Params) (Result, error) {
	if err := requireOrg(p); err != nil {
		return nil, err
	}

	var employees []models.EmployeeProfile
	if err := s.Store.ListByOrg(&employees, p.OrgID); err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, errors.New("no employee profiles found; run seed_chiccit_staff first")
	}

	r := p.rng()

	var events []models.ClockEvent
	restViolations := 0
	for _, day := range openDays(seedStart, seedEnd) {
		for _, emp := range employees {
			if !worksToday(r, emp.EmploymentType, day.Weekday()) {
				continue
			}

			startHour := intBetween(r, 9, 16)
			shiftHours := shiftLength(r, emp.EmploymentType)
			clockIn := day.Add(time.Duration(startHour)*time.Hour + time.Duration(intBetween(r, 0, 45))*time.Minute)
			clockOut := clockIn.Add(time.Duration(shiftHours) * time.Hour)

			breakMinutes := 30
			if shiftHours <= 5 {
				breakMinutes = 0
			}

			status := models.ComplianceOK
			if chance(r, restViolationProbability) {
				// Pull the clock-in early enough that fewer than 10 hours
				// separate it from the previous day's close.
				clockIn = day.Add(6 * time.Hour)
				clockOut = clockIn.Add(time.Duration(shiftHours) * time.Hour)
				status = models.ComplianceRestViolation
				restViolations++
			}

			events = append(events, models.ClockEvent{
				OrgID:            p.OrgID,
				EmployeeID:       emp.ID,
				ShiftDate:        day,
				ClockIn:          clockIn,
				ClockOut:         clockOut,
				BreakMinutes:     breakMinutes,
				ComplianceStatus: status,
			})
		}
	}

	// Three fixed break violations: long shifts recorded with no break taken.
	breakDays := []time.Time{
		time.Date(2025, time.December, 19, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.February, 14, 0, 0, 0, 0, time.UTC),
	}
	for i, day := range breakDays {
		emp := employees[i%len(employees)]
		clockIn := day.Add(11 * time.Hour)
		events = append(events, models.ClockEvent{
			OrgID:            p.OrgID,
			EmployeeID:       emp.ID,
			ShiftDate:        day,
			ClockIn:          clockIn,
			ClockOut:         clockIn.Add(9 * time.Hour),
			BreakMinutes:     0,
			ComplianceStatus: models.ComplianceBreakViolation,
		})
	}

	if err := s.Store.CreateInBatches(&events, insertBatchSize); err != nil {
		return nil, err
	}

	s.Log.WithField("clock_events", len(events)).Info("labour history seeded")

	return Result{
		"employees":        len(employees),
		"clock_events":     len(events),
		"rest_violations":  restViolations,
		"break_violations": len(breakDays),
	}, nil
}

// worksToday rolls whether an employee is rostered on a given trading day.
// Full-timers work most days, casuals cluster on the weekend.
func worksToday(r *rand.Rand, typ models.EmploymentType, wd time.Weekday) bool {
	weekend := wd == time.Friday || wd == time.Saturday || wd == time.Sunday
	switch typ {
	case models.EmploymentFullTime:
		return chance(r, 0.85)
	case models.EmploymentPartTime:
		if weekend {
			return chance(r, 0.70)
		}
		return chance(r, 0.45)
	default:
		if weekend {
			return chance(r, 0.80)
		}
		return chance(r, 0.25)
	}
}

func shiftLength(r *rand.Rand, typ models.EmploymentType) int {
	switch typ {
	case models.EmploymentFullTime:
		return intBetween(r, 7, 9)
	case models.EmploymentPartTime:
		return intBetween(r, 5, 7)
	default:
		return intBetween(r, 3, 6)
	}
}
