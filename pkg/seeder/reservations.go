package seeder

import (
	"time"

	"backend_chiccit/pkg/models"
)

// Reservation volume per weekday, before seasonal scaling.
var weekdayBookings = map[time.Weekday]int{
	time.Tuesday:   14,
	time.Wednesday: 17,
	time.Thursday:  21,
	time.Friday:    34,
	time.Saturday:  38,
	time.Sunday:    24,
}

var guestNames = []string{
	"A. Moretti", "S. Clarke", "J. Huang", "L. Rossi", "M. O'Brien",
	"K. Watanabe", "D. Foster", "R. Silva", "T. Andersson", "P. Novak",
	"H. Schmidt", "C. Laurent", "N. Popescu", "B. Janssen", "E. Castillo",
}

// seedChiccitReservations writes bookings for every open day. Roughly 6% of
// bookings no-show and 4% cancel; the rest complete.
func seedChiccitReservations(s *Seeder, p Params) (Result, error) {
	if err := requireOrg(p); err != nil {
		return nil, err
	}
	r := p.rng()

	sources := []models.ReservationSource{
		models.ReservationSourceDirect,
		models.ReservationSourceGoogle,
		models.ReservationSourceOpenTable,
		models.ReservationSourcePhone,
		models.ReservationSourceWalkIn,
	}

	var rows []models.Reservation
	noShows := 0
	cancelled := 0
	for _, day := range openDays(seedStart, seedEnd) {
		count := int(float64(weekdayBookings[day.Weekday()]) * monthMultiplier(day.Month()) * jitter(r, 0.15))
		if count < 4 {
			count = 4
		}
		for i := 0; i < count; i++ {
			status := models.ReservationCompleted
			switch {
			case chance(r, 0.06):
				status = models.ReservationNoShow
				noShows++
			case chance(r, 0.04):
				status = models.ReservationCancelled
				cancelled++
			}
			rows = append(rows, models.Reservation{
				OrgID:       p.OrgID,
				BookingDate: day,
				GuestName:   pick(r, guestNames),
				PartySize:   intBetween(r, 2, 8),
				Source:      pick(r, sources),
				Status:      status,
			})
		}
	}

	if err := s.Store.CreateInBatches(&rows, insertBatchSize); err != nil {
		return nil, err
	}

	return Result{
		"reservations": len(rows),
		"no_shows":     noShows,
		"cancelled":    cancelled,
	}, nil
}
