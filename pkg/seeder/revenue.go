package seeder

import (
	"fmt"
	"time"

	"backend_chiccit/pkg/models"
	"backend_chiccit/pkg/utils"

	"github.com/google/uuid"
)

// Weekday revenue targets in dollars, before the seasonal multiplier.
// Monday is absent — the venue is closed.
var weekdayRevenue = map[time.Weekday]float64{
	time.Tuesday:   3800,
	time.Wednesday: 4200,
	time.Thursday:  4600,
	time.Friday:    6800,
	time.Saturday:  7400,
	time.Sunday:    5200,
}

const (
	voidProbability         = 0.021
	cashVarianceProbability = 0.038
	maxCashVariance         = 9.50
	insertBatchSize         = 500
)

// seedChiccitRevenue generates a plausible trading history: one batch of
// orders per open day whose totals sum near the weekday target, with voids
// and cash-till variances injected at small fixed probabilities. Voided
// orders emit no payment; a varied payment never exceeds its order total.
func seedChiccitRevenue(s *Seeder, p Params) (Result, error) {
	if err := requireOrg(p); err != nil {
		return nil, err
	}
	r := p.rng()

	var orders []models.Order
	days := openDays(seedStart, seedEnd)
	for _, day := range days {
		target := weekdayRevenue[day.Weekday()] * monthMultiplier(day.Month()) * jitter(r, 0.12)

		orderCount := int(target / 85)
		orderCount = intBetween(r, orderCount-orderCount/5, orderCount+orderCount/5)
		if orderCount < 8 {
			orderCount = 8
		}

		perOrder := target / float64(orderCount)
		for i := 0; i < orderCount; i++ {
			period := models.ServicePeriodDinner
			if chance(r, 0.38) {
				period = models.ServicePeriodLunch
			}
			status := models.OrderStatusCompleted
			if chance(r, voidProbability) {
				status = models.OrderStatusVoided
			}
			orders = append(orders, models.Order{
				OrgID:         p.OrgID,
				OrderNumber:   fmt.Sprintf("ORD-%s", uuid.New().String()[:8]),
				BusinessDate:  day,
				ServicePeriod: period,
				Covers:        intBetween(r, 2, 6),
				Total:         utils.Round2(perOrder * jitter(r, 0.30)),
				Status:        status,
			})
		}
	}

	if err := s.Store.CreateInBatches(&orders, insertBatchSize); err != nil {
		return nil, err
	}

	var payments []models.Payment
	voided := 0
	varied := 0
	for _, order := range orders {
		if order.Status == models.OrderStatusVoided {
			voided++
			continue
		}
		method := models.PaymentMethodCard
		if chance(r, 0.35) {
			method = models.PaymentMethodCash
		}
		amount := order.Total
		variance := 0.0
		if method == models.PaymentMethodCash && chance(r, cashVarianceProbability) {
			variance = between(r, 0.05, maxCashVariance)
			if variance >= order.Total {
				variance = order.Total / 2
			}
			amount = utils.Round2(order.Total - variance)
			variance = utils.Round2(variance)
			varied++
		}
		payments = append(payments, models.Payment{
			OrgID:        p.OrgID,
			OrderID:      order.ID,
			Method:       method,
			Amount:       amount,
			CashVariance: variance,
			SettledAt:    order.BusinessDate.Add(time.Duration(intBetween(r, 12, 22)) * time.Hour),
		})
	}

	if err := s.Store.CreateInBatches(&payments, insertBatchSize); err != nil {
		return nil, err
	}

	s.Log.WithField("orders", len(orders)).Info("revenue history seeded")

	return Result{
		"days":           len(days),
		"orders":         len(orders),
		"payments":       len(payments),
		"voided":         voided,
		"cash_variances": varied,
	}, nil
}
