package formengine

import "time"

// Pregnancy arithmetic counts from the last menstrual period (LMP).
const gestationDays = 280

// Consultation is one planned antenatal visit.
type Consultation struct {
	Week int       `json:"week"`
	Date time.Time `json:"date"`
}

// EstimatedDueDate is LMP plus 280 days.
func EstimatedDueDate(lmp time.Time) time.Time {
	return lmp.AddDate(0, 0, gestationDays)
}

// PlanConsultations builds the antenatal visit calendar from the LMP:
// every 4 weeks until week 28, every 2 weeks until week 36, then weekly
// until week 41.
func PlanConsultations(lmp time.Time) []Consultation {
	var plan []Consultation
	add := func(week int) {
		plan = append(plan, Consultation{Week: week, Date: lmp.AddDate(0, 0, week*7)})
	}
	for week := 12; week <= 28; week += 4 {
		add(week)
	}
	for week := 30; week <= 36; week += 2 {
		add(week)
	}
	for week := 37; week <= 41; week++ {
		add(week)
	}
	return plan
}

// UpcomingConsultations filters the plan to visits on or after now.
func UpcomingConsultations(lmp, now time.Time) []Consultation {
	var upcoming []Consultation
	for _, c := range PlanConsultations(lmp) {
		if !c.Date.Before(now) {
			upcoming = append(upcoming, c)
		}
	}
	return upcoming
}
