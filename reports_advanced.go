package crowdfolio

import (
	"math"
	"slices"
	"time"

	"github.com/etnz/crowdfolio/date"
)

// streakGap is the largest number of days between two investments of the same streak.
const streakGap = 31

// concentrationTop is the number of projects counted in the concentration.
const concentrationTop = 5

// AdvancedStats holds the investing habits derived from the transactions.
type AdvancedStats struct {
	MonthlyInvestmentRate Money   `json:"monthlyInvestmentRate"`
	LongestStreak         int     `json:"longestStreak"` // investments in a row
	SeasonalMonth         int     `json:"seasonalMonth"` // 0 for January
	SeasonalCount         int     `json:"seasonalCount"`
	Concentration         Percent `json:"concentration"` // share of the top projects, rounded
	AverageDaysBetween    float64 `json:"averageDaysBetween"`
}

// SeasonalMonthName returns the English name of the busiest month.
func (s AdvancedStats) SeasonalMonthName() string {
	return time.Month(s.SeasonalMonth + 1).String()
}

// NewAdvancedStats computes the investing habits of txs.
//
// The monthly investment rate is the sum of the positive amounts divided by
// the number of distinct months with any transaction. The longest streak
// counts consecutive investments no more than 31 days apart. The seasonal
// month is the calendar month with the most transactions, the earliest one
// on ties. The concentration is the share of the five largest projects, by
// the absolute total of all their transactions, in all the projects.
func NewAdvancedStats(txs []Transaction) AdvancedStats {
	var s AdvancedStats
	sorted := Chronological(txs)

	var inflow Money
	months := make(map[date.Range]bool)
	var investments []date.Date
	var counts [12]int
	perProject := make(map[string]Money)
	for _, t := range sorted {
		counts[t.Date.Month()-1]++
		months[date.Monthly.Range(t.Date)] = true
		if t.Amount.IsPositive() {
			inflow = inflow.Add(t.Amount)
		}
		if t.HasProject() {
			perProject[t.Project] = perProject[t.Project].Add(t.Abs())
		}
		if t.Kind.IsCapitalIn() {
			investments = append(investments, t.Date)
		}
	}

	if len(months) > 0 {
		s.MonthlyInvestmentRate = inflow.DivInt(len(months)).Cents()
	}
	s.LongestStreak = longestStreak(investments)
	for m, c := range counts {
		if c > s.SeasonalCount {
			s.SeasonalMonth, s.SeasonalCount = m, c
		}
	}
	s.Concentration = concentration(perProject)
	if n := len(sorted); n >= 2 {
		days := sorted[0].Date.DaysUntil(sorted[n-1].Date)
		s.AverageDaysBetween = finite(float64(days) / float64(n-1))
	}
	return s
}

// longestStreak returns the longest run of sorted dates with gaps of at most streakGap days.
func longestStreak(dates []date.Date) int {
	longest, run := 0, 0
	for i, d := range dates {
		if i > 0 && dates[i-1].DaysUntil(d) <= streakGap {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return longest
}

func concentration(perProject map[string]Money) Percent {
	amounts := make([]Money, 0, len(perProject))
	var total Money
	for _, v := range perProject {
		amounts = append(amounts, v.Abs())
		total = total.Add(v.Abs())
	}
	slices.SortFunc(amounts, func(a, b Money) int { return b.Cmp(a) })
	top := sum(amounts[:min(concentrationTop, len(amounts))]...)
	return Percent(math.Round(float64(top.Ratio(total))))
}
