package services

import (
	"sort"
	"time"

	"github.com/fuelhq/fuel/internal/models"
)

// DefaultHistoryDays is how many day buckets the history view returns when
// the caller does not ask for a specific limit.
const DefaultHistoryDays = 14

// historyFetchMultiplier sizes the over-fetch for history bucketing: day
// boundaries are unknown until rows are grouped, so the query must pull
// comfortably more rows than requested days.
const historyFetchMultiplier = 10

type DayTotals struct {
	Date     time.Time
	Calories int
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
}

// HistoryFetchLimit converts a requested day count into a row fetch limit.
func HistoryFetchLimit(days int) int {
	return days * historyFetchMultiplier
}

func mealVector(meal models.Meal) Vector {
	return Vector{
		Calories: float64(meal.Calories),
		Protein:  meal.ProteinG,
		Carbs:    meal.CarbsG,
		Fat:      meal.FatG,
		Fiber:    meal.FiberG,
	}
}

// SummarizeDay sums one day's meals. An empty day yields zero totals.
func SummarizeDay(date time.Time, meals []models.Meal) DayTotals {
	totals := DayTotals{Date: date}
	for _, meal := range meals {
		totals.Calories += meal.Calories
		totals.Protein += meal.ProteinG
		totals.Carbs += meal.CarbsG
		totals.Fat += meal.FatG
		totals.Fiber += meal.FiberG
	}
	return totals
}

// BucketHistory groups an arbitrarily ordered meal list by logged date, sums
// each bucket and returns the most recent `limit` days, newest first.
func BucketHistory(meals []models.Meal, limit int, location *time.Location) []DayTotals {
	if limit <= 0 {
		limit = DefaultHistoryDays
	}

	byDay := make(map[string]*DayTotals)
	for _, meal := range meals {
		day := DateAtLocation(meal.LoggedDate, location)
		key := FormatDay(day)
		bucket, exists := byDay[key]
		if !exists {
			bucket = &DayTotals{Date: day}
			byDay[key] = bucket
		}
		bucket.Calories += meal.Calories
		bucket.Protein += meal.ProteinG
		bucket.Carbs += meal.CarbsG
		bucket.Fat += meal.FatG
		bucket.Fiber += meal.FiberG
	}

	buckets := make([]DayTotals, 0, len(byDay))
	for _, bucket := range byDay {
		buckets = append(buckets, *bucket)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date.After(buckets[j].Date)
	})

	if len(buckets) > limit {
		buckets = buckets[:limit]
	}
	return buckets
}
