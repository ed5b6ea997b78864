package services

import (
	"testing"
	"time"

	"github.com/fuelhq/fuel/internal/models"
)

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func TestSummarizeDayEmpty(t *testing.T) {
	date := day(2026, time.March, 5)
	totals := SummarizeDay(date, nil)
	if totals.Calories != 0 || totals.Protein != 0 || !totals.Date.Equal(date) {
		t.Fatalf("expected zero totals for empty day, got %#v", totals)
	}
}

func TestSummarizeDaySumsAllMeals(t *testing.T) {
	date := day(2026, time.March, 5)
	meals := []models.Meal{
		{LoggedDate: date, Calories: 300, ProteinG: 20, CarbsG: 30, FatG: 10, FiberG: 5},
		{LoggedDate: date, Calories: 450, ProteinG: 25.5, CarbsG: 60, FatG: 12, FiberG: 6},
	}

	totals := SummarizeDay(date, meals)
	if totals.Calories != 750 {
		t.Fatalf("expected 750 calories, got %d", totals.Calories)
	}
	if !almostEqual(totals.Protein, 45.5) {
		t.Fatalf("expected protein 45.5, got %v", totals.Protein)
	}
	if !almostEqual(totals.Fiber, 11) {
		t.Fatalf("expected fiber 11, got %v", totals.Fiber)
	}
}

func TestBucketHistoryReturnsMostRecentDaysDescending(t *testing.T) {
	oldest := day(2026, time.March, 1)
	middle := day(2026, time.March, 3)
	newest := day(2026, time.March, 4)

	meals := []models.Meal{
		{LoggedDate: middle, Calories: 200, ProteinG: 10},
		{LoggedDate: newest, Calories: 500, ProteinG: 30},
		{LoggedDate: oldest, Calories: 100, ProteinG: 5},
		{LoggedDate: newest, Calories: 250, ProteinG: 15},
	}

	buckets := BucketHistory(meals, 2, time.UTC)
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if !buckets[0].Date.Equal(newest) || !buckets[1].Date.Equal(middle) {
		t.Fatalf("expected newest-first ordering, got %v then %v", buckets[0].Date, buckets[1].Date)
	}
	if buckets[0].Calories != 750 {
		t.Fatalf("expected 750 calories on newest day, got %d", buckets[0].Calories)
	}
	if !almostEqual(buckets[0].Protein, 45) {
		t.Fatalf("expected protein 45 on newest day, got %v", buckets[0].Protein)
	}
	if buckets[1].Calories != 200 {
		t.Fatalf("expected 200 calories on middle day, got %d", buckets[1].Calories)
	}
}

func TestBucketHistoryDefaultsLimit(t *testing.T) {
	meals := make([]models.Meal, 0, 20)
	for i := 0; i < 20; i++ {
		meals = append(meals, models.Meal{LoggedDate: day(2026, time.January, 1).AddDate(0, 0, i), Calories: 100})
	}

	buckets := BucketHistory(meals, 0, time.UTC)
	if len(buckets) != DefaultHistoryDays {
		t.Fatalf("expected %d buckets by default, got %d", DefaultHistoryDays, len(buckets))
	}
	if !buckets[0].Date.Equal(day(2026, time.January, 20)) {
		t.Fatalf("expected most recent day first, got %v", buckets[0].Date)
	}
}

func TestHistoryFetchLimitOverFetches(t *testing.T) {
	if got := HistoryFetchLimit(14); got != 140 {
		t.Fatalf("expected fetch limit 140, got %d", got)
	}
}
