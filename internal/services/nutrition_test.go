package services

import (
	"math"
	"testing"
)

func almostEqual(a float64, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScaleByOneIsIdentity(t *testing.T) {
	vector := Vector{Calories: 300, Protein: 20.5, Carbs: 41.2, Fat: 9.9, Fiber: 3.1}
	scaled := vector.Scale(1.0)
	if scaled != vector {
		t.Fatalf("expected identity scaling, got %#v", scaled)
	}
}

func TestSumTreatsNoInputAsZero(t *testing.T) {
	total := Sum()
	if total != (Vector{}) {
		t.Fatalf("expected zero vector, got %#v", total)
	}

	total = Sum(
		Vector{Calories: 100, Protein: 10, Carbs: 20, Fat: 5, Fiber: 2},
		Vector{Calories: 50, Protein: 2.5, Carbs: 10, Fat: 1.5, Fiber: 1},
	)
	if total.Calories != 150 || !almostEqual(total.Protein, 12.5) || !almostEqual(total.Carbs, 30) {
		t.Fatalf("unexpected sum: %#v", total)
	}
}

func TestRoundedProducesIntegerCaloriesAndOneDecimalMacros(t *testing.T) {
	vector := Vector{Calories: 479.6, Protein: 12.34, Carbs: 55.55, Fat: 7.77, Fiber: 2.22}
	rounded := vector.Rounded()

	if rounded.Calories != 480 {
		t.Fatalf("expected 480 calories, got %d", rounded.Calories)
	}
	if !almostEqual(rounded.Protein, 12.3) {
		t.Fatalf("expected protein 12.3, got %v", rounded.Protein)
	}
	if !almostEqual(rounded.Fat, 7.8) {
		t.Fatalf("expected fat 7.8, got %v", rounded.Fat)
	}
}

func TestRoundCaloriesHalfToEven(t *testing.T) {
	tests := []struct {
		value float64
		want  int
	}{
		{value: 0.5, want: 0},
		{value: 1.5, want: 2},
		{value: 2.5, want: 2},
		{value: 3.5, want: 4},
		{value: -0.5, want: 0},
	}

	for _, testCase := range tests {
		if got := RoundCalories(testCase.value); got != testCase.want {
			t.Fatalf("RoundCalories(%v): expected %d, got %d", testCase.value, testCase.want, got)
		}
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(12.345); !almostEqual(got, 12.34) {
		t.Fatalf("expected 12.34, got %v", got)
	}
	if got := Round2(12.5); !almostEqual(got, 12.5) {
		t.Fatalf("expected 12.5, got %v", got)
	}
}
