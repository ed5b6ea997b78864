package services

import "testing"

func TestPerHundredGrams(t *testing.T) {
	tests := []struct {
		name        string
		value       float64
		servingSize float64
		branded     bool
		want        float64
	}{
		{name: "generic passes through", value: 52.0, servingSize: 30, branded: false, want: 52.0},
		{name: "branded serving of 100 is a no-op", value: 52.0, servingSize: 100, branded: true, want: 52.0},
		{name: "branded rescales to 100g", value: 130.0, servingSize: 50, branded: true, want: 260.0},
		{name: "branded fractional serving", value: 12.5, servingSize: 25, branded: true, want: 50.0},
		{name: "zero serving size falls back to raw", value: 99.0, servingSize: 0, branded: true, want: 99.0},
		{name: "negative serving size falls back to raw", value: 99.0, servingSize: -5, branded: true, want: 99.0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := PerHundredGrams(testCase.value, testCase.servingSize, testCase.branded)
			if !almostEqual(got, testCase.want) {
				t.Fatalf("expected %v, got %v", testCase.want, got)
			}
		})
	}
}
