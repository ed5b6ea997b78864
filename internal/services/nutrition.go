package services

import "math"

// Vector carries the five tracked nutrients with exact float arithmetic.
// Rounding happens only when a vector is written into a meal.
type Vector struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
}

// RoundedVector is a vector shaped for storage: integer calories, macros at
// one decimal place.
type RoundedVector struct {
	Calories int
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
}

func (vector Vector) Add(other Vector) Vector {
	return Vector{
		Calories: vector.Calories + other.Calories,
		Protein:  vector.Protein + other.Protein,
		Carbs:    vector.Carbs + other.Carbs,
		Fat:      vector.Fat + other.Fat,
		Fiber:    vector.Fiber + other.Fiber,
	}
}

func Sum(vectors ...Vector) Vector {
	total := Vector{}
	for _, vector := range vectors {
		total = total.Add(vector)
	}
	return total
}

func (vector Vector) Scale(factor float64) Vector {
	return Vector{
		Calories: vector.Calories * factor,
		Protein:  vector.Protein * factor,
		Carbs:    vector.Carbs * factor,
		Fat:      vector.Fat * factor,
		Fiber:    vector.Fiber * factor,
	}
}

func (vector Vector) Rounded() RoundedVector {
	return RoundedVector{
		Calories: RoundCalories(vector.Calories),
		Protein:  RoundMacro(vector.Protein),
		Carbs:    RoundMacro(vector.Carbs),
		Fat:      RoundMacro(vector.Fat),
		Fiber:    RoundMacro(vector.Fiber),
	}
}

// RoundCalories rounds half-to-even to a whole number of kilocalories.
func RoundCalories(value float64) int {
	return int(math.RoundToEven(value))
}

// RoundMacro rounds half-to-even to one decimal place.
func RoundMacro(value float64) float64 {
	return math.RoundToEven(value*10) / 10
}

// Round2 rounds half-to-even to two decimal places.
func Round2(value float64) float64 {
	return math.RoundToEven(value*100) / 100
}
