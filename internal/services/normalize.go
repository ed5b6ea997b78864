package services

// PerHundredGrams converts a nutrient value reported for one declared serving
// to a per-100g basis. Generic records (reference foods) already report
// per-100g values and pass through unchanged. A non-positive serving size also
// passes the value through unchanged; upstream data occasionally omits it and
// the raw value is the least-wrong answer.
func PerHundredGrams(value float64, servingSize float64, branded bool) float64 {
	if !branded {
		return value
	}
	if servingSize <= 0 {
		return value
	}
	return Round2(value / servingSize * 100)
}
