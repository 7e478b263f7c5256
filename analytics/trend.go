package analytics

// Slope fits an ordinary-least-squares line through (index, value) points
// and returns its slope. Series shorter than 2 points, or a degenerate
// denominator, yield a flat trend of 0 rather than an error.
func Slope(series []float64) float64 {
	n := float64(len(series))
	if n < 2 {
		return 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range series {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denominator := n*sumXX - sumX*sumX
	if denominator == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denominator
}
