package metrics

// Interpretation thresholds for the precision report.
const (
	GoodFitR2     = 0.7
	ModerateFitR2 = 0.5

	ExcellentAccuracy = 90.0
	GoodAccuracy      = 80.0
)

// FitQuality maps an r-squared value to a fit quality label.
func FitQuality(r2 float64) string {
	switch {
	case r2 >= GoodFitR2:
		return "good fit"
	case r2 >= ModerateFitR2:
		return "moderate fit"
	default:
		return "poor fit"
	}
}

// AccuracyGrade maps an average accuracy percentage (100 - MAPE) to a
// performance label.
func AccuracyGrade(accuracy float64) string {
	switch {
	case accuracy >= ExcellentAccuracy:
		return "excellent"
	case accuracy >= GoodAccuracy:
		return "good"
	default:
		return "needs improvement"
	}
}
