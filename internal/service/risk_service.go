package service

import "credit-score/internal/domain"

// riskBands: límite inferior inclusivo, evaluado de mayor a menor para que
// un score de exactamente 800 caiga en LOW y no en MEDIUM.
var riskBands = []struct {
	min     int
	level   domain.RiskLevel
	message string
}{
	{min: 800, level: domain.RiskLow, message: "Excellent! Very healthy credit profile."},
	{min: 600, level: domain.RiskMedium, message: "Good! There is still room for improvement."},
	{min: 400, level: domain.RiskHigh, message: "Attention! Your profile needs improvement."},
	{min: scoreMin, level: domain.RiskVeryHigh, message: "Critical! Urgent action is required."},
}

// ClassifyRisk mapea un score ya acotado a [0,1000] a su banda de riesgo
// con un mensaje fijo. Pura y total.
func ClassifyRisk(score int) (domain.RiskLevel, string) {
	for _, band := range riskBands {
		if score >= band.min {
			return band.level, band.message
		}
	}
	last := riskBands[len(riskBands)-1]
	return last.level, last.message
}
