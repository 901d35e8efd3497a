package domain

import "time"

// FactorType indica si un factor suma o resta puntos.
type FactorType string

const (
	FactorPositive FactorType = "POSITIVE"
	FactorNegative FactorType = "NEGATIVE"
)

// RiskLevel es la banda de riesgo derivada del score final.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskVeryHigh RiskLevel = "VERY_HIGH"
)

// Factor describe la contribución de una regla al score.
// Solo el motor de scoring crea factores.
type Factor struct {
	Factor         string     `json:"factor"`
	Description    string     `json:"description"`
	Impact         int        `json:"impact"`
	Type           FactorType `json:"type"`
	Recommendation string     `json:"recommendation,omitempty"`
}

// ScoreResult es la salida pura del motor: score acotado a [0,1000],
// factores en orden de evaluación y recomendaciones sin deduplicar.
type ScoreResult struct {
	Score           int
	Factors         []Factor
	Recommendations []string
}

// QueryRecord resume una consulta completada; inmutable una vez creado.
type QueryRecord struct {
	QueryID    string    `json:"queryId"`
	ClientName string    `json:"clientName"`
	Score      int       `json:"score"`
	RiskLevel  RiskLevel `json:"riskTier"`
	QueriedAt  time.Time `json:"timestamp"`
}
