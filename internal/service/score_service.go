package service

import (
	"fmt"
	"math"

	"credit-score/internal/domain"
)

const (
	scoreBase = 500
	scoreMin  = 0
	scoreMax  = 1000
)

// debtRatioSentinel fuerza el peor tramo de endeudamiento cuando el
// cliente no tiene ingresos (guardia contra división por cero).
const debtRatioSentinel = 999.0

const (
	factorIncome    = "Monthly Income"
	factorDebtRatio = "Debt-to-Income Ratio"
	factorPayments  = "Payment History"
	factorHistory   = "Credit History Length"
	factorInquiries = "Recent Inquiries"
)

/*
========================
 Tablas de reglas
========================

Cada regla es una tabla declarativa: el control de flujo solo recorre la
tabla y toma el primer tramo que aplica. "recommendation" acompaña al
factor; "advice" se acumula en la lista global de recomendaciones.
*/

// incomeTiers: umbral inferior inclusivo, descendente, gana el primero.
var incomeTiers = []struct {
	min            float64
	points         int
	description    string
	recommendation string
	advice         string
}{
	{min: 5000, points: 100, description: "Adequate monthly income"},
	{min: 2000, points: 50, description: "Stable monthly income"},
	{
		min:            0,
		points:         -30,
		description:    "Low monthly income",
		recommendation: "Consider seeking additional sources of income",
		advice:         "Look for ways to increase your monthly income",
	},
}

// ratioTiers: límite superior exclusivo, ascendente, gana el primero.
// El formato embebe la tasa con un decimal fijo.
var ratioTiers = []struct {
	below          float64
	points         int
	format         string
	recommendation string
	advice         string
}{
	{below: 30, points: 125, format: "Low debt level (%.1f%%)"},
	{below: 50, points: 60, format: "Controlled debt level (%.1f%%)"},
	{
		below:          80,
		points:         -50,
		format:         "Elevated debt level (%.1f%%)",
		recommendation: "Reduce your outstanding debt",
		advice:         "Prioritize paying off high-interest debt",
	},
	{
		below:          math.Inf(1),
		points:         -100,
		format:         "Critical debt level (%.1f%%)",
		recommendation: "Urgent financial situation",
		advice:         "Seek professional financial counseling",
	},
}

// paymentOutcomes: lookup directo sobre el enum, sin cómputo.
var paymentOutcomes = map[domain.PaymentStatus]struct {
	points         int
	description    string
	recommendation string
	advice         string
}{
	domain.PaymentOnTime: {
		points:      150,
		description: "Payments made on time",
	},
	domain.PaymentMildDelay: {
		points:         50,
		description:    "Occasional payment delays",
		recommendation: "Avoid further delays",
		advice:         "Set up automatic debit for recurring bills",
	},
	domain.PaymentSevereDelay: {
		points:         -100,
		description:    "Frequent payment delays",
		recommendation: "Regularize your payments",
		advice:         "Negotiate overdue payments with your creditors",
	},
	domain.PaymentDefaulted: {
		points:         -200,
		description:    "Active default",
		recommendation: "URGENT: regularize your situation",
		advice:         "URGENT: seek debt recovery assistance",
	},
}

// historyTiers: meses mínimos inclusivos, descendente, gana el primero.
var historyTiers = []struct {
	minMonths   int
	points      int
	description string
	advice      string
}{
	{minMonths: 60, points: 75, description: "Long, consolidated credit history"},
	{minMonths: 24, points: 40, description: "Established credit history"},
	{minMonths: 6, points: 10, description: "Credit history being built"},
	{
		minMonths:   0,
		points:      -20,
		description: "Very recent credit history",
		advice:      "Keep accounts active to build your history",
	},
}

// inquiryTiers: máximo inclusivo, ascendente, gana el primero.
var inquiryTiers = []struct {
	max    int
	points int
	format string
	advice string
}{
	{max: 0, points: 50, format: "No recent credit inquiries"},
	{max: 3, points: 20, format: "Few recent inquiries (%d)"},
	{
		max:    6,
		points: -20,
		format: "Multiple recent inquiries (%d)",
		advice: "Avoid applying for credit in many places",
	},
	{
		max:    int(^uint(0) >> 1),
		points: -50,
		format: "Excessive recent inquiries (%d)",
		advice: "Wait before applying for new credit",
	},
}

// ScoreEngine calcula el score de crédito de un perfil ya validado.
// Puro y determinista: sin estado, sin I/O, nunca falla.
type ScoreEngine struct{}

// DefaultScoreEngine permite uso directo sin instanciar.
var DefaultScoreEngine = ScoreEngine{}

// ComputeScore parte de una base de 500 y aplica las cinco reglas en orden
// fijo; cada una aporta exactamente un factor. El resultado queda acotado
// a [0,1000].
func (ScoreEngine) ComputeScore(client domain.ClientProfile) domain.ScoreResult {
	score := scoreBase
	factors := make([]domain.Factor, 0, 5)
	recommendations := make([]string, 0, 5)

	collect := func(f domain.Factor, advice string) {
		factors = append(factors, f)
		score += f.Impact
		if advice != "" {
			recommendations = append(recommendations, advice)
		}
	}

	// Factor 1: renta mensual.
	for _, tier := range incomeTiers {
		if client.MonthlyIncome >= tier.min {
			collect(domain.Factor{
				Factor:         factorIncome,
				Description:    tier.description,
				Impact:         tier.points,
				Type:           impactType(tier.points),
				Recommendation: tier.recommendation,
			}, tier.advice)
			break
		}
	}

	// Factor 2: tasa de endeudamiento.
	ratio := debtRatio(client)
	for _, tier := range ratioTiers {
		if ratio < tier.below {
			collect(domain.Factor{
				Factor:         factorDebtRatio,
				Description:    fmt.Sprintf(tier.format, ratio),
				Impact:         tier.points,
				Type:           impactType(tier.points),
				Recommendation: tier.recommendation,
			}, tier.advice)
			break
		}
	}

	// Factor 3: historial de pagos.
	if outcome, ok := paymentOutcomes[client.PaymentHistory]; ok {
		collect(domain.Factor{
			Factor:         factorPayments,
			Description:    outcome.description,
			Impact:         outcome.points,
			Type:           impactType(outcome.points),
			Recommendation: outcome.recommendation,
		}, outcome.advice)
	}

	// Factor 4: antigüedad del historial.
	for _, tier := range historyTiers {
		if client.MonthsSinceFirstCredit >= tier.minMonths {
			collect(domain.Factor{
				Factor:      factorHistory,
				Description: tier.description,
				Impact:      tier.points,
				Type:        impactType(tier.points),
			}, tier.advice)
			break
		}
	}

	// Factor 5: consultas recientes.
	for _, tier := range inquiryTiers {
		if client.InquiriesLast6Months <= tier.max {
			description := tier.format
			if client.InquiriesLast6Months > 0 {
				description = fmt.Sprintf(tier.format, client.InquiriesLast6Months)
			}
			collect(domain.Factor{
				Factor:      factorInquiries,
				Description: description,
				Impact:      tier.points,
				Type:        impactType(tier.points),
			}, tier.advice)
			break
		}
	}

	return domain.ScoreResult{
		Score:           clampScore(score),
		Factors:         factors,
		Recommendations: recommendations,
	}
}

// debtRatio devuelve (deuda total / renta mensual) como porcentaje, o el
// sentinel cuando no hay ingresos.
func debtRatio(client domain.ClientProfile) float64 {
	if client.MonthlyIncome > 0 {
		return (client.TotalDebt / client.MonthlyIncome) * 100
	}
	return debtRatioSentinel
}

func impactType(points int) domain.FactorType {
	if points > 0 {
		return domain.FactorPositive
	}
	return domain.FactorNegative
}

func clampScore(score int) int {
	if score < scoreMin {
		return scoreMin
	}
	if score > scoreMax {
		return scoreMax
	}
	return score
}
