package domain

// PaymentStatus clasifica el historial de pagos del cliente.
type PaymentStatus string

const (
	PaymentOnTime      PaymentStatus = "ON_TIME"
	PaymentMildDelay   PaymentStatus = "MILD_DELAY"
	PaymentSevereDelay PaymentStatus = "SEVERE_DELAY"
	PaymentDefaulted   PaymentStatus = "DEFAULTED"
)

// IsValid indica si el valor pertenece al enum.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentOnTime, PaymentMildDelay, PaymentSevereDelay, PaymentDefaulted:
		return true
	}
	return false
}

// ClientProfile es el perfil del cliente ya validado en la frontera HTTP.
// El motor de scoring asume que los rangos ya fueron verificados; el único
// caso defensivo que debe cubrir es MonthlyIncome == 0.
type ClientProfile struct {
	Name                   string
	Age                    int
	MonthlyIncome          float64
	TotalDebt              float64
	PaymentHistory         PaymentStatus
	MonthsSinceFirstCredit int
	InquiriesLast6Months   int
	BankAccountCount       int
}
