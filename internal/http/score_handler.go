package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"credit-score/internal/domain"
	"credit-score/internal/repository"
	"credit-score/internal/service"
)

const (
	historyDefaultLimit = 10
)

// scoreRequest replica la forma del payload de entrada. Los numéricos que
// aceptan cero se ligan por puntero: "required" sobre un puntero valida
// presencia, no que el valor sea distinto de cero.
type scoreRequest struct {
	Name                   string               `json:"name" binding:"required,min=3,max=100,clientname"`
	Age                    *int                 `json:"age" binding:"required,gte=18,lte=100"`
	MonthlyIncome          *float64             `json:"monthlyIncome" binding:"required,gte=0"`
	TotalDebt              *float64             `json:"totalDebt" binding:"required,gte=0"`
	PaymentHistory         domain.PaymentStatus `json:"paymentHistory" binding:"required,oneof=ON_TIME MILD_DELAY SEVERE_DELAY DEFAULTED"`
	MonthsSinceFirstCredit *int                 `json:"monthsSinceFirstCredit" binding:"required,gte=0,lte=600"`
	InquiriesLast6Months   *int                 `json:"inquiriesLast6Months" binding:"required,gte=0,lte=50"`
	BankAccountCount       *int                 `json:"bankAccountCount" binding:"omitempty,gte=0,lte=10"`
}

// toClientProfile convierte el payload ya validado al modelo de dominio.
// BankAccountCount ausente vale 1.
func (r scoreRequest) toClientProfile() domain.ClientProfile {
	accounts := 1
	if r.BankAccountCount != nil {
		accounts = *r.BankAccountCount
	}
	return domain.ClientProfile{
		Name:                   strings.TrimSpace(r.Name),
		Age:                    *r.Age,
		MonthlyIncome:          *r.MonthlyIncome,
		TotalDebt:              *r.TotalDebt,
		PaymentHistory:         r.PaymentHistory,
		MonthsSinceFirstCredit: *r.MonthsSinceFirstCredit,
		InquiriesLast6Months:   *r.InquiriesLast6Months,
		BankAccountCount:       accounts,
	}
}

type scoreResponse struct {
	QueryID         string           `json:"queryId"`
	ClientName      string           `json:"clientName"`
	Score           int              `json:"score"`
	RiskLevel       domain.RiskLevel `json:"riskTier"`
	Message         string           `json:"message"`
	PositiveFactors []domain.Factor  `json:"positiveFactors"`
	NegativeFactors []domain.Factor  `json:"negativeFactors"`
	Recommendations []string         `json:"recommendations"`
	QueriedAt       time.Time        `json:"timestamp"`
}

type historyQuery struct {
	Limit *int `form:"limit" binding:"omitempty,gte=1,lte=100"`
}

// ScoreHandler mantiene dependencias para los endpoints de score.
type ScoreHandler struct {
	logger  *zap.Logger
	engine  service.ScoreEngine
	history repository.HistoryRepository
}

// NewScoreHandler crea una instancia de ScoreHandler.
func NewScoreHandler(logger *zap.Logger, engine service.ScoreEngine, history repository.HistoryRepository) *ScoreHandler {
	return &ScoreHandler{
		logger:  logger,
		engine:  engine,
		history: history,
	}
}

// Calculate maneja POST /score/calculate.
// Valida, calcula score y riesgo, y recién entonces registra la consulta:
// un request fallido nunca deja rastro en el historial.
func (h *ScoreHandler) Calculate(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid score request", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation failed",
			"details": bindingErrorDetails(err),
		})
		return
	}

	client := req.toClientProfile()
	result := h.engine.ComputeScore(client)
	level, message := service.ClassifyRisk(result.Score)

	record := domain.QueryRecord{
		QueryID:    uuid.NewString(),
		ClientName: client.Name,
		Score:      result.Score,
		RiskLevel:  level,
		QueriedAt:  time.Now().UTC(),
	}
	if err := h.history.Append(c.Request.Context(), record); err != nil {
		h.logger.Error("history append failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record query"})
		return
	}

	positives, negatives := partitionFactors(result.Factors)

	c.JSON(http.StatusOK, scoreResponse{
		QueryID:         record.QueryID,
		ClientName:      client.Name,
		Score:           result.Score,
		RiskLevel:       level,
		Message:         message,
		PositiveFactors: positives,
		NegativeFactors: negatives,
		Recommendations: result.Recommendations,
		QueriedAt:       record.QueriedAt,
	})
}

// History maneja GET /score/history?limit=N.
func (h *ScoreHandler) History(c *gin.Context) {
	var query historyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.logger.Warn("invalid history request", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation failed",
			"details": queryErrorDetails(err, "limit"),
		})
		return
	}

	limit := historyDefaultLimit
	if query.Limit != nil {
		limit = *query.Limit
	}

	records, err := h.history.Recent(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("history read failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read history"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// partitionFactors separa los factores por tipo preservando el orden de
// evaluación dentro de cada partición.
func partitionFactors(factors []domain.Factor) (positives, negatives []domain.Factor) {
	positives = make([]domain.Factor, 0, len(factors))
	negatives = make([]domain.Factor, 0, len(factors))
	for _, f := range factors {
		if f.Type == domain.FactorPositive {
			positives = append(positives, f)
		} else {
			negatives = append(negatives, f)
		}
	}
	return positives, negatives
}
