package repository

import (
	"context"
	"sync"

	"credit-score/internal/domain"
)

// HistoryRepository guarda los resúmenes de consultas completadas.
// Solo soporta append y lectura de los más recientes: sin update ni delete.
type HistoryRepository interface {
	Append(ctx context.Context, record domain.QueryRecord) error
	Recent(ctx context.Context, limit int) ([]domain.QueryRecord, error)
	Count(ctx context.Context) (int, error)
	Reset(ctx context.Context) error
}

// MemoryHistoryRepository mantiene el historial en memoria durante la vida
// del proceso. Gin atiende requests en goroutines concurrentes, así que
// toda mutación y lectura pasa por el mutex; Recent devuelve siempre una
// copia, nunca el slice interno.
type MemoryHistoryRepository struct {
	mu      sync.Mutex
	records []domain.QueryRecord
}

func NewMemoryHistoryRepository() *MemoryHistoryRepository {
	return &MemoryHistoryRepository{}
}

// Append agrega un registro al final del historial. Nunca falla.
func (r *MemoryHistoryRepository) Append(_ context.Context, record domain.QueryRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return nil
}

// Recent devuelve hasta limit registros, del más reciente al más antiguo.
func (r *MemoryHistoryRepository) Recent(_ context.Context, limit int) ([]domain.QueryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit > len(r.records) {
		limit = len(r.records)
	}
	out := make([]domain.QueryRecord, 0, max(limit, 0))
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}

// Count devuelve el total de registros acumulados.
func (r *MemoryHistoryRepository) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records), nil
}

// Reset vacía el historial; solo tiene sentido en tests.
func (r *MemoryHistoryRepository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
	return nil
}
