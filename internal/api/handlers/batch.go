package handlers

import "github.com/m04kA/SMC-FacilityBookingService/internal/service/reservations/models"

// BatchResponse отчет групповой операции
// Complete=false означает частичное применение
type BatchResponse struct {
	Succeeded []string     `json:"succeeded"`
	Failed    []FailedItem `json:"failed"`
	Complete  bool         `json:"complete"`
}

// FailedItem идентификатор, к которому операция не применилась
type FailedItem struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// FromBatchResult конвертирует отчет хранилища; describe переводит ошибку в сообщение клиенту
func FromBatchResult(r *models.BatchResult, describe func(error) string) *BatchResponse {
	resp := &BatchResponse{
		Succeeded: append([]string{}, r.Succeeded...),
		Failed:    make([]FailedItem, 0, len(r.Failed)),
		Complete:  r.Complete(),
	}
	for _, f := range r.Failed {
		resp.Failed = append(resp.Failed, FailedItem{ID: f.ID, Reason: describe(f.Err)})
	}
	return resp
}
