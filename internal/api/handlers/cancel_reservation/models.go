package cancel_reservation

// CancelGroupRequest HTTP модель отмены группы заявок
type CancelGroupRequest struct {
	IDs []string `json:"ids"`
}
