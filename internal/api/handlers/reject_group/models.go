package reject_group

// RejectGroupRequest HTTP модель отклонения группы
type RejectGroupRequest struct {
	IDs    []string `json:"ids"`
	Reason string   `json:"reason"`
}
