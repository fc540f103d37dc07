package approve_group

// ApproveGroupRequest HTTP модель согласования группы
type ApproveGroupRequest struct {
	IDs []string `json:"ids"`
}
