package rbac

type EnforceRequest struct {
	Role     Role   `json:"role"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PolicyRule struct {
	Resource string   `json:"resource"`
	Action   string   `json:"action"`
	Roles    []string `json:"roles"`
}
