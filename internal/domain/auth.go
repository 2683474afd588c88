package domain

// Role is the privilege carried by an operator token.
type Role string

const (
	RoleOperator Role = "OPERATOR"
)
