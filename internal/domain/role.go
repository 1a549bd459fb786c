package domain

// Role é o perfil do usuário autenticado, lido do token.
type Role string

const (
	RoleCustomer   Role = "CLIENTE"
	RoleDBAdmin    Role = "ADMIN_DB"
	RoleBackoffice Role = "BACKOFFICE"
	RoleAdvisor    Role = "ASESOR"
	RoleAuditor    Role = "AUDITOR"
	RoleAdmin      Role = "ADMIN"
)
