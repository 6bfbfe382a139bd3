package model

// Scope identifies the authenticated caller of a use case.
// Every data access is restricted to the scope's user.
type Scope struct {
	UserID   string
	Username string
}

// Environment is the runtime environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
