package app

import "h20/internal/domain"

// App bundles the services the CLI commands run against.
type App struct {
	Sessions    domain.SessionService
	Credentials domain.CredentialService
}

// New constructs an App from already-wired services.
func New(sessions domain.SessionService, credentials domain.CredentialService) *App {
	return &App{Sessions: sessions, Credentials: credentials}
}
