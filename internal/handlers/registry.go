package handlers

// AppHandlers bundles the initialized handlers for route registration.
type AppHandlers struct {
	PropertyHandler *PropertyHandler
	HealthHandler   *HealthHandler
}
