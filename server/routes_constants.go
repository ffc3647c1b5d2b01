package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	RouteLogin   = "POST /v1/login"
	RouteRefresh = "POST /v1/refresh"
	RouteRevoke  = "POST /v1/revoke"
)
