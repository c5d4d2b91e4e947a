package response

const (
	StatusUp   = "up"
	StatusDown = "down"
)

type HealthOutput struct {
	Status       string             `json:"status"`
	Uptime       float64            `json:"uptime"`
	Timestamp    string             `json:"timestamp"`
	Dependencies HealthDependencies `json:"dependencies"`
}

type HealthDependencies struct {
	Database string `json:"database"`
	Redis    string `json:"redis"`
}
