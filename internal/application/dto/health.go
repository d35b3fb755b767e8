package dto

type GetHealthCommand struct{}

type HealthOutput struct {
	Status  string `json:"status"`
	Network string `json:"network,omitempty"`
	Journal bool   `json:"journal"`
}
