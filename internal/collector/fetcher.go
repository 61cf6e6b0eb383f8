package collector

import "GasWhisperer/internal/model"

// Source supplies recent gas-price history, oldest first.
type Source interface {
	Recent(limit int) ([]model.RecentPoint, error)
	Name() string
}
