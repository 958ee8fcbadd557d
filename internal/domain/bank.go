package domain

import "time"

// Bank holds the running count of transfers settled through it.
type Bank struct {
	ID             int64
	Name           string
	TotalTransfers int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IncrementTransfers bumps the transfer counter by one.
func (b *Bank) IncrementTransfers() {
	b.TotalTransfers++
}
