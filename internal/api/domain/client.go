package domain

import "time"

// Client is a stored client record. SharedKey is unique across the store.
type Client struct {
	ID        string
	SharedKey string
	Name      string
	Email     string
	Phone     string
	StartDate string
	EndDate   string
	CreatedAt time.Time
}
