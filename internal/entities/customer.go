package entities

import "time"

// Customer анонимный покупатель, идентифицируется по device token.
type Customer struct {
	ID                int64
	DeviceToken       string
	GatewayCustomerID string
	CreatedAt         time.Time
	LastSeen          time.Time
}
