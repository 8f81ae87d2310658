package kafka

import "time"

// SaleEvent represents a sale ledger lifecycle event
type SaleEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	SaleID     string    `json:"sale_id"`
	Product    string    `json:"product"`
	Quantity   int       `json:"quantity"`
	Profit     float64   `json:"profit"`
	OccurredAt time.Time `json:"occurred_at"`
	Timestamp  time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeSaleRecorded = "sale.recorded"
	EventTypeSaleUpdated  = "sale.updated"
	EventTypeSaleDeleted  = "sale.deleted"
)

// Kafka topics
const (
	TopicSaleEvents = "sale-events"
)
