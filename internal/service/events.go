package service

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"

	"vehicle-rental-api/internal/logger"
)

// Event topics. Created/completed/overdue events share one topic with an
// "event" discriminator field; renewals go to their own topic.
const (
	TopicRentalEvents  = "rental-events"
	TopicRentalRenewed = "rental.renewed"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type rentalCreatedEvent struct {
	Event      string `json:"event"`
	RentalID   string `json:"rentalId"`
	VehicleID  string `json:"vehicleId"`
	CustomerID string `json:"customerId"`
}

type rentalRenewedEvent struct {
	RentalID           string    `json:"rentalId"`
	CustomerID         string    `json:"customerId"`
	VehicleID          string    `json:"vehicleId"`
	OldExpectedEndDate time.Time `json:"oldExpectedEndDate"`
	NewExpectedEndDate time.Time `json:"newExpectedEndDate"`
	AdditionalDays     int       `json:"additionalDays"`
	AdditionalCost     int64     `json:"additionalCost"`
	NewTotalAmount     int64     `json:"newTotalAmount"`
	RenewedAt          time.Time `json:"renewedAt"`
}

type rentalCompletedEvent struct {
	Event       string `json:"event"`
	RentalID    string `json:"rentalId"`
	TotalAmount int64  `json:"totalAmount"`
	Condition   string `json:"condition"`
}

// PublishEvent marshals and publishes a domain event. Failures are logged
// and swallowed; event delivery is never part of the command outcome.
func PublishEvent(ctx context.Context, pub EventPublisher, topic string, event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal event", "topic", topic, "error", err)
		return
	}
	if err := pub.Publish(ctx, topic, payload); err != nil {
		logger.Error("Failed to publish event", "topic", topic, "error", err)
	}
}
