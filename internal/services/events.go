package services

import (
	"log"

	"shopadmin/pkg/rabbitmq"
)

// publishEvent emits a catalog event after a successful mutation. A nil
// client (tests, broker disabled) or a publish failure never affects the
// operation outcome; failures are only logged.
func publishEvent(mq *rabbitmq.Client, action string, payload interface{}) {
	if mq == nil {
		return
	}
	if err := mq.PublishCatalogEvent(action, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", action, err)
	}
}
