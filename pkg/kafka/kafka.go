package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	AuditTopic = "catalog-audit"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
}

// AuditEvent is the payload published for every admin mutation.
type AuditEvent struct {
	Action     string    `json:"action"`
	Collection string    `json:"collection"`
	EntityID   string    `json:"entityId"`
	At         time.Time `json:"at"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
