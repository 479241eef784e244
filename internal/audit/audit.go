package audit

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/bab-library/catalog-service/pkg/kafka"
)

// Publisher writes admin mutations to the audit topic fire-and-forget.
type Publisher struct {
	producer sarama.SyncProducer
	wg       sync.WaitGroup
	log      *zap.Logger
}

func NewPublisher(producer sarama.SyncProducer, log *zap.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		log:      log.Named("audit"),
	}
}

func (p *Publisher) Record(action, collection, entityID string) {
	event := kafka.AuditEvent{
		Action:     action,
		Collection: collection,
		EntityID:   entityID,
		At:         time.Now().UTC(),
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		data, err := json.Marshal(event)
		if err != nil {
			p.log.Error("audit marshal", zap.Error(err))
			return
		}
		msg := &sarama.ProducerMessage{Topic: kafka.AuditTopic, Value: sarama.StringEncoder(data)}
		if _, _, err := p.producer.SendMessage(msg); err != nil {
			p.log.Warn("audit publish", zap.Error(err))
		}
	}()
}

// Close blocks until every in-flight publish has finished. Call it before
// closing the underlying producer.
func (p *Publisher) Close() {
	p.wg.Wait()
}
