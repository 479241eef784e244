package audit_test

import (
	"encoding/json"
	"testing"

	"github.com/IBM/sarama/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bab-library/catalog-service/internal/audit"
	"github.com/bab-library/catalog-service/pkg/kafka"
)

func TestPublisher_CloseDrainsInflightPublishes(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var event kafka.AuditEvent
		if err := json.Unmarshal(val, &event); err != nil {
			return err
		}
		if event.Action != "add" || event.Collection != "books" || event.EntityID != "42" {
			return errors.Errorf("unexpected audit event: %+v", event)
		}
		return nil
	})

	p := audit.NewPublisher(producer, zap.NewExample())
	p.Record("add", "books", "42")

	// Close returns only once the async send went through; the mock's own
	// Close then verifies the expectation was consumed.
	p.Close()
	require.NoError(t, producer.Close())
}
