package jetstream

import (
	"strconv"
	"time"

	"github.com/nats-io/nats.go"
)

func MessageID(pair nats.SequencePair) string {
	return "seq:" + strconv.FormatUint(pair.Consumer, 10)
}

// Delivery describes where a message stands in its redelivery cycle.
type Delivery struct {
	ID           string
	NumDelivered uint64
	Timestamp    time.Time
}

// DeliveryOf reads the JetStream metadata of msg. Messages that did not come
// from JetStream yield a zero Delivery.
func DeliveryOf(msg *nats.Msg) Delivery {
	meta, err := msg.Metadata()
	if err != nil {
		return Delivery{}
	}
	return Delivery{
		ID:           MessageID(meta.Sequence),
		NumDelivered: meta.NumDelivered,
		Timestamp:    meta.Timestamp,
	}
}
