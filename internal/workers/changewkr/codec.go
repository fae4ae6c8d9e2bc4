package changewkr

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/tidwall/gjson"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/constant"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/model/types"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/statserr"
)

// codec decodes one content type. The envelope and the snapshots inside it
// are always encoded with the same codec.
type codec interface {
	Name() string
	Envelope(data []byte) (*types.ChangeEvent, error)
	Unmarshal(data []byte, v any) error
	// EventID digs the event id out of a payload that failed to decode, for logging.
	EventID(data []byte) string
}

func codecFor(header nats.Header) codec {
	if header != nil && strings.EqualFold(header.Get(constant.ContentTypeHeader), constant.ContentTypeMsgpack) {
		return msgpackCodec{}
	}
	return jsonCodec{}
}

type jsonCodec struct{}

type jsonEnvelope struct {
	EventID     string          `json:"eventId"`
	Before      json.RawMessage `json:"before"`
	After       json.RawMessage `json:"after"`
	CommittedAt int64           `json:"committedAt"`
}

var jsonNull = []byte("null")

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Envelope(data []byte) (*types.ChangeEvent, error) {
	var env jsonEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, statserr.ErrMalformedRecord.Msg("undecodable json envelope").Wrap(err)
	}
	return &types.ChangeEvent{
		EventID:     env.EventID,
		Before:      jsonSide(env.Before),
		After:       jsonSide(env.After),
		CommittedAt: env.CommittedAt,
	}, nil
}

func jsonSide(raw json.RawMessage) []byte {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return nil
	}
	return raw
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) EventID(data []byte) string {
	return gjson.GetBytes(data, "eventId").String()
}

type msgpackCodec struct{}

type msgpackEnvelope struct {
	EventID     string             `msgpack:"eventId"`
	Before      msgpack.RawMessage `msgpack:"before"`
	After       msgpack.RawMessage `msgpack:"after"`
	CommittedAt int64              `msgpack:"committedAt"`
}

// msgpackNil is the single byte msgpack encodes nil as.
const msgpackNil = 0xc0

func (msgpackCodec) Name() string { return "msgpack" }

func (msgpackCodec) Envelope(data []byte) (*types.ChangeEvent, error) {
	var env msgpackEnvelope
	if err := msgpack.Unmarshal(data, &env); err != nil {
		return nil, statserr.ErrMalformedRecord.Msg("undecodable msgpack envelope").Wrap(err)
	}
	return &types.ChangeEvent{
		EventID:     env.EventID,
		Before:      msgpackSide(env.Before),
		After:       msgpackSide(env.After),
		CommittedAt: env.CommittedAt,
	}, nil
}

func msgpackSide(raw msgpack.RawMessage) []byte {
	if len(raw) == 0 || (len(raw) == 1 && raw[0] == msgpackNil) {
		return nil
	}
	return raw
}

// Unmarshal reads snapshots by their json field names so both content types
// share the struct tags of the record types.
func (msgpackCodec) Unmarshal(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}

func (msgpackCodec) EventID(data []byte) string {
	var env struct {
		EventID string `msgpack:"eventId"`
	}
	if err := msgpack.Unmarshal(data, &env); err != nil {
		return ""
	}
	return env.EventID
}
