package log

import (
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// ErrMalformedEvent is returned when a decoded event's payload does not
// match its category.
var ErrMalformedEvent = errors.New("log: malformed event")

// maxEventDepth bounds nesting while decoding. An event is a map holding at
// most one payload map, so anything deeper is not a call log.
const maxEventDepth = 4

// A call log is a bare sequence of CBOR items, one per event, with no file
// header. Timestamps are written as tag 0 strings so generic CBOR tools can
// read them; durations stay integer nanoseconds.
var (
	eventEncMode cbor.EncMode
	eventDecMode cbor.DecMode
)

func init() {
	var err error

	eventEncMode, err = cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
		TimeTag:       cbor.EncTagRequired,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("call log encoder mode: %v", err))
	}

	eventDecMode, err = cbor.DecOptions{
		DupMapKey:       cbor.DupMapKeyEnforcedAPF,
		IndefLength:     cbor.IndefLengthForbidden,
		MaxNestedLevels: maxEventDepth,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("call log decoder mode: %v", err))
	}
}

func newEventEncoder(w io.Writer) *cbor.Encoder { return eventEncMode.NewEncoder(w) }

func newEventDecoder(r io.Reader) *cbor.Decoder { return eventDecMode.NewDecoder(r) }

func encodeEvent(event Event) ([]byte, error) {
	return eventEncMode.Marshal(event)
}

func decodeEvent(data []byte) (Event, error) {
	var event Event
	if err := eventDecMode.Unmarshal(data, &event); err != nil {
		return Event{}, err
	}
	if err := checkPayload(event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// checkPayload reports whether event carries the payload its category names
// and no other. Events without any payload are accepted.
func checkPayload(event Event) error {
	set := 0
	for _, present := range []bool{event.Call != nil, event.Handshake != nil, event.Object != nil, event.Error != nil} {
		if present {
			set++
		}
	}
	if set == 0 {
		return nil
	}
	var ok bool
	switch event.Category {
	case CategoryCall:
		ok = event.Call != nil
	case CategoryHandshake:
		ok = event.Handshake != nil
	case CategoryObject:
		ok = event.Object != nil
	case CategoryError:
		ok = event.Error != nil
	}
	if !ok || set > 1 {
		return fmt.Errorf("%w: category %s with %d payloads", ErrMalformedEvent, event.Category, set)
	}
	return nil
}
