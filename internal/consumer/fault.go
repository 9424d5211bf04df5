package consumer

import (
	"errors"
	"fmt"
)

// ErrTopicNotFound is wrapped by client adapters when the broker reports
// that the subscribed topic does not exist.
var ErrTopicNotFound = errors.New("topic not found")

// ErrCorruptRecord is wrapped by client adapters when a fetched record
// cannot be decoded at all, e.g. a CRC mismatch.
var ErrCorruptRecord = errors.New("corrupt record")

type Kind int

const (
	KindConnect Kind = iota
	KindSubscribe
	KindPoll
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindConnect:
		return "connect"
	case KindSubscribe:
		return "subscribe"
	case KindPoll:
		return "poll"
	case KindDecode:
		return "decode"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Fault is the error returned by Runner.Run when the loop stops on a failure.
type Fault struct {
	Kind  Kind
	Topic string
	Err   error
}

func (f *Fault) Error() string {
	if f.Topic == "" {
		return fmt.Sprintf("%s failed: %v", f.Kind, f.Err)
	}
	return fmt.Sprintf("%s failed on topic %s: %v", f.Kind, f.Topic, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// Retriable reports whether the fault may clear up on its own, so a caller
// could restart the runner. A missing topic or an undecodable payload will
// not.
func (f *Fault) Retriable() bool {
	return f.Kind == KindConnect || f.Kind == KindPoll
}

// KindOf extracts the fault kind from err, if err carries a *Fault.
func KindOf(err error) (Kind, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind, true
	}
	return 0, false
}
