package consumer

import (
	"fmt"
	"strings"
)

// Message is a single record handed back by a poll. It is printed once and
// then dropped. A nil Key means the record has no key.
type Message struct {
	Topic     string
	Partition int32
	Offset    int64
	Key       []byte
	Value     []byte
}

// Position renders the topic/partition/offset triple, e.g.
// "products [[0]] @42".
func (m Message) Position() string {
	return fmt.Sprintf("%s [[%d]] @%d", m.Topic, m.Partition, m.Offset)
}

// DecodeValue returns the value as UTF-8 text. Invalid byte sequences are
// replaced with U+FFFD and a nil value decodes to "".
func (m Message) DecodeValue() string {
	return strings.ToValidUTF8(string(m.Value), "\uFFFD")
}
