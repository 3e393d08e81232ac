package validator

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Errors collects validation messages per field, keeping the order in which
// fields were first reported.
type Errors struct {
	fields   []string
	messages map[string][]string
}

func NewErrors() *Errors {
	return &Errors{messages: make(map[string][]string)}
}

func (e *Errors) Add(field, message string) {
	if _, ok := e.messages[field]; !ok {
		e.fields = append(e.fields, field)
	}
	e.messages[field] = append(e.messages[field], message)
}

// Set replaces every message of field with message.
func (e *Errors) Set(field, message string) {
	if _, ok := e.messages[field]; !ok {
		e.fields = append(e.fields, field)
	}
	e.messages[field] = []string{message}
}

func (e *Errors) Has(field string) bool {
	if e == nil {
		return false
	}
	_, ok := e.messages[field]
	return ok
}

func (e *Errors) Get(field string) []string {
	if e == nil {
		return nil
	}
	return e.messages[field]
}

func (e *Errors) Fields() []string {
	if e == nil {
		return nil
	}
	return e.fields
}

// Len counts messages, not fields.
func (e *Errors) Len() int {
	if e == nil {
		return 0
	}
	n := 0
	for _, msgs := range e.messages {
		n += len(msgs)
	}
	return n
}

func (e *Errors) Empty() bool {
	return e.Len() == 0
}

// Merge appends every message of other after the ones already in e.
func (e *Errors) Merge(other *Errors) {
	if other == nil {
		return
	}
	for _, field := range other.fields {
		for _, msg := range other.messages[field] {
			e.Add(field, msg)
		}
	}
}

// Message is the first message, followed by a count of the remaining ones.
func (e *Errors) Message() string {
	if e.Empty() {
		return ""
	}
	first := e.messages[e.fields[0]][0]

	switch rest := e.Len() - 1; rest {
	case 0:
		return first
	case 1:
		return first + " (and 1 more error)"
	default:
		return fmt.Sprintf("%s (and %d more errors)", first, rest)
	}
}

func (e *Errors) Error() string {
	return e.Message()
}

// MarshalJSON writes the fields in report order.
func (e *Errors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range e.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field)
		if err != nil {
			return nil, err
		}
		msgs, err := json.Marshal(e.messages[field])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(msgs)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
