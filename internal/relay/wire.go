// Package relay is a best-effort websocket broadcaster for body states.
//
// Every inbound text frame must be a JSON object; it replaces the sender's
// last blob, and the whole map of blobs keyed by connection id is written to
// every connection. There is no ordering or delivery guarantee.
package relay

import (
	"bytes"
	"encoding/json"
)

// Peers maps a connection id to the last blob that connection sent
type Peers map[string]json.RawMessage

// emptyBlob is the blob of a connection that has not sent anything yet
var emptyBlob = json.RawMessage(`{}`)

// isObject reports whether data is a single valid JSON object
func isObject(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{' && json.Valid(trimmed)
}
