package worker

import "encoding/json"

const (
	codeUnknownMethod = "unknownMethod"
	codeProtocol      = "protocol"
	codeFailed        = "failed"
)

// Request is a method call crossing the dispatcher boundary
type Request struct {
	ID     string          `json:"id"`
	Method string          `json:"method"`
	Args   json.RawMessage `json:"args,omitempty"`
}

// Reply carries the outcome of a Request with the same ID
type Reply struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result,omitempty"`
	Code   string          `json:"code,omitempty"`
	Error  string          `json:"error,omitempty"`
}
