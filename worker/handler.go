package worker

import (
	"context"
	"encoding/json"
	"fmt"
)

// Handler serves one method, args holds the JSON encoded arguments
type Handler func(ctx context.Context, args json.RawMessage) (interface{}, error)

// Bind adapts a typed function to a Handler, argument decoding errors wrap ErrProtocol
func Bind[A any, R any](fn func(ctx context.Context, args *A) (R, error)) Handler {
	return func(ctx context.Context, raw json.RawMessage) (interface{}, error) {
		args := new(A)
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, args); err != nil {
				return nil, fmt.Errorf("%w: invalid arguments: %v", ErrProtocol, err)
			}
		}
		return fn(ctx, args)
	}
}
