package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoArgs struct {
	Text string `json:"text"`
}

func newTestDispatcher(t *testing.T) *Dispatcher {
	d := NewDispatcher(2, 4, nil)
	t.Cleanup(func() { _ = d.Close() })
	d.Handle("echo", Bind(func(ctx context.Context, args *echoArgs) (string, error) {
		return args.Text, nil
	}))
	d.Handle("fail", Bind(func(ctx context.Context, args *echoArgs) (string, error) {
		return "", errors.New("boom")
	}))
	d.Handle("panic", func(ctx context.Context, args json.RawMessage) (interface{}, error) {
		panic("bad handler")
	})
	return d
}

func TestDispatcher_Call(t *testing.T) {
	d := newTestDispatcher(t)
	tests := []struct {
		description string
		method      string
		args        interface{}
		expected    string
		expectedErr error
		errText     string
	}{
		{
			description: "echo",
			method:      "echo",
			args:        &echoArgs{Text: "hello"},
			expected:    "hello",
		},
		{
			description: "unknown method",
			method:      "missing",
			args:        &echoArgs{},
			expectedErr: ErrUnknownMethod,
		},
		{
			description: "undecodable arguments",
			method:      "echo",
			args:        []int{1, 2},
			expectedErr: ErrProtocol,
		},
		{
			description: "handler error",
			method:      "fail",
			args:        &echoArgs{},
			errText:     "boom",
		},
		{
			description: "handler panic",
			method:      "panic",
			args:        nil,
			errText:     "panicked",
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			var actual string
			err := d.Call(context.Background(), tc.method, tc.args, &actual)
			switch {
			case tc.expectedErr != nil:
				assert.ErrorIs(t, err, tc.expectedErr)
			case tc.errText != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errText)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.expected, actual)
			}
		})
	}
}

func TestDispatcher_Call_UndecodableReply(t *testing.T) {
	d := newTestDispatcher(t)
	var actual int
	err := d.Call(context.Background(), "echo", &echoArgs{Text: "not a number"}, &actual)
	assert.ErrorIs(t, err, ErrProtocol)

	// the failure is local to the call
	var text string
	require.NoError(t, d.Call(context.Background(), "echo", &echoArgs{Text: "ok"}, &text))
	assert.Equal(t, "ok", text)
}

func TestDispatcher_Deliver_Unmatched(t *testing.T) {
	d := newTestDispatcher(t)
	before := testutil.ToFloat64(unmatchedRepliesTotal)
	d.Deliver([]byte(`{"id":"unknown","result":"x"}`))
	d.Deliver([]byte(`not json`))
	assert.Equal(t, before+2, testutil.ToFloat64(unmatchedRepliesTotal))
}

func TestDispatcher_Call_Abandoned(t *testing.T) {
	d := newTestDispatcher(t)
	release := make(chan struct{})
	d.Handle("block", func(ctx context.Context, args json.RawMessage) (interface{}, error) {
		<-release
		return "late", nil
	})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := d.Call(ctx, "block", nil, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	close(release)

	var text string
	require.NoError(t, d.Call(context.Background(), "echo", &echoArgs{Text: "after"}, &text))
	assert.Equal(t, "after", text)
}

func TestDispatcher_Close(t *testing.T) {
	d := NewDispatcher(1, 0, nil)
	require.NoError(t, d.Close())
	require.NoError(t, d.Close())
	assert.ErrorIs(t, d.Call(context.Background(), "echo", nil, nil), ErrClosed)
}
