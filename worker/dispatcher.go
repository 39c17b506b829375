package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrProtocol is returned when arguments or a reply cannot be decoded
	ErrProtocol = errors.New("worker protocol error")
	// ErrUnknownMethod is returned for methods without a handler
	ErrUnknownMethod = errors.New("unknown method")
	// ErrClosed is returned by calls made after Close
	ErrClosed = errors.New("dispatcher closed")
)

var tracer = otel.Tracer("jsdbg")

// Dispatcher serves analysis requests on a pool of goroutines.
// Arguments and results cross the pool boundary as JSON and replies are routed back by request id.
type Dispatcher struct {
	logger   *slog.Logger
	requests chan *Request

	mu       sync.RWMutex
	handlers map[string]Handler
	pending  map[string]chan *Reply
	closed   bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDispatcher starts workers goroutines reading from a queue of queueSize requests
func NewDispatcher(workers, queueSize int, logger *slog.Logger) *Dispatcher {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if queueSize < 0 {
		queueSize = 0
	}
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	d := &Dispatcher{
		logger:   logger,
		requests: make(chan *Request, queueSize),
		handlers: map[string]Handler{},
		pending:  map[string]chan *Reply{},
		ctx:      ctx,
		cancel:   cancel,
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.work()
	}
	return d
}

// Handle registers handler for method, replacing any previous one
func (d *Dispatcher) Handle(method string, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[method] = handler
}

// Methods returns the number of registered methods
func (d *Dispatcher) Methods() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.handlers)
}

// Call invokes method with args and decodes the reply result into result, which may be nil.
// The caller stops waiting when ctx is done; the request itself still runs to completion.
func (d *Dispatcher) Call(ctx context.Context, method string, args interface{}, result interface{}) error {
	payload, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("failed to encode %v arguments: %w", method, err)
	}
	request := &Request{ID: uuid.NewString(), Method: method, Args: payload}
	replies := make(chan *Reply, 1)

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrClosed
	}
	d.pending[request.ID] = replies
	d.mu.Unlock()
	defer d.forget(request.ID)

	select {
	case d.requests <- request:
	case <-ctx.Done():
		return ctx.Err()
	case <-d.ctx.Done():
		return ErrClosed
	}

	select {
	case reply := <-replies:
		return decode(reply, result)
	case <-ctx.Done():
		return ctx.Err()
	case <-d.ctx.Done():
		return ErrClosed
	}
}

// Deliver routes an encoded reply to the caller waiting for its id.
// Replies nobody waits for are logged and dropped.
func (d *Dispatcher) Deliver(data []byte) {
	reply := &Reply{}
	if err := json.Unmarshal(data, reply); err != nil || reply.ID == "" {
		unmatchedRepliesTotal.Inc()
		d.logger.Warn("dropping undecodable reply", slog.Int("size", len(data)), slog.Any("error", err))
		return
	}
	d.mu.RLock()
	replies, ok := d.pending[reply.ID]
	d.mu.RUnlock()
	if !ok {
		unmatchedRepliesTotal.Inc()
		d.logger.Warn("dropping unmatched reply", slog.String("id", reply.ID))
		return
	}
	select {
	case replies <- reply:
	default:
		d.logger.Warn("dropping duplicate reply", slog.String("id", reply.ID))
	}
}

// Close stops accepting calls and waits for the workers to exit
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	d.mu.Unlock()
	d.cancel()
	d.wg.Wait()
	return nil
}

func (d *Dispatcher) forget(id string) {
	d.mu.Lock()
	delete(d.pending, id)
	d.mu.Unlock()
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for {
		select {
		case <-d.ctx.Done():
			return
		case request := <-d.requests:
			data, err := json.Marshal(d.serve(request))
			if err != nil {
				d.logger.Error("failed to encode reply", slog.String("method", request.Method), slog.Any("error", err))
				data, _ = json.Marshal(&Reply{ID: request.ID, Code: codeProtocol, Error: err.Error()})
			}
			d.Deliver(data)
		}
	}
}

func (d *Dispatcher) serve(request *Request) *Reply {
	ctx, span := tracer.Start(d.ctx, request.Method, trace.WithAttributes(
		attribute.String("jsdbg.request.id", request.ID),
	))
	defer span.End()
	started := time.Now()
	defer func() {
		requestDuration.WithLabelValues(request.Method).Observe(time.Since(started).Seconds())
	}()

	reply := &Reply{ID: request.ID}
	d.mu.RLock()
	handler, ok := d.handlers[request.Method]
	d.mu.RUnlock()
	if !ok {
		reply.Code, reply.Error = codeUnknownMethod, request.Method
		d.finish(span, request, fmt.Errorf("%w: %s", ErrUnknownMethod, request.Method))
		return reply
	}

	result, err := d.invoke(ctx, handler, request)
	if err == nil {
		if reply.Result, err = json.Marshal(result); err != nil {
			err = fmt.Errorf("%w: invalid result: %v", ErrProtocol, err)
		}
	}
	if err != nil {
		reply.Result = nil
		reply.Code, reply.Error = codeFailed, err.Error()
		if errors.Is(err, ErrProtocol) {
			reply.Code = codeProtocol
		}
	}
	d.finish(span, request, err)
	return reply
}

// invoke runs handler, converting a panic into an error so that the worker survives
func (d *Dispatcher) invoke(ctx context.Context, handler Handler, request *Request) (result interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v panicked: %v", request.Method, r)
		}
	}()
	return handler(ctx, request.Args)
}

func (d *Dispatcher) finish(span trace.Span, request *Request, err error) {
	if err == nil {
		requestsTotal.WithLabelValues(request.Method, "ok").Inc()
		span.SetStatus(codes.Ok, "")
		return
	}
	requestsTotal.WithLabelValues(request.Method, "error").Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	d.logger.Debug("request failed",
		slog.String("id", request.ID),
		slog.String("method", request.Method),
		slog.Any("error", err))
}

func decode(reply *Reply, result interface{}) error {
	switch reply.Code {
	case "":
	case codeUnknownMethod:
		return fmt.Errorf("%w: %s", ErrUnknownMethod, reply.Error)
	case codeProtocol:
		return fmt.Errorf("%w: %s", ErrProtocol, reply.Error)
	default:
		return errors.New(reply.Error)
	}
	if result == nil || len(reply.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(reply.Result, result); err != nil {
		return fmt.Errorf("%w: invalid reply: %v", ErrProtocol, err)
	}
	return nil
}
