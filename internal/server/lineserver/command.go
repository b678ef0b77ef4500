package lineserver

import (
	"context"
	"errors"

	"github.com/yndnr/msgserver-go/internal/core/domain"
	"github.com/yndnr/msgserver-go/internal/storage/memory"
	"github.com/yndnr/msgserver-go/internal/telemetry/logger"
	"github.com/yndnr/msgserver-go/internal/telemetry/metric"
)

// CommandHandler turns one request line into one response line.
type CommandHandler struct {
	store   *memory.Store
	metrics *metric.Registry
}

// NewCommandHandler creates a handler over store. metrics may be nil.
func NewCommandHandler(store *memory.Store, metrics *metric.Registry) *CommandHandler {
	return &CommandHandler{
		store:   store,
		metrics: metrics,
	}
}

// Handle processes line (terminator already removed) and returns the
// response without its newline. Malformed requests are answered, never
// returned as errors.
func (h *CommandHandler) Handle(ctx context.Context, line string) string {
	log := logger.L(ctx)
	log.Info("received line", "line", line)

	cmd := ParseLine(line)

	var (
		resp string
		err  error
	)
	switch cmd.Kind {
	case CommandPut:
		resp, err = h.handlePut(cmd.Payload)
	case CommandGet:
		resp, err = h.handleGet(cmd.Payload)
	default:
		resp, err = ResponseError, domain.ErrUnknownCommand
	}

	if err != nil {
		log.Debug("request not served", "command", cmd.Kind.String(), "code", domain.GetErrorCode(err), "error", err)
	}
	h.observe(cmd.Kind, err)

	return resp
}

func (h *CommandHandler) handlePut(payload string) (string, error) {
	key, msg, err := domain.SplitKey(payload)
	if err != nil {
		return ResponseError, err
	}
	if err := domain.ValidateMessage(msg); err != nil {
		return ResponseError, err
	}

	existing, err := h.store.Put(key, msg)
	if errors.Is(err, domain.ErrKeyExists) {
		return ResponseError + existing, err
	}
	if err != nil {
		return ResponseError, err
	}
	return ResponseOK, nil
}

func (h *CommandHandler) handleGet(payload string) (string, error) {
	key, rest, err := domain.SplitKey(payload)
	if err != nil {
		return "", err
	}
	if rest != "" {
		return "", domain.ErrTrailingData
	}

	msg, ok := h.store.Get(key)
	if !ok {
		return "", domain.ErrKeyNotFound
	}
	return msg, nil
}

func (h *CommandHandler) observe(kind CommandKind, err error) {
	if h.metrics == nil {
		return
	}

	result := metric.ResultOK
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrKeyExists):
		result = metric.ResultRejected
	case errors.Is(err, domain.ErrKeyNotFound):
		result = metric.ResultNotFound
	default:
		result = metric.ResultInvalid
	}
	h.metrics.ObserveRequest(kind.String(), result)
}
