// Package snapmock provides a testify mock of snap.Handler.
package snapmock

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"multichain-send/internal/snap"
)

type Handler struct {
	mock.Mock
}

func (h *Handler) HandleRequest(ctx context.Context, req snap.Request) (json.RawMessage, error) {
	args := h.Called(ctx, req)
	raw, _ := args.Get(0).(json.RawMessage)
	return raw, args.Error(1)
}

// JSON marshals v for use as a mocked response.
func JSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
