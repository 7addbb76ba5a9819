package errno

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"nil", nil, OK.Code, OK.Message},
		{"plain errno", ErrInvalidRecipient, ErrInvalidRecipient.Code, "Invalid recipient"},
		{"with message", ErrUnsupportedNetwork.WithMessage("Unsupported network: %s", "foo"), ErrUnsupportedNetwork.Code, "Unsupported network: foo"},
		{"wrapped cause", ErrServiceRequest.Wrap(errors.New("boom")), ErrServiceRequest.Code, "Signing service request failed: boom"},
		{"fmt wrapped", fmt.Errorf("outer: %w", ErrInvalidFee), ErrInvalidFee.Code, "Invalid fee"},
		{"foreign", errors.New("other"), InternalServerError.Code, "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := Decode(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := ErrUnsupportedNetwork.WithMessage("Unsupported network: %s", "x")
	assert.ErrorIs(t, err, ErrUnsupportedNetwork)
	assert.NotErrorIs(t, err, ErrInvalidTransaction)

	cause := errors.New("timeout")
	wrapped := ErrServiceRequest.Wrap(cause)
	assert.ErrorIs(t, wrapped, ErrServiceRequest)
	assert.ErrorIs(t, wrapped, cause)
}
