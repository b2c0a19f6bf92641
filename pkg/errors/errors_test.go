package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, ToHTTPStatus(ErrSignatureMismatch))
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(ErrMalformedPayload))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(ErrDeliveryFailed))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(fmt.Errorf("plain error")))
}

func TestToHTTPStatusWrapped(t *testing.T) {
	err := fmt.Errorf("handler: %w", ErrSignatureMismatch.WithCause(fmt.Errorf("digest mismatch")))
	assert.Equal(t, http.StatusUnauthorized, ToHTTPStatus(err))
	assert.True(t, IsSignatureMismatch(err))
}

func TestToErrorResponseHidesCause(t *testing.T) {
	cause := fmt.Errorf("secret material: shpss_abc")
	resp := ToErrorResponse(ErrDeliveryFailed.WithCause(cause))

	assert.Equal(t, "DELIVERY_FAILED", resp["error_code"])
	assert.Equal(t, ErrDeliveryFailed.Message, resp["error"])

	// The cause never reaches the response body.
	for _, v := range resp {
		s, ok := v.(string)
		if ok {
			assert.NotContains(t, s, "shpss_abc")
		}
	}
}

func TestWithCauseDoesNotMutateBase(t *testing.T) {
	derived := ErrDeliveryFailed.WithCause(fmt.Errorf("boom"))
	require.NotNil(t, derived.Cause)
	assert.Nil(t, ErrDeliveryFailed.Cause)
}

func TestWithDetail(t *testing.T) {
	err := ErrDeliveryFailed.WithDetail("status", 400)
	resp := ToErrorResponse(err)

	details, ok := resp["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 400, details["status"])
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrValidation))

	cause := fmt.Errorf("unexpected end of JSON input")
	err := Wrap(cause, ErrMalformedPayload)
	require.NotNil(t, err)
	assert.Equal(t, ErrMalformedPayload.Code, err.Code)
	assert.Equal(t, cause, err.Cause)
	assert.True(t, IsMalformedPayload(err))
}

func TestRecoverPanic(t *testing.T) {
	assert.Nil(t, RecoverPanic(nil))

	tests := []struct {
		name      string
		recovered interface{}
	}{
		{name: "string value", recovered: "index out of range"},
		{name: "error value", recovered: fmt.Errorf("nil map write")},
		{name: "arbitrary value", recovered: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RecoverPanic(tt.recovered)
			require.Error(t, err)

			var appErr *Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, ErrInternal.Code, appErr.Code)
			assert.Equal(t, true, appErr.Details["panic"])
			assert.Contains(t, appErr.Details["stack_trace"], "goroutine")
		})
	}
}
