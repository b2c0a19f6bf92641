package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerify(t *testing.T) {
	secret := "shpss_test_secret"
	body := []byte(`{"id":123,"email":"a@b.com","total_price":"19.99"}`)

	tests := []struct {
		name   string
		body   []byte
		header string
		secret string
		want   bool
	}{
		{
			name:   "correct signature passes",
			body:   body,
			header: Sign(secret, body),
			secret: secret,
			want:   true,
		},
		{
			name:   "single byte mutation fails",
			body:   []byte(`{"id":124,"email":"a@b.com","total_price":"19.99"}`),
			header: Sign(secret, body),
			secret: secret,
			want:   false,
		},
		{
			name:   "wrong secret fails",
			body:   body,
			header: Sign("other_secret", body),
			secret: secret,
			want:   false,
		},
		{
			name:   "empty header fails",
			body:   body,
			header: "",
			secret: secret,
			want:   false,
		},
		{
			name:   "empty secret fails",
			body:   body,
			header: Sign(secret, body),
			secret: "",
			want:   false,
		},
		{
			name:   "garbage header fails",
			body:   body,
			header: "not-a-signature",
			secret: secret,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Verify(tt.body, tt.header, tt.secret))
		})
	}
}

func TestVerifyUsesRawBytes(t *testing.T) {
	secret := "s3cret"
	// Whitespace differences between semantically equal JSON bodies must
	// change the verification outcome.
	compact := []byte(`{"id":1}`)
	spaced := []byte(`{"id": 1}`)

	header := Sign(secret, compact)
	assert.True(t, Verify(compact, header, secret))
	assert.False(t, Verify(spaced, header, secret))
}
