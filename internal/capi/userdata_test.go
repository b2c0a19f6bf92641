package capi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUserDataHashesPII(t *testing.T) {
	userData := BuildUserData(Attributes{
		Email:     "A@B.com",
		FirstName: "Jane",
		LastName:  "Doe",
	})

	require.NotNil(t, userData.Email)
	assert.Equal(t, "fb98d44ad7501a959f3f4f4a3f004fe2d9e581ea6207e218c4b02c08a4d75adf", *userData.Email)
	require.NotNil(t, userData.FirstName)
	assert.Equal(t, "81f8f6dde88365f3928796ec7aa53f72820b06db8664f5fe76a7eb13e24546a2", *userData.FirstName)
	require.NotNil(t, userData.LastName)
	assert.Equal(t, "799ef92a11af918e3fb741df42934f3b568ed2d93ac1df74f1b8d41a27932a6f", *userData.LastName)
}

func TestBuildUserDataPassesThroughNonPII(t *testing.T) {
	userData := BuildUserData(Attributes{
		ClientIPAddress: "203.0.113.7",
		ClientUserAgent: "Mozilla/5.0",
		FBP:             "fb.1.1700000000.1234567890",
	})

	require.NotNil(t, userData.ClientIPAddress)
	assert.Equal(t, "203.0.113.7", *userData.ClientIPAddress)
	require.NotNil(t, userData.ClientUserAgent)
	assert.Equal(t, "Mozilla/5.0", *userData.ClientUserAgent)
	require.NotNil(t, userData.FBP)
	assert.Equal(t, "fb.1.1700000000.1234567890", *userData.FBP)
}

func TestBuildUserDataOmitsAbsentFields(t *testing.T) {
	userData := BuildUserData(Attributes{Email: "a@b.com"})

	raw, err := json.Marshal(userData)
	require.NoError(t, err)

	var keys map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &keys))

	// Only the populated field is present; absent fields are omitted
	// entirely, never emitted as null or empty strings.
	assert.Equal(t, map[string]interface{}{
		"em": "fb98d44ad7501a959f3f4f4a3f004fe2d9e581ea6207e218c4b02c08a4d75adf",
	}, keys)
}

func TestBuildUserDataEmptyAttributes(t *testing.T) {
	raw, err := json.Marshal(BuildUserData(Attributes{}))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))
}

func TestClassificationTablesCoverEveryKey(t *testing.T) {
	attrs := Attributes{
		Email: "a", Phone: "a", FirstName: "a", LastName: "a",
		Gender: "a", Birthdate: "a", City: "a", State: "a",
		Zip: "a", Country: "a", ExternalID: "a",
		ClientIPAddress: "a", ClientUserAgent: "a", FBC: "a", FBP: "a",
		SubscriptionID: "a", FBLoginID: "a", LeadID: "a", AnonID: "a",
		MADID: "a", PageID: "a", PageScopedUserID: "a", CTWAClid: "a",
		IGAccountID: "a", IGSID: "a",
	}

	raw, err := json.Marshal(BuildUserData(attrs))
	require.NoError(t, err)

	var keys map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &keys))

	expected := make(map[string]bool)
	for _, k := range HashedKeys {
		expected[k] = true
	}
	for _, k := range PassthroughKeys {
		expected[k] = true
	}

	assert.Len(t, keys, len(expected))
	for k := range keys {
		assert.True(t, expected[k], "unexpected user_data key %q", k)
	}

	hashed := NormalizeAndHash("a")
	require.NotNil(t, hashed)
	for _, k := range HashedKeys {
		assert.Equal(t, *hashed, keys[k], "key %q should be hashed", k)
	}
	for _, k := range PassthroughKeys {
		assert.Equal(t, "a", keys[k], "key %q should pass through verbatim", k)
	}
}
