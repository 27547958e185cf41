package chat

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderCredentialMarshalsVerbatim(t *testing.T) {
	payload := []byte(`{"session_id":"cks_1","client_secret":"ek_2","expires_in":600,"workflow":{"id":"wf"}}`)

	cred, err := ParseCredential(payload)
	require.NoError(t, err)
	assert.Equal(t, "cks_1", cred.SessionID)
	assert.Equal(t, 600, cred.ExpiresIn)

	out, err := json.Marshal(cred)
	require.NoError(t, err)
	assert.Equal(t, string(payload), string(out))
}

func TestLocalCredentialMarshalsFields(t *testing.T) {
	cred := Credential{SessionID: "mock-session-1", ClientSecret: "mock-secret-a", ExpiresIn: 3600, User: &User{ID: "guest-x"}, Mock: true}

	out, err := json.Marshal(cred)
	require.NoError(t, err)
	assert.JSONEq(t, `{"session_id":"mock-session-1","client_secret":"mock-secret-a","expires_in":3600,"user":{"id":"guest-x"},"mock":true}`, string(out))
	assert.Nil(t, cred.Raw())
}

func TestProviderErrorFallsBackToDefaultMessage(t *testing.T) {
	assert.Equal(t, DefaultProviderMessage, (&ProviderError{StatusCode: 500}).Error())
	assert.Equal(t, "quota exceeded", (&ProviderError{StatusCode: 429, Message: "quota exceeded"}).Error())
}

func TestParseCredentialToleratesFieldTypes(t *testing.T) {
	cred, err := ParseCredential([]byte(`{"session_id":"cks_1","client_secret":"ek_2","expires_in":"soon"}`))
	require.NoError(t, err)
	assert.Equal(t, "ek_2", cred.ClientSecret)
	assert.Zero(t, cred.ExpiresIn)
}

func TestParseCredentialRejectsNonJSON(t *testing.T) {
	_, err := ParseCredential([]byte(`<html>bad gateway</html>`))
	require.Error(t, err)
}

func TestParseCredentialPassesNonObjectsThrough(t *testing.T) {
	for _, payload := range []string{`[1,2]`, `"str"`, `null`} {
		t.Run(payload, func(t *testing.T) {
			cred, err := ParseCredential([]byte(payload))
			require.NoError(t, err)
			assert.Empty(t, cred.SessionID)

			out, err := json.Marshal(cred)
			require.NoError(t, err)
			assert.Equal(t, payload, string(out))
		})
	}
}
