package chat

import (
	"encoding/json"
	"errors"
)

// User identifies who a session credential is issued for.
type User struct {
	ID string `json:"id"`
}

// Credential is the short-lived secret a chat widget exchanges for a live
// conversation. Provider credentials keep the upstream payload untouched.
type Credential struct {
	SessionID    string `json:"session_id"`
	ClientSecret string `json:"client_secret"`
	ExpiresIn    int    `json:"expires_in"`
	User         *User  `json:"user,omitempty"`
	Mock         bool   `json:"mock,omitempty"`

	raw json.RawMessage
}

// ParseCredential decodes a provider payload, remembering the original bytes.
// Any well-formed JSON is accepted and passed through unchanged. Fields that
// are missing or have unexpected types are left empty. Only malformed JSON is
// an error.
func ParseCredential(payload []byte) (Credential, error) {
	var cred Credential
	if err := json.Unmarshal(payload, &cred); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return Credential{}, err
		}
	}
	cred.raw = append(json.RawMessage(nil), payload...)
	return cred, nil
}

// Raw returns the provider payload, or nil for locally built credentials.
func (c Credential) Raw() json.RawMessage {
	if len(c.raw) == 0 {
		return nil
	}
	return append(json.RawMessage(nil), c.raw...)
}

// MarshalJSON re-emits provider payloads verbatim.
func (c Credential) MarshalJSON() ([]byte, error) {
	if len(c.raw) > 0 {
		return c.raw, nil
	}
	type plain Credential
	return json.Marshal(plain(c))
}
