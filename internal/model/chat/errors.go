package chat

// DefaultProviderMessage is used when the provider rejects a session without
// explaining why.
const DefaultProviderMessage = "Failed to create Chat session"

// ProviderError reports a non-success answer from the session provider.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return DefaultProviderMessage
	}
	return e.Message
}
