package chat

// StarterPrompt is a canned question shown on the widget start screen.
type StarterPrompt struct {
	Icon   string `json:"icon"`
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

// ComposerModel is a response style the visitor can pick in the composer.
type ComposerModel struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// WidgetConfig is everything the chat widget needs besides its credential.
type WidgetConfig struct {
	Greeting   string          `json:"greeting"`
	Prompts    []StarterPrompt `json:"prompts"`
	Models     []ComposerModel `json:"models"`
	Disclaimer string          `json:"disclaimer"`
}
