package chat

import (
	"fmt"

	"github.com/zhouzirui/folio/backend/internal/model/chat"
	"github.com/zhouzirui/folio/backend/internal/model/content"
)

const (
	genericGreeting = "Hi there! Ask me anything about my work, experience, or projects."
	disclaimer      = "Disclaimer: This is my AI-powered twin. It may not be 100% accurate and should be verified for accuracy."
)

var starterPrompts = []chat.StarterPrompt{
	{Icon: "suitcase", Label: "What's your experience?", Prompt: "Tell me about your professional experience and previous roles"},
	{Icon: "square-code", Label: "What skills do you have?", Prompt: "What technologies and programming languages do you specialize in?"},
	{Icon: "cube", Label: "What have you built?", Prompt: "Show me some of your most interesting projects"},
	{Icon: "profile", Label: "Who are you?", Prompt: "Tell me more about yourself and your background"},
}

var composerModels = []chat.ComposerModel{
	{ID: "crisp", Label: "Crisp", Description: "Concise and factual"},
	{ID: "clear", Label: "Clear", Description: "Focused and helpful"},
	{ID: "chatty", Label: "Chatty", Description: "Conversational companion"},
}

// WidgetConfig builds the start screen for the chat widget. The greeting
// introduces the owner by name once a profile with a first name exists.
func WidgetConfig(profile *content.Profile) chat.WidgetConfig {
	greeting := genericGreeting
	if profile != nil && profile.FirstName != "" {
		greeting = fmt.Sprintf("Hi! I'm %s. Ask me anything about my work, experience, or projects.", profile.FullName())
	}

	return chat.WidgetConfig{
		Greeting:   greeting,
		Prompts:    append([]chat.StarterPrompt(nil), starterPrompts...),
		Models:     append([]chat.ComposerModel(nil), composerModels...),
		Disclaimer: disclaimer,
	}
}
