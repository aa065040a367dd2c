// Package chatbot answers portal support questions in English or Hindi.
// Replies come from the LLM when available; otherwise a keyword-routed
// table of canned responses serves as the fallback.
package chatbot

import (
	"context"
	"log"
	"strings"

	"github.com/Prajwal471/PM-Internship-Portal/internal/llm"
	"github.com/Prajwal471/PM-Internship-Portal/internal/prompts"
)

// Reply sources reported to the presentation layer.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// Bot answers support questions. client may be nil, in which case every
// reply comes from the fallback tables.
type Bot struct {
	client llm.Client
}

// New builds a Bot around an optional LLM client.
func New(client llm.Client) *Bot {
	return &Bot{client: client}
}

// Reply produces a response to a support message. language is "en" or
// "hi"; anything else is treated as "en". The returned source tells the
// caller whether the LLM or the canned tables answered.
func (b *Bot) Reply(ctx context.Context, message, language string) (string, string) {
	if language != "hi" {
		language = "en"
	}

	if b.client == nil {
		return fallbackReply(message, language), SourceFallback
	}

	template, err := prompts.Get("chatbot.json", "assistant-"+language)
	if err != nil {
		log.Printf("chatbot prompt lookup failed: %v", err)
		return fallbackReply(message, language), SourceFallback
	}
	prompt := prompts.Format(template, map[string]string{"Message": message})

	response, err := b.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		log.Printf("chatbot AI reply failed, using canned response: %v", err)
		return fallbackReply(message, language), SourceFallback
	}

	response = strings.TrimSpace(response)
	if response == "" {
		return fallbackReply(message, language), SourceFallback
	}
	return response, SourceAI
}

// fallbackReply routes a message through the keyword table and returns the
// canned response for the first matching topic.
func fallbackReply(message, language string) string {
	responses := fallbackResponses[language]
	msg := strings.ToLower(message)

	for _, rule := range topicKeywords {
		for _, keyword := range rule.keywords {
			if strings.Contains(msg, keyword) {
				return responses[rule.topic]
			}
		}
	}
	return responses[topicDefault]
}
