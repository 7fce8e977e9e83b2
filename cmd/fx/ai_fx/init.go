package ai_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"serenely/pkg/ai"
)

var Module = fx.Provide(provideCompletionClient)

// provideCompletionClient picks the completion backend from AI_PROVIDER:
// "gemini" for the free-tier Gemini backend, anything else means OpenAI.
func provideCompletionClient() ai.CompletionClientInterface {
	if os.Getenv("AI_PROVIDER") == "gemini" {
		client, err := ai.NewGeminiCompletionClient(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Fatalf("Failed to initialize Gemini client: %v", err)
		}
		return client
	}

	return ai.NewOpenAICompletionClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))
}
