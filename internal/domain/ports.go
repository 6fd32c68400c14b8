package domain

import "context"

// LLMClient defines how content generation talks to a language model
// when one is configured. The default deterministic templates never
// touch this interface.
type LLMClient interface {
	GenerateCopy(ctx context.Context, prompt string, voice BrandVoice) (string, error)
}

// BrandVoice is the small set of string attributes that steer content
// templates and, when a model is wired in, the generation prompt.
type BrandVoice struct {
	Tone   string
	Style  string
	Values string
}
