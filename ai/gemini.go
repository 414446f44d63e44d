package ai

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const systemPrompt = `You are an expert mobile repair technician at "SwiftFix".
Your goal is to analyze the customer's problem description and suggest the most likely repair service needed from this list:
- Screen Replacement (cracks, lines, touch issues)
- Battery Replacement (draining, shutdown, heat)
- Charging Port Repair (cable loose, no charge)
- Camera Repair (blurry, cracked lens)
- Water Damage (liquid contact)
- General Diagnosis (unknown software/hardware bugs)

Response requirements:
1. Be empathetic but professional and concise (max 2 sentences).
2. Clearly state the likely issue.
3. Recommend one of the specific services above.`

// Gemini diagnoses repair issues with the Gemini API.
type Gemini struct {
	model *genai.GenerativeModel
	log   *zap.Logger
}

func NewGemini(ctx context.Context, apiKey string, log *zap.Logger) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-2.5-flash")
	model.SetMaxOutputTokens(150)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	return &Gemini{model: model, log: log}, nil
}

// Diagnose asks the model for a diagnosis. All failures collapse into
// the static fallback strings; nothing propagates to the caller.
func (g *Gemini) Diagnose(ctx context.Context, description string) string {
	resp, err := g.model.GenerateContent(ctx, genai.Text(description))
	if err != nil {
		g.log.Warn("gemini request failed", zap.Error(err))
		return MsgError
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
		break
	}

	if sb.Len() == 0 {
		return MsgEmpty
	}
	return sb.String()
}
