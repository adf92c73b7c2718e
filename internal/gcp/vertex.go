// Package gcp holds the Vertex AI client used for opportunistic text
// translation of biography and FAQ fields.
package gcp

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
)

// --- Translator Model Prompts ---
const TranslatorSystemPrompt = "You are a professional translator. You translate the text you are given into the requested target language, preserving tone, names and motorsport terminology. You return only the translated text, with no preamble and no quotation marks around it."

const translatorPromptTemplate = `Translate the following text into %s. Return only the translation.

%s`

// VertexClient holds the pre-configured translation model.
type VertexClient struct {
	translatorModel *genai.GenerativeModel
	baseClient      *genai.Client
}

// NewVertexClient creates a client holding the translation model.
func NewVertexClient(ctx context.Context, projectID, region string) (*VertexClient, error) {
	if projectID == "" || region == "" {
		return nil, fmt.Errorf("NewVertexClient: projectID and region cannot be empty")
	}

	baseClient, err := genai.NewClient(ctx, projectID, region)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	translatorModel := baseClient.GenerativeModel("gemini-1.5-pro")
	translatorModel.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(TranslatorSystemPrompt)},
	}
	translatorModel.GenerationConfig = genai.GenerationConfig{
		Temperature: genai.Ptr[float32](0.0), // deterministic translations
	}

	return &VertexClient{
		translatorModel: translatorModel,
		baseClient:      baseClient,
	}, nil
}

// Translate converts text into the target language. On any model
// failure the caller is expected to fall back to the original text.
func (c *VertexClient) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	prompt := genai.Text(fmt.Sprintf(translatorPromptTemplate, targetLanguage, text))

	resp, err := c.translatorModel.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate translation: %w", err)
	}

	translated := extractText(resp)
	if translated == "" {
		return "", fmt.Errorf("translation response contained no text")
	}
	return translated, nil
}

func (c *VertexClient) Close() error {
	if c.baseClient != nil {
		return c.baseClient.Close()
	}
	return nil
}

// extractText concatenates the text parts of the model's first candidate.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(b.String())
}
