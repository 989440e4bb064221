package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/jhoicas/kondate-api/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

// GeminiService adaptador que implementa LLMService con el SDK oficial de Google Gen AI.
type GeminiService struct {
	client *genai.Client
	model  string
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
// Si apiKey está vacío no se crea cliente: las llamadas devuelven error descriptivo
// en lugar de impedir el arranque del servidor.
func NewGeminiService(ctx context.Context, apiKey, model string) (*GeminiService, error) {
	s := &GeminiService{model: model}
	if apiKey == "" {
		return s, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("AI: crear cliente Gemini: %w", err)
	}
	s.client = client
	return s, nil
}

// GenerateText envía el prompt a Gemini y devuelve el texto de la respuesta.
func (s *GeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("AI: GOOGLE_API_KEY no configurado")
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.7),
		// JSON puro reduce la necesidad de limpiar markdown; la extracción tolera ambos casos.
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: Gemini generate: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}
	return text, nil
}
