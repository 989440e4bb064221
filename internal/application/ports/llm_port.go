package ports

import "context"

// LLMService define el puerto de salida hacia el servicio generativo de texto.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz.
// La respuesta es texto libre: interpretarla es responsabilidad del caso de uso.
type LLMService interface {
	// GenerateText envía el prompt y devuelve el texto de la respuesta.
	// Errores de red, cuota o configuración se devuelven como error.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
