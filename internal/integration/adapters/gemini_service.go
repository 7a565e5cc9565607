// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/fiscal-tracker/backend/internal/application/adapter"
	"github.com/fiscal-tracker/backend/internal/domain/entity"
	"github.com/fiscal-tracker/backend/internal/domain/valueobject"
)

// GeminiService implements the SuggestionService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// NewGeminiServiceWithModel creates a Gemini service with a specific model.
// An empty model name falls back to the default.
func NewGeminiServiceWithModel(apiKey, modelName string) *GeminiService {
	service := NewGeminiService(apiKey)
	if modelName != "" {
		service.modelName = modelName
	}
	return service
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Suggest analyzes draft obligations and returns kind and recurrence suggestions.
func (s *GeminiService) Suggest(ctx context.Context, request *adapter.ObligationSuggestionRequest) ([]*adapter.ObligationSuggestionResult, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)

	// Configure model for JSON output
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	results, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return results, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(request *adapter.ObligationSuggestionRequest) string {
	var sb strings.Builder

	sb.WriteString(`Voce e um especialista em obrigacoes fiscais brasileiras. Sua tarefa e analisar rascunhos de obrigacoes e sugerir o tipo e a recorrencia de cada um.

Para cada rascunho, voce deve:
1. Classificar o tipo da obrigacao
2. Identificar a frequencia de recorrencia, se houver
3. Sugerir o dia do mes de vencimento tipico, quando aplicavel

TIPOS VALIDOS (use APENAS estes valores exatos):
- "tax": impostos e contribuicoes (DAS, DARF, ISS, ICMS, IRPJ, CSLL, PIS, COFINS, INSS, FGTS)
- "installment": parcelamentos e acordos (REFIS, parcelamento ordinario)
- "declaration": declaracoes e entregas acessorias (DCTF, EFD, SPED, DIRF, RAIS, eSocial)
- "document": emissao ou renovacao de documentos (certidoes, alvaras, licencas)
- "other": quando nenhum dos anteriores se aplica

FREQUENCIAS VALIDAS (use APENAS estes valores exatos):
- "none": obrigacao avulsa, sem recorrencia
- "monthly", "bimonthly", "quarterly", "semiannual", "annual"

REFERENCIAS DE VENCIMENTO COMUM:
- DAS (Simples Nacional): mensal, dia 20
- DARF IRPJ/CSLL trimestral: quarterly, ultimo dia util do mes seguinte (use dia 31)
- ISS municipal: mensal, tipicamente dia 10 ou 15
- FGTS: mensal, dia 7
- INSS (GPS): mensal, dia 20
- DCTF: mensal, dia 15
- DIRF e RAIS: annual
- Certidoes e alvaras: geralmente annual ou "none"

RASCUNHOS PARA CLASSIFICAR:
`)

	for _, draft := range request.Drafts {
		sb.WriteString(fmt.Sprintf("- ID: %s, Nome: \"%s\", Descricao: \"%s\"\n",
			draft.ID, draft.Name, draft.Description))
	}

	sb.WriteString(`
Responda com um array JSON de sugestoes. Cada sugestao deve ter:
{
  "draft_id": "uuid do rascunho",
  "suggested_kind": "tax" | "installment" | "declaration" | "document" | "other",
  "suggested_frequency": "none" | "monthly" | "bimonthly" | "quarterly" | "semiannual" | "annual",
  "anchor_day_of_month": 1-31 ou 0 quando a frequencia for "none",
  "confidence": 0.0-1.0,
  "reasoning": "breve explicacao em Portugues"
}

FORMATO DE RESPOSTA: Retorne apenas o array JSON, sem texto adicional.
`)

	return sb.String()
}

// geminiSuggestion represents the raw response from Gemini.
type geminiSuggestion struct {
	DraftID            string  `json:"draft_id"`
	SuggestedKind      string  `json:"suggested_kind"`
	SuggestedFrequency string  `json:"suggested_frequency"`
	AnchorDayOfMonth   int     `json:"anchor_day_of_month"`
	Confidence         float64 `json:"confidence"`
	Reasoning          string  `json:"reasoning"`
}

// parseResponse parses the Gemini response into ObligationSuggestionResults.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) ([]*adapter.ObligationSuggestionResult, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var suggestions []geminiSuggestion
	if err := json.Unmarshal([]byte(textContent), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	results := make([]*adapter.ObligationSuggestionResult, 0, len(suggestions))
	for _, sg := range suggestions {
		draftID, err := uuid.Parse(sg.DraftID)
		if err != nil {
			continue // Skip invalid IDs
		}

		result := &adapter.ObligationSuggestionResult{
			DraftID:            draftID,
			SuggestedKind:      sg.SuggestedKind,
			SuggestedFrequency: sg.SuggestedFrequency,
			AnchorDayOfMonth:   sg.AnchorDayOfMonth,
			Confidence:         sg.Confidence,
			Reasoning:          sg.Reasoning,
		}

		if !entity.ValidObligationKind(entity.ObligationKind(result.SuggestedKind)) {
			result.SuggestedKind = string(entity.ObligationKindOther)
		}

		switch valueobject.Frequency(result.SuggestedFrequency) {
		case valueobject.FrequencyNone, valueobject.FrequencyMonthly, valueobject.FrequencyBimonthly,
			valueobject.FrequencyQuarterly, valueobject.FrequencySemiannual, valueobject.FrequencyAnnual:
			// Valid
		default:
			result.SuggestedFrequency = string(valueobject.FrequencyNone)
		}

		if result.SuggestedFrequency == string(valueobject.FrequencyNone) {
			result.AnchorDayOfMonth = 0
		} else if result.AnchorDayOfMonth < 1 || result.AnchorDayOfMonth > 31 {
			result.AnchorDayOfMonth = 1
		}

		results = append(results, result)
	}

	return results, nil
}
