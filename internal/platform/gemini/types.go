package gemini

// generateContentRequest is the JSON body of a generateContent call.
// GenerationConfig and SafetySettings are passed through from configuration
// verbatim and omitted entirely when unset.
type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig map[string]any   `json:"generationConfig,omitempty"`
	SafetySettings   []map[string]any `json:"safetySettings,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateContentResponse mirrors the slice of the provider response this
// service reads. Everything else in the payload is ignored.
type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}
