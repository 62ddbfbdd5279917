package sdk

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Payload is a successful response body. Its shape depends on the operation,
// so accessors return zero values for absent or mistyped keys.
type Payload map[string]any

// String returns the string value at key.
func (p Payload) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Strings returns the string elements of the array at key.
func (p Payload) Strings(key string) []string {
	switch v := p[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Message returns the human readable summary most operations include.
func (p Payload) Message() string { return p.String("message") }

// AssetURL returns the generated asset location, if any.
func (p Payload) AssetURL() string { return p.String("assetUrl") }

// Metadata returns the operation-specific metadata object, if any.
func (p Payload) Metadata() map[string]any {
	m, _ := p["metadata"].(map[string]any)
	return m
}

// Decode copies the payload into a typed view such as GenerationResult.
func (p Payload) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("create decoder: %w", err)
	}
	if err := dec.Decode(map[string]any(p)); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

// GenerationResult is the common response of asset-producing operations.
type GenerationResult struct {
	JobID    string         `json:"jobId"`
	Status   string         `json:"status"`
	Message  string         `json:"message"`
	AssetURL string         `json:"assetUrl"`
	Metadata map[string]any `json:"metadata"`
}

// ChatResult is the response of the chat assistant.
type ChatResult struct {
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions"`
}

// DomainSuggestion is one candidate domain name.
type DomainSuggestion struct {
	Domain    string `json:"domain"`
	Available bool   `json:"available"`
	Price     string `json:"price"`
}

// DomainResult is the response of the domain generator.
type DomainResult struct {
	Suggestions []DomainSuggestion `json:"suggestions"`
}

// Counts returns how many suggestions are available and how many are taken.
func (r DomainResult) Counts() (available, taken int) {
	for _, s := range r.Suggestions {
		if s.Available {
			available++
		} else {
			taken++
		}
	}
	return available, taken
}

// SloganResult is the response of the slogan maker.
type SloganResult struct {
	Slogans []string `json:"slogans"`
}
