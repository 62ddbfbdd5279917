package generation

// LogoRequest is the body of POST /api/generate-logo
type LogoRequest struct {
	BrandName    string   `json:"brandName"`
	Keywords     []string `json:"keywords"`
	Industry     string   `json:"industry,omitempty"`
	ColorPalette []string `json:"colorPalette,omitempty"`
	Style        string   `json:"style"`
}

// VideoRequest is the body of POST /api/generate-video
type VideoRequest struct {
	Prompt          string `json:"prompt"`
	DurationSeconds int    `json:"durationSeconds"`
	Style           string `json:"style"`
	Resolution      string `json:"resolution"`
}

// BrandKitRequest is the body of POST /api/generate-brand-kit
type BrandKitRequest struct {
	BrandName        string   `json:"brandName"`
	Industry         string   `json:"industry"`
	BrandPersonality []string `json:"brandPersonality,omitempty"`
	TargetAudience   string   `json:"targetAudience,omitempty"`
}

// SocialContentRequest is the body of POST /api/generate-social-content
type SocialContentRequest struct {
	Platform    string `json:"platform"`
	ContentType string `json:"contentType"`
	Topic       string `json:"topic"`
	Tone        string `json:"tone"`
}

// ChatRequest is the body of POST /api/chat-assistant
type ChatRequest struct {
	Message string `json:"message"`
	Context string `json:"context,omitempty"`
}

// WebsiteRequest is the body of POST /api/generate-website
type WebsiteRequest struct {
	BusinessName string   `json:"businessName"`
	BusinessType string   `json:"businessType"`
	Pages        []string `json:"pages"`
	ColorScheme  string   `json:"colorScheme"`
}

// VoiceRequest is the body of POST /api/generate-voice
type VoiceRequest struct {
	Text     string  `json:"text"`
	Voice    string  `json:"voice"`
	Language string  `json:"language"`
	Speed    float64 `json:"speed"`
}

// PhotoEditRequest is the body of POST /api/edit-photo
type PhotoEditRequest struct {
	ImageURL  string  `json:"imageUrl"`
	EditType  string  `json:"editType"`
	Intensity float64 `json:"intensity"`
}

// BackgroundRemovalRequest is the body of POST /api/remove-background
type BackgroundRemovalRequest struct {
	ImageURL string `json:"imageUrl"`
}

// DomainRequest is the body of POST /api/generate-domain
type DomainRequest struct {
	Keywords   []string `json:"keywords"`
	Extensions []string `json:"extensions"`
}

// SloganRequest is the body of POST /api/generate-slogan
type SloganRequest struct {
	BrandName string `json:"brandName"`
	Industry  string `json:"industry"`
	Tone      string `json:"tone"`
}

// BusinessCardRequest is the body of POST /api/generate-business-card
type BusinessCardRequest struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Company string `json:"company"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
	Style   string `json:"style"`
}

// GenerationResponse is returned by every asset-producing operation
type GenerationResponse struct {
	JobID    string         `json:"jobId"`
	Status   string         `json:"status"`
	Message  string         `json:"message"`
	AssetURL string         `json:"assetUrl,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// ChatResponse is returned by the chat assistant
type ChatResponse struct {
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions"`
}

// DomainSuggestion is one candidate domain
type DomainSuggestion struct {
	Domain    string `json:"domain"`
	Available bool   `json:"available"`
	Price     string `json:"price"`
}

// DomainResponse is returned by the domain generator
type DomainResponse struct {
	Suggestions []DomainSuggestion `json:"suggestions"`
}

// SloganResponse is returned by the slogan maker
type SloganResponse struct {
	Slogans []string `json:"slogans"`
}

// StatusCompleted is the only status the demo generators report.
const StatusCompleted = "completed"
