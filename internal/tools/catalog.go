package tools

import "strings"

// Tool identifiers.
const (
	Logo         = "logo"
	Video        = "video"
	BrandKit     = "brand-kit"
	Social       = "social"
	Chat         = "chat"
	Website      = "website"
	Voice        = "voice"
	Photo        = "photo"
	Background   = "background"
	Domain       = "domain"
	Slogan       = "slogan"
	BusinessCard = "business-card"
)

const imageURLRequired = "Please enter an image URL or select a sample image"

var industries = opts("Technology", "Healthcare", "Finance", "Education", "Retail",
	"Food & Beverage", "Real Estate", "Consulting", "Entertainment", "Fashion",
	"Travel", "Automotive", "Non-profit", "Sports")

// ColorPalettes are the logo color presets, keyed by option value.
var ColorPalettes = map[string][]string{
	"tech-blue":         {"#1A73E8", "#4285F4", "#34A853"},
	"creative-purple":   {"#6366F1", "#8B5CF6", "#EC4899"},
	"professional-gray": {"#374151", "#6B7280", "#9CA3AF"},
	"energy-orange":     {"#F59E0B", "#EF4444", "#F97316"},
	"nature-green":      {"#10B981", "#059669", "#047857"},
}

// SampleImages are the stock photos offered by the image tools.
var SampleImages = []Option{
	{Value: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400", Label: "Portrait photo"},
	{Value: "https://images.unsplash.com/photo-1529626455594-4ff0802cfb7e?w=400", Label: "Fashion model"},
	{Value: "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=400", Label: "Product shot"},
	{Value: "https://images.unsplash.com/photo-1574158622682-e40e69881006?w=400", Label: "Cat portrait"},
}

func catalog() []Descriptor {
	return []Descriptor{
		{
			ID: Logo, Name: "Logo Generator", Description: "Create professional logos tailored to your brand",
			Icon: "lucide--palette", Color: "primary",
			Form: &formSpec{
				operation: "generate-logo",
				fields: []FieldSpec{
					{Name: "brandName", Label: "Brand Name", Kind: KindText, Placeholder: "Enter your brand name"},
					{Name: "keywords", Label: "Keywords", Kind: KindList, Placeholder: "modern, tech, innovative"},
					{Name: "industry", Label: "Industry", Kind: KindChoice, Options: industries},
					{Name: "style", Label: "Style", Kind: KindChoice, Default: "modern", Options: opts("modern", "classic", "minimalist", "abstract", "playful")},
					{Name: "palette", Label: "Color Palette", Kind: KindChoice, Options: []Option{
						{Value: "tech-blue", Label: "Tech Blue"},
						{Value: "creative-purple", Label: "Creative Purple"},
						{Value: "professional-gray", Label: "Professional Gray"},
						{Value: "energy-orange", Label: "Energy Orange"},
						{Value: "nature-green", Label: "Nature Green"},
					}},
				},
				rules:    []Requirement{{Fields: []string{"brandName"}, Message: "Please enter a brand name"}},
				fallback: "Failed to generate logo. Please try again.",
				shape: func(fields Fields, body map[string]any) {
					delete(body, "palette")
					colors := ColorPalettes[fields.String("palette")]
					body["colorPalette"] = append([]string{}, colors...)
				},
			},
		},
		{
			ID: Video, Name: "AI Video Generator", Description: "Generate stunning videos from text descriptions",
			Icon: "lucide--video", Color: "secondary",
			Form: &formSpec{
				operation: "generate-video",
				fields: []FieldSpec{
					{Name: "prompt", Label: "Video Description", Kind: KindTextArea, Placeholder: "Describe the video you want to create..."},
					{Name: "durationSeconds", Label: "Duration (seconds)", Kind: KindNumber, Default: 15.0, Options: opts("5", "10", "15", "30", "60"), Min: 5, Max: 60},
					{Name: "style", Label: "Style", Kind: KindChoice, Default: "cinematic", Options: opts("cinematic", "documentary", "commercial", "artistic")},
					{Name: "resolution", Label: "Resolution", Kind: KindChoice, Default: "1080p", Options: opts("480p", "720p", "1080p", "4k")},
				},
				rules:    []Requirement{{Fields: []string{"prompt"}, Message: "Please enter a video description"}},
				fallback: "Failed to generate video. Please try again.",
			},
		},
		{
			ID: BrandKit, Name: "Brand Kit", Description: "Complete brand identity in one click",
			Icon: "lucide--package", Color: "accent",
			Form: &formSpec{
				operation: "generate-brand-kit",
				fields: []FieldSpec{
					{Name: "brandName", Label: "Brand Name", Kind: KindText, Placeholder: "Enter your brand name"},
					{Name: "industry", Label: "Industry", Kind: KindChoice, Options: industries},
					{Name: "brandPersonality", Label: "Brand Personality", Kind: KindMultiChoice, Options: opts(
						"innovative", "trustworthy", "modern", "friendly", "professional",
						"creative", "reliable", "energetic", "sophisticated", "approachable",
						"bold", "elegant", "playful", "authentic", "cutting-edge")},
					{Name: "targetAudience", Label: "Target Audience", Kind: KindText, Placeholder: "e.g., Young professionals, Small businesses"},
				},
				rules:    []Requirement{{Fields: []string{"brandName", "industry"}, Message: "Please enter brand name and select industry"}},
				fallback: "Failed to generate brand kit. Please try again.",
			},
		},
		{
			ID: Social, Name: "Social Media Content", Description: "Platform-optimized posts and visuals",
			Icon: "lucide--share-2", Color: "info",
			Form: &formSpec{
				operation: "generate-social-content",
				fields: []FieldSpec{
					{Name: "platform", Label: "Platform", Kind: KindChoice, Default: "instagram", Options: opts("instagram", "facebook", "twitter", "linkedin")},
					{Name: "contentType", Label: "Content Type", Kind: KindChoice, Default: "post", Options: opts("post", "story", "banner", "cover")},
					{Name: "topic", Label: "Topic", Kind: KindTextArea, Placeholder: "What should the content be about?"},
					{Name: "tone", Label: "Tone", Kind: KindChoice, Default: "professional", Options: opts("professional", "casual", "energetic", "informative")},
				},
				rules: []Requirement{
					{Fields: []string{"topic"}, Message: "Please enter a topic for your social media content"},
					{Fields: []string{"platform", "contentType"}, Message: "Please select a platform and content type"},
				},
				fallback: "Failed to generate social content. Please try again.",
			},
		},
		{
			ID: Chat, Name: "AI Assistant", Description: "Creative guidance and design help",
			Icon: "lucide--message-square", Color: "success",
			Form: &formSpec{
				operation: "chat-assistant",
				fields: []FieldSpec{
					{Name: "message", Label: "Message", Kind: KindTextArea, Placeholder: "Ask me anything about design..."},
					{Name: "context", Label: "Context", Kind: KindTextArea, Hidden: true},
				},
				rules:    []Requirement{{Fields: []string{"message"}, Message: "Please enter a message"}},
				fallback: "I'm sorry, I'm having trouble responding right now. Please try again in a moment.",
			},
		},
		{
			ID: Website, Name: "Website Generator", Description: "Full website concepts with modern layouts",
			Icon: "lucide--globe", Color: "warning",
			Form: &formSpec{
				operation: "generate-website",
				fields: []FieldSpec{
					{Name: "businessName", Label: "Business Name", Kind: KindText, Placeholder: "Enter your business name"},
					{Name: "businessType", Label: "Business Type", Kind: KindChoice, Options: opts(
						"Technology Company", "Restaurant", "Consulting Firm", "E-commerce Store",
						"Healthcare Practice", "Creative Agency", "Real Estate", "Education",
						"Non-profit", "Financial Services", "Manufacturing", "Fitness Studio")},
					{Name: "pages", Label: "Pages", Kind: KindMultiChoice, Default: []string{"home", "about", "services", "contact"},
						Options: opts("home", "about", "services", "contact", "portfolio", "blog", "team", "pricing")},
					{Name: "colorScheme", Label: "Color Scheme", Kind: KindChoice, Default: "modern", Options: opts("modern", "classic", "vibrant", "minimal")},
				},
				rules:    []Requirement{{Fields: []string{"businessName", "businessType"}, Message: "Please enter business name and select business type"}},
				fallback: "Failed to generate website. Please try again.",
			},
		},
		{
			ID: Voice, Name: "AI Voice Generator", Description: "Transform text into lifelike speech",
			Icon: "lucide--mic", Color: "error",
			Form: &formSpec{
				operation: "generate-voice",
				fields: []FieldSpec{
					{Name: "text", Label: "Text", Kind: KindTextArea, Placeholder: "Enter the text you want to convert to speech..."},
					{Name: "voice", Label: "Voice", Kind: KindChoice, Default: "female", Options: opts("male", "female", "neutral")},
					{Name: "language", Label: "Language", Kind: KindChoice, Default: "en-US", Options: []Option{
						{Value: "en-US", Label: "English (US)"}, {Value: "en-GB", Label: "English (UK)"},
						{Value: "es-ES", Label: "Spanish"}, {Value: "fr-FR", Label: "French"},
						{Value: "de-DE", Label: "German"}, {Value: "it-IT", Label: "Italian"},
						{Value: "pt-BR", Label: "Portuguese (BR)"}, {Value: "ja-JP", Label: "Japanese"},
					}},
					{Name: "speed", Label: "Speed", Kind: KindNumber, Default: 1.0, Min: 0.5, Max: 2.0, Step: 0.1},
				},
				rules:    []Requirement{{Fields: []string{"text"}, Message: "Please enter text to convert to speech"}},
				fallback: "Failed to generate voice. Please try again.",
			},
		},
		{
			ID: Photo, Name: "Photo Editor", Description: "AI-powered image enhancement",
			Icon: "lucide--image", Color: "primary",
			Form: &formSpec{
				operation: "edit-photo",
				fields: []FieldSpec{
					{Name: "imageUrl", Label: "Image URL", Kind: KindText, Placeholder: "https://example.com/image.jpg"},
					{Name: "editType", Label: "Edit Type", Kind: KindChoice, Default: "enhance", Options: opts("enhance", "upscale", "colorize", "restore")},
					{Name: "intensity", Label: "Intensity", Kind: KindNumber, Default: 0.8, Min: 0.1, Max: 1.0, Step: 0.1},
				},
				rules:    []Requirement{{Fields: []string{"imageUrl"}, Message: imageURLRequired}},
				fallback: "Failed to edit photo. Please try again.",
			},
		},
		{
			ID: Background, Name: "Background Remover", Description: "Remove backgrounds with one click",
			Icon: "lucide--scissors", Color: "secondary",
			Form: &formSpec{
				operation: "remove-background",
				fields: []FieldSpec{
					{Name: "imageUrl", Label: "Image URL", Kind: KindText, Placeholder: "https://example.com/image.jpg"},
				},
				rules:    []Requirement{{Fields: []string{"imageUrl"}, Message: imageURLRequired}},
				fallback: "Failed to remove background. Please try again.",
			},
		},
		{
			ID: Domain, Name: "Domain Generator", Description: "Find perfect domain names",
			Icon: "lucide--search", Color: "accent",
			Form: &formSpec{
				operation: "generate-domain",
				fields: []FieldSpec{
					{Name: "keywords", Label: "Keywords", Kind: KindList, Placeholder: "ai, design, studio"},
					{Name: "extensions", Label: "Extensions", Kind: KindMultiChoice, Default: []string{".com", ".io", ".ai"},
						Options: opts(".com", ".io", ".ai", ".co", ".net", ".org", ".app", ".dev", ".tech", ".me", ".xyz", ".store")},
				},
				rules: []Requirement{
					{Fields: []string{"keywords"}, Message: "Please enter keywords for domain generation"},
					{Fields: []string{"extensions"}, Message: "Please select at least one domain extension"},
				},
				fallback: "Failed to generate domains. Please try again.",
			},
		},
		{
			ID: Slogan, Name: "Slogan Maker", Description: "Craft catchy taglines and slogans",
			Icon: "lucide--type", Color: "info",
			Form: &formSpec{
				operation: "generate-slogan",
				fields: []FieldSpec{
					{Name: "brandName", Label: "Brand Name", Kind: KindText, Placeholder: "Enter your brand name"},
					{Name: "industry", Label: "Industry", Kind: KindChoice, Options: append(industries[:len(industries)-1:len(industries)-1], Option{Value: "Sports & Fitness", Label: "Sports & Fitness"})},
					{Name: "tone", Label: "Tone", Kind: KindChoice, Default: "inspiring", Options: opts("professional", "playful", "inspiring", "bold")},
				},
				rules:    []Requirement{{Fields: []string{"brandName", "industry"}, Message: "Please enter brand name and select industry"}},
				fallback: "Failed to generate slogans. Please try again.",
			},
		},
		{
			ID: BusinessCard, Name: "Business Cards", Description: "Professional business card designs",
			Icon: "lucide--credit-card", Color: "warning",
			Form: &formSpec{
				operation: "generate-business-card",
				fields: []FieldSpec{
					{Name: "name", Label: "Full Name", Kind: KindText, Placeholder: "John Doe"},
					{Name: "title", Label: "Job Title", Kind: KindText, Placeholder: "CEO"},
					{Name: "company", Label: "Company", Kind: KindText, Placeholder: "Acme Inc."},
					{Name: "email", Label: "Email", Kind: KindText, Placeholder: "john@acme.com"},
					{Name: "phone", Label: "Phone", Kind: KindText, Placeholder: "+1 (555) 123-4567"},
					{Name: "website", Label: "Website", Kind: KindText, Placeholder: "www.acme.com"},
					{Name: "style", Label: "Style", Kind: KindChoice, Default: "modern", Options: opts("modern", "classic", "creative", "minimal")},
				},
				rules:    []Requirement{{Fields: []string{"name", "title", "company"}, Message: "Please fill in the required fields: name, title, and company"}},
				fallback: "Failed to generate business card. Please try again.",
			},
		},
	}
}

func opts(values ...string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Value: v, Label: label(v)}
	}
	return out
}

func label(v string) string {
	if v == "" || strings.HasPrefix(v, ".") || (v[0] >= '0' && v[0] <= '9') {
		return v
	}
	return strings.ToUpper(v[:1]) + v[1:]
}
