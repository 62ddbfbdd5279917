package generation

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/maypok86/otter"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/lotayaai/lotaya-io/domain/tracing"
	"github.com/lotayaai/lotaya-io/internal/config"
	"github.com/lotayaai/lotaya-io/internal/storage"
	"github.com/lotayaai/lotaya-io/pkg/logger"
)

// asset describes where an operation's output lives and how long the demo
// pretends to work on it. An empty jobType means the job is not persisted.
type asset struct {
	prefix  string
	dir     string
	ext     string
	jobType string
	delay   time.Duration
}

var (
	logoAsset       = asset{"logo", "logos", "png", "logo", 2 * time.Second}
	videoAsset      = asset{"video", "videos", "mp4", "video", 3 * time.Second}
	brandKitAsset   = asset{"brandkit", "brandkits", "zip", "brand_kit", 4 * time.Second}
	socialAsset     = asset{"social", "social", "png", "social_content", 2 * time.Second}
	websiteAsset    = asset{"website", "websites", "html", "", 3 * time.Second}
	voiceAsset      = asset{"voice", "audio", "mp3", "", 2 * time.Second}
	photoAsset      = asset{"photo", "photos", "jpg", "", 2 * time.Second}
	backgroundAsset = asset{"bg_remove", "backgrounds", "png", "", time.Second}
	cardAsset       = asset{"card", "cards", "pdf", "", 2 * time.Second}

	chatDelay   = time.Second
	domainDelay = time.Second
	sloganDelay = time.Second
)

const maxDomainSuggestions = 10

var defaultLogoColors = []string{"#1A73E8", "#FBBC05"}

// Service produces the demo generation results
type Service struct {
	cfg     config.GenerationConfig
	store   Store
	assets  *storage.Service
	domains otter.Cache[string, bool]
	log     *slog.Logger
	tracer  trace.Tracer

	rngMu sync.Mutex
	rng   *rand.Rand

	newID func() string
}

// NewService creates the generation service
func NewService(cfg *config.Config, store Store, assets *storage.Service, log *slog.Logger) (*Service, error) {
	ttl := cfg.Generation.DomainCacheTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	domains, err := otter.MustBuilder[string, bool](10_000).
		WithTTL(ttl).
		Build()
	if err != nil {
		return nil, fmt.Errorf("build domain cache: %w", err)
	}

	return &Service{
		cfg:     cfg.Generation,
		store:   store,
		assets:  assets,
		domains: domains,
		log:     log.With(logger.Scope("generation")),
		tracer:  tracing.Tracer(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		newID:   func() string { return uuid.NewString()[:8] },
	}, nil
}

// wait simulates processing time, returning early if ctx ends.
func (s *Service) wait(ctx context.Context, nominal time.Duration) error {
	d := s.cfg.Delay(nominal)
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *Service) intn(n int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Intn(n)
}

// produce runs the common asset pipeline: delay, job id, asset URL and
// optional persistence.
func (s *Service) produce(ctx context.Context, a asset, request any) (jobID, url string, err error) {
	ctx, span := s.tracer.Start(ctx, "generation."+a.prefix)
	defer span.End()

	if err := s.wait(ctx, a.delay); err != nil {
		return "", "", err
	}

	jobID = a.prefix + "_" + s.newID()
	url, err = s.assets.AssetURL(ctx, storage.AssetKey(a.dir, jobID, a.ext))
	if err != nil {
		return "", "", err
	}
	span.SetAttributes(attribute.String("job_id", jobID))

	if a.jobType != "" {
		job := &Job{
			JobID:       jobID,
			Type:        a.jobType,
			RequestData: requestData(request),
			Status:      StatusCompleted,
			AssetURL:    url,
		}
		if err := s.store.SaveJob(ctx, job); err != nil {
			return "", "", err
		}
		JobsPersisted.WithLabelValues(a.jobType).Inc()
		s.log.Debug("generation job persisted",
			slog.String("job_id", jobID),
			slog.String("type", a.jobType),
		)
	}
	return jobID, url, nil
}

func (s *Service) GenerateLogo(ctx context.Context, req LogoRequest) (*GenerationResponse, error) {
	jobID, url, err := s.produce(ctx, logoAsset, req)
	if err != nil {
		return nil, err
	}
	colors := req.ColorPalette
	if len(colors) == 0 {
		colors = defaultLogoColors
	}
	return &GenerationResponse{
		JobID:    jobID,
		Status:   StatusCompleted,
		Message:  fmt.Sprintf("Professional logo generated for %s", req.BrandName),
		AssetURL: url,
		Metadata: map[string]any{
			"style":    req.Style,
			"colors":   colors,
			"industry": nullable(req.Industry),
		},
	}, nil
}

func (s *Service) GenerateVideo(ctx context.Context, req VideoRequest) (*GenerationResponse, error) {
	jobID, url, err := s.produce(ctx, videoAsset, req)
	if err != nil {
		return nil, err
	}
	return &GenerationResponse{
		JobID:    jobID,
		Status:   StatusCompleted,
		Message:  fmt.Sprintf("AI video generated successfully (%ds)", req.DurationSeconds),
		AssetURL: url,
		Metadata: map[string]any{
			"duration":   req.DurationSeconds,
			"style":      req.Style,
			"resolution": req.Resolution,
		},
	}, nil
}

func (s *Service) GenerateBrandKit(ctx context.Context, req BrandKitRequest) (*GenerationResponse, error) {
	jobID, url, err := s.produce(ctx, brandKitAsset, req)
	if err != nil {
		return nil, err
	}
	var personality any
	if req.BrandPersonality != nil {
		personality = req.BrandPersonality
	}
	return &GenerationResponse{
		JobID:    jobID,
		Status:   StatusCompleted,
		Message:  fmt.Sprintf("Complete brand kit generated for %s", req.BrandName),
		AssetURL: url,
		Metadata: map[string]any{
			"includes":    []string{"logo", "color_palette", "typography", "brand_guidelines"},
			"industry":    req.Industry,
			"personality": personality,
		},
	}, nil
}

func (s *Service) GenerateSocialContent(ctx context.Context, req SocialContentRequest) (*GenerationResponse, error) {
	jobID, url, err := s.produce(ctx, socialAsset, req)
	if err != nil {
		return nil, err
	}
	return &GenerationResponse{
		JobID:    jobID,
		Status:   StatusCompleted,
		Message:  fmt.Sprintf("%s %s generated successfully", titleCase(req.Platform), req.ContentType),
		AssetURL: url,
		Metadata: map[string]any{
			"platform":     req.Platform,
			"content_type": req.ContentType,
			"tone":         req.Tone,
		},
	}, nil
}

// Chat replies are keyed on the first topic word found in the message.
var chatReplies = []struct {
	keyword     string
	response    string
	suggestions []string
}{
	{
		keyword:     "logo",
		response:    "I'd love to help you create a stunning logo! What's your brand name and what industry are you in? Also, do you have any color preferences or style ideas?",
		suggestions: []string{"Tell me about your brand personality", "What's your target audience?", "Do you have competitor logos you like?"},
	},
	{
		keyword:     "brand",
		response:    "Building a strong brand identity is exciting! Let's start with your brand's core values and mission. What makes your business unique?",
		suggestions: []string{"Define your brand personality", "Identify your target market", "Choose your brand colors"},
	},
	{
		keyword:     "video",
		response:    "Video content is incredibly powerful for engagement! What type of video are you looking to create? Is it for marketing, education, or entertainment?",
		suggestions: []string{"Describe your video concept", "What's your target duration?", "What style appeals to you?"},
	},
}

const defaultChatReply = "I'm here to help with all your creative design needs! Whether it's logos, videos, social media content, or complete brand kits, I can guide you through the process. What would you like to create today?"

var defaultChatSuggestions = []string{"Generate a logo", "Create video content", "Design social media posts", "Build a brand kit"}

func (s *Service) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if err := s.wait(ctx, chatDelay); err != nil {
		return nil, err
	}
	msg := strings.ToLower(req.Message)
	for _, r := range chatReplies {
		if strings.Contains(msg, r.keyword) {
			return &ChatResponse{Response: r.response, Suggestions: append([]string(nil), r.suggestions...)}, nil
		}
	}
	return &ChatResponse{Response: defaultChatReply, Suggestions: append([]string(nil), defaultChatSuggestions...)}, nil
}

func (s *Service) GenerateWebsite(ctx context.Context, req WebsiteRequest) (*GenerationResponse, error) {
	jobID, url, err := s.produce(ctx, websiteAsset, req)
	if err != nil {
		return nil, err
	}
	return &GenerationResponse{
		JobID:    jobID,
		Status:   StatusCompleted,
		Message:  fmt.Sprintf("Website concept generated for %s", req.BusinessName),
		AssetURL: url,
		Metadata: map[string]any{
			"pages":         req.Pages,
			"business_type": req.BusinessType,
			"color_scheme":  req.ColorScheme,
		},
	}, nil
}

func (s *Service) GenerateVoice(ctx context.Context, req VoiceRequest) (*GenerationResponse, error) {
	jobID, url, err := s.produce(ctx, voiceAsset, req)
	if err != nil {
		return nil, err
	}
	return &GenerationResponse{
		JobID:    jobID,
		Status:   StatusCompleted,
		Message:  "High-quality voice audio generated",
		AssetURL: url,
		Metadata: map[string]any{
			"voice":    req.Voice,
			"language": req.Language,
			"duration": float64(len([]rune(req.Text))) * 0.1,
		},
	}, nil
}

func (s *Service) EditPhoto(ctx context.Context, req PhotoEditRequest) (*GenerationResponse, error) {
	jobID, url, err := s.produce(ctx, photoAsset, req)
	if err != nil {
		return nil, err
	}
	return &GenerationResponse{
		JobID:    jobID,
		Status:   StatusCompleted,
		Message:  fmt.Sprintf("Photo %s completed successfully", req.EditType),
		AssetURL: url,
		Metadata: map[string]any{
			"edit_type":    req.EditType,
			"intensity":    req.Intensity,
			"original_url": req.ImageURL,
		},
	}, nil
}

func (s *Service) RemoveBackground(ctx context.Context, req BackgroundRemovalRequest) (*GenerationResponse, error) {
	jobID, url, err := s.produce(ctx, backgroundAsset, req)
	if err != nil {
		return nil, err
	}
	return &GenerationResponse{
		JobID:    jobID,
		Status:   StatusCompleted,
		Message:  "Background removed successfully",
		AssetURL: url,
		Metadata: map[string]any{
			"original_url": req.ImageURL,
			"format":       "PNG with transparency",
		},
	}, nil
}

// GenerateDomains crosses keyword combinations with the requested
// extensions. Availability is cached per name so repeat lookups agree.
func (s *Service) GenerateDomains(ctx context.Context, req DomainRequest) (*DomainResponse, error) {
	if err := s.wait(ctx, domainDelay); err != nil {
		return nil, err
	}

	suggestions := make([]DomainSuggestion, 0, maxDomainSuggestions)
	for _, combo := range domainCombos(req.Keywords) {
		for _, ext := range req.Extensions {
			if len(suggestions) == maxDomainSuggestions {
				return &DomainResponse{Suggestions: suggestions}, nil
			}
			name := combo + strings.ToLower(strings.TrimSpace(ext))
			suggestions = append(suggestions, DomainSuggestion{
				Domain:    name,
				Available: s.available(name),
				Price:     fmt.Sprintf("$%d.99/year", 10+s.intn(41)),
			})
		}
	}
	return &DomainResponse{Suggestions: suggestions}, nil
}

func (s *Service) available(domain string) bool {
	if v, ok := s.domains.Get(domain); ok {
		return v
	}
	v := s.intn(2) == 0
	s.domains.Set(domain, v)
	return v
}

// domainCombos builds the six name stems from the keywords.
func domainCombos(keywords []string) []string {
	cleaned := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.Join(strings.Fields(k), ""))
		if k != "" {
			cleaned = append(cleaned, k)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}

	firstTwo := cleaned
	if len(firstTwo) > 2 {
		firstTwo = firstTwo[:2]
	}
	k0 := cleaned[0]
	return []string{
		strings.Join(cleaned, ""),
		strings.Join(firstTwo, ""),
		k0 + "hub",
		k0 + "pro",
		"get" + k0,
		k0 + "ly",
	}
}

var sloganTemplates = map[string][]string{
	"technology": {
		"Innovate with %[1]s",
		"The Future is %[1]s",
		"Powered by %[1]s",
		"Transform Tomorrow with %[1]s",
		"Where Innovation Meets Excellence",
	},
	"creative": {
		"Unleash Creativity with %[1]s",
		"Design Beyond Limits",
		"Create. Inspire. %[1]s.",
		"Your Creative Partner",
		"Imagination Unleashed",
	},
	"business": {
		"Excellence Delivered by %[1]s",
		"Your Success, Our Mission",
		"Building Better Business",
		"Solutions That Work",
		"Success Starts Here",
	},
}

var defaultSloganTemplates = []string{
	"Experience %[1]s",
	"Quality You Can Trust",
	"Making a Difference",
	"Your Partner in Success",
	"Excellence Every Time",
}

func (s *Service) GenerateSlogans(ctx context.Context, req SloganRequest) (*SloganResponse, error) {
	if err := s.wait(ctx, sloganDelay); err != nil {
		return nil, err
	}
	templates, ok := sloganTemplates[strings.ToLower(req.Industry)]
	if !ok {
		templates = defaultSloganTemplates
	}
	slogans := make([]string, len(templates))
	for i, t := range templates {
		if strings.Contains(t, "%[1]s") {
			slogans[i] = fmt.Sprintf(t, req.BrandName)
		} else {
			slogans[i] = t
		}
	}
	return &SloganResponse{Slogans: slogans}, nil
}

func (s *Service) GenerateBusinessCard(ctx context.Context, req BusinessCardRequest) (*GenerationResponse, error) {
	jobID, url, err := s.produce(ctx, cardAsset, req)
	if err != nil {
		return nil, err
	}
	return &GenerationResponse{
		JobID:    jobID,
		Status:   StatusCompleted,
		Message:  fmt.Sprintf("Professional business card designed for %s", req.Name),
		AssetURL: url,
		Metadata: map[string]any{
			"style":    req.Style,
			"includes": []string{"front_design", "back_design", "print_ready_pdf"},
			"contact_info": map[string]any{
				"name":    req.Name,
				"title":   req.Title,
				"company": req.Company,
			},
		},
	}, nil
}

// titleCase upper-cases the first letter of each word and lower-cases the rest.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	start := true
	for _, r := range s {
		if unicode.IsLetter(r) {
			if start {
				b.WriteRune(unicode.ToUpper(r))
			} else {
				b.WriteRune(unicode.ToLower(r))
			}
			start = false
			continue
		}
		b.WriteRune(r)
		start = true
	}
	return b.String()
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
