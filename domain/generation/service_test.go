package generation

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotayaai/lotaya-io/internal/config"
	"github.com/lotayaai/lotaya-io/internal/storage"
)

const testAssetBase = "https://assets.test"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Generation: config.GenerationConfig{
			DelayScale:     0,
			AssetBaseURL:   testAssetBase,
			DomainCacheTTL: time.Minute,
		},
	}
}

func newTestService(t *testing.T, store Store) *Service {
	t.Helper()
	if store == nil {
		store = NewMemoryStore()
	}
	assets, err := storage.NewService(&storage.Config{PublicBase: testAssetBase}, testLogger())
	require.NoError(t, err)

	svc, err := NewService(testConfig(), store, assets, testLogger())
	require.NoError(t, err)
	svc.newID = func() string { return "1a2b3c4d" }
	return svc
}

func TestGenerateLogo(t *testing.T) {
	store := NewMemoryStore()
	svc := newTestService(t, store)

	resp, err := svc.GenerateLogo(context.Background(), LogoRequest{
		BrandName: "Acme",
		Keywords:  []string{"fast"},
		Style:     "modern",
	})
	require.NoError(t, err)

	assert.Equal(t, "logo_1a2b3c4d", resp.JobID)
	assert.Equal(t, StatusCompleted, resp.Status)
	assert.Equal(t, "Professional logo generated for Acme", resp.Message)
	assert.Equal(t, testAssetBase+"/logos/logo_1a2b3c4d.png", resp.AssetURL)
	assert.Equal(t, defaultLogoColors, resp.Metadata["colors"])
	assert.Nil(t, resp.Metadata["industry"])

	job, err := store.GetJob(context.Background(), "logo_1a2b3c4d")
	require.NoError(t, err)
	assert.Equal(t, "logo", job.Type)
	assert.Equal(t, resp.AssetURL, job.AssetURL)
	assert.Equal(t, "Acme", job.RequestData["brandName"])
	assert.False(t, job.CreatedAt.IsZero())
}

func TestPersistenceByOperation(t *testing.T) {
	store := NewMemoryStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	_, err := svc.GenerateVideo(ctx, VideoRequest{Prompt: "p", DurationSeconds: 15})
	require.NoError(t, err)
	_, err = svc.GenerateBrandKit(ctx, BrandKitRequest{BrandName: "Acme", Industry: "tech"})
	require.NoError(t, err)
	_, err = svc.GenerateSocialContent(ctx, SocialContentRequest{Platform: "instagram", ContentType: "post", Topic: "t"})
	require.NoError(t, err)
	_, err = svc.GenerateWebsite(ctx, WebsiteRequest{BusinessName: "Acme", BusinessType: "bakery"})
	require.NoError(t, err)
	_, err = svc.GenerateVoice(ctx, VoiceRequest{Text: "hi"})
	require.NoError(t, err)

	jobs, err := store.ListJobs(ctx, 0)
	require.NoError(t, err)
	types := map[string]bool{}
	for _, j := range jobs {
		types[j.Type] = true
	}
	assert.Equal(t, map[string]bool{"video": true, "brand_kit": true, "social_content": true}, types)
}

func TestAssetResponses(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	tests := []struct {
		name        string
		run         func() (*GenerationResponse, error)
		wantURL     string
		wantMessage string
	}{
		{
			name: "video",
			run: func() (*GenerationResponse, error) {
				return svc.GenerateVideo(ctx, VideoRequest{Prompt: "p", DurationSeconds: 30, Style: "cinematic", Resolution: "4k"})
			},
			wantURL:     "/videos/video_1a2b3c4d.mp4",
			wantMessage: "AI video generated successfully (30s)",
		},
		{
			name: "brand kit",
			run: func() (*GenerationResponse, error) {
				return svc.GenerateBrandKit(ctx, BrandKitRequest{BrandName: "Acme", Industry: "tech"})
			},
			wantURL:     "/brandkits/brandkit_1a2b3c4d.zip",
			wantMessage: "Complete brand kit generated for Acme",
		},
		{
			name: "social",
			run: func() (*GenerationResponse, error) {
				return svc.GenerateSocialContent(ctx, SocialContentRequest{Platform: "linkedIn", ContentType: "story", Topic: "t"})
			},
			wantURL:     "/social/social_1a2b3c4d.png",
			wantMessage: "Linkedin story generated successfully",
		},
		{
			name: "website",
			run: func() (*GenerationResponse, error) {
				return svc.GenerateWebsite(ctx, WebsiteRequest{BusinessName: "Acme", BusinessType: "bakery"})
			},
			wantURL:     "/websites/website_1a2b3c4d.html",
			wantMessage: "Website concept generated for Acme",
		},
		{
			name: "voice",
			run: func() (*GenerationResponse, error) {
				return svc.GenerateVoice(ctx, VoiceRequest{Text: "hello"})
			},
			wantURL:     "/audio/voice_1a2b3c4d.mp3",
			wantMessage: "High-quality voice audio generated",
		},
		{
			name: "photo",
			run: func() (*GenerationResponse, error) {
				return svc.EditPhoto(ctx, PhotoEditRequest{ImageURL: "https://x/y.jpg", EditType: "enhance", Intensity: 0.8})
			},
			wantURL:     "/photos/photo_1a2b3c4d.jpg",
			wantMessage: "Photo enhance completed successfully",
		},
		{
			name: "background",
			run: func() (*GenerationResponse, error) {
				return svc.RemoveBackground(ctx, BackgroundRemovalRequest{ImageURL: "https://x/y.jpg"})
			},
			wantURL:     "/backgrounds/bg_remove_1a2b3c4d.png",
			wantMessage: "Background removed successfully",
		},
		{
			name: "business card",
			run: func() (*GenerationResponse, error) {
				return svc.GenerateBusinessCard(ctx, BusinessCardRequest{Name: "Jo", Title: "CEO", Company: "Acme", Style: "modern"})
			},
			wantURL:     "/cards/card_1a2b3c4d.pdf",
			wantMessage: "Professional business card designed for Jo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := tt.run()
			require.NoError(t, err)
			assert.Equal(t, testAssetBase+tt.wantURL, resp.AssetURL)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, StatusCompleted, resp.Status)
			assert.NotEmpty(t, resp.Metadata)
		})
	}
}

func TestGenerateVoice_Duration(t *testing.T) {
	svc := newTestService(t, nil)
	resp, err := svc.GenerateVoice(context.Background(), VoiceRequest{Text: "0123456789", Voice: "male", Language: "en-GB"})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, resp.Metadata["duration"], 1e-9)
	assert.Equal(t, "male", resp.Metadata["voice"])
}

func TestChat(t *testing.T) {
	svc := newTestService(t, nil)

	tests := []struct {
		message    string
		wantPrefix string
	}{
		{"Can you design a LOGO?", "I'd love to help you create a stunning logo!"},
		{"my brand needs a video", "Building a strong brand identity is exciting!"},
		{"make me a video", "Video content is incredibly powerful"},
		{"hello there", "I'm here to help with all your creative design needs!"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			resp, err := svc.Chat(context.Background(), ChatRequest{Message: tt.message})
			require.NoError(t, err)
			assert.Contains(t, resp.Response, tt.wantPrefix)
			assert.NotEmpty(t, resp.Suggestions)
		})
	}

	resp, err := svc.Chat(context.Background(), ChatRequest{Message: "hi"})
	require.NoError(t, err)
	resp.Suggestions[0] = "mutated"
	again, err := svc.Chat(context.Background(), ChatRequest{Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "Generate a logo", again.Suggestions[0])
}

func TestDomainCombos(t *testing.T) {
	assert.Equal(t,
		[]string{"technovacloud", "technovacloud", "technovahub", "technovapro", "gettechnova", "technovaly"},
		domainCombos([]string{"Tech Nova", "Cloud"}))
	assert.Equal(t,
		[]string{"abc", "ab", "ahub", "apro", "geta", "aly"},
		domainCombos([]string{"a", "b", "c"}))
	assert.Nil(t, domainCombos([]string{"  "}))
}

func TestGenerateDomains(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()
	req := DomainRequest{Keywords: []string{"tech", "nova", "labs"}, Extensions: []string{".com", ".io", ".ai"}}

	first, err := svc.GenerateDomains(ctx, req)
	require.NoError(t, err)
	require.Len(t, first.Suggestions, maxDomainSuggestions)
	assert.Equal(t, "technovalabs.com", first.Suggestions[0].Domain)
	assert.Equal(t, "technova.com", first.Suggestions[3].Domain)
	assert.Equal(t, "techhub.com", first.Suggestions[6].Domain)

	price := regexp.MustCompile(`^\$([1-4][0-9]|50)\.99/year$`)
	for _, s := range first.Suggestions {
		assert.Regexp(t, price, s.Price)
	}

	second, err := svc.GenerateDomains(ctx, req)
	require.NoError(t, err)
	for i := range first.Suggestions {
		assert.Equal(t, first.Suggestions[i].Available, second.Suggestions[i].Available, first.Suggestions[i].Domain)
	}
}

func TestGenerateDomains_FewResults(t *testing.T) {
	svc := newTestService(t, nil)
	resp, err := svc.GenerateDomains(context.Background(), DomainRequest{Keywords: []string{"x"}, Extensions: []string{".com"}})
	require.NoError(t, err)
	assert.Len(t, resp.Suggestions, 6)
}

func TestGenerateSlogans(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	tech, err := svc.GenerateSlogans(ctx, SloganRequest{BrandName: "Acme", Industry: "Technology"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Innovate with Acme",
		"The Future is Acme",
		"Powered by Acme",
		"Transform Tomorrow with Acme",
		"Where Innovation Meets Excellence",
	}, tech.Slogans)

	other, err := svc.GenerateSlogans(ctx, SloganRequest{BrandName: "Acme", Industry: "Food & Beverage"})
	require.NoError(t, err)
	assert.Equal(t, "Experience Acme", other.Slogans[0])
	assert.Len(t, other.Slogans, 5)
}

func TestWaitHonoursCancellation(t *testing.T) {
	svc := newTestService(t, nil)
	svc.cfg.DelayScale = 1

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := svc.GenerateLogo(ctx, LogoRequest{BrandName: "Acme", Keywords: []string{"a"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestTitleCase(t *testing.T) {
	tests := map[string]string{
		"instagram": "Instagram",
		"LINKEDIN":  "Linkedin",
		"x-twitter": "X-Twitter",
		"tik tok":   "Tik Tok",
		"":          "",
	}
	for in, want := range tests {
		assert.Equal(t, want, titleCase(in), in)
	}
}
