package generation

import (
	"encoding/json"
	"io"
	"math"

	"github.com/labstack/echo/v4"

	"github.com/lotayaai/lotaya-io/pkg/apperror"
)

// maxBodyBytes caps request bodies; the largest legitimate one is a chat
// message with its context.
const maxBodyBytes = 1 << 20

// fields reads loosely typed JSON input and collects one FieldError per
// invalid field, so a single 422 reports every problem at once.
type fields struct {
	raw  map[string]any
	errs []apperror.FieldError
}

func bindFields(c echo.Context) (*fields, error) {
	data, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBodyBytes))
	if err != nil {
		return nil, apperror.NewBadRequest("could not read request body").WithInternal(err)
	}
	return parseFields(data)
}

func parseFields(data []byte) (*fields, error) {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, apperror.NewValidation(apperror.FieldError{
			Loc:  []string{"body"},
			Msg:  "Expecting value",
			Type: "value_error.jsondecode",
		})
	}
	raw, ok := decoded.(map[string]any)
	if !ok {
		return nil, apperror.NewValidation(apperror.FieldError{
			Loc:  []string{"body"},
			Msg:  "value is not a valid dict",
			Type: "type_error.dict",
		})
	}
	return &fields{raw: raw}, nil
}

func (f *fields) invalid(name, msg, typ string) {
	f.errs = append(f.errs, apperror.FieldError{Loc: []string{"body", name}, Msg: msg, Type: typ})
}

// err returns the accumulated validation failure, if any.
func (f *fields) err() error {
	if len(f.errs) == 0 {
		return nil
	}
	return apperror.NewValidation(f.errs...)
}

func (f *fields) requiredString(name string) string {
	v, ok := f.raw[name]
	if !ok || v == nil {
		f.errs = append(f.errs, apperror.MissingField(name))
		return ""
	}
	return f.asString(name, v)
}

func (f *fields) optionalString(name, def string) string {
	v, ok := f.raw[name]
	if !ok || v == nil {
		return def
	}
	return f.asString(name, v)
}

func (f *fields) asString(name string, v any) string {
	s, ok := v.(string)
	if !ok {
		f.invalid(name, "str type expected", "type_error.str")
	}
	return s
}

func (f *fields) requiredStrings(name string) []string {
	v, ok := f.raw[name]
	if !ok || v == nil {
		f.errs = append(f.errs, apperror.MissingField(name))
		return nil
	}
	return f.asStrings(name, v)
}

func (f *fields) optionalStrings(name string, def []string) []string {
	v, ok := f.raw[name]
	if !ok || v == nil {
		return append([]string(nil), def...)
	}
	return f.asStrings(name, v)
}

func (f *fields) asStrings(name string, v any) []string {
	items, ok := v.([]any)
	if !ok {
		f.invalid(name, "value is not a valid list", "type_error.list")
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			f.invalid(name, "str type expected", "type_error.str")
			return nil
		}
		out = append(out, s)
	}
	return out
}

func (f *fields) optionalNumber(name string, def float64) float64 {
	v, ok := f.raw[name]
	if !ok || v == nil {
		return def
	}
	n, ok := v.(float64)
	if !ok {
		f.invalid(name, "value is not a valid float", "type_error.float")
		return def
	}
	return n
}

func (f *fields) optionalInt(name string, def int) int {
	v, ok := f.raw[name]
	if !ok || v == nil {
		return def
	}
	n, ok := v.(float64)
	if !ok || n != math.Trunc(n) {
		f.invalid(name, "value is not a valid integer", "type_error.integer")
		return def
	}
	return int(n)
}

func (f *fields) nonEmpty(name string, list []string) {
	if list != nil && len(list) == 0 {
		f.invalid(name, "ensure this value has at least 1 items", "value_error.list.min_items")
	}
}

// The bind functions below turn a body into a typed request and apply the
// defaults of each operation.

func bindLogo(f *fields) (LogoRequest, error) {
	req := LogoRequest{
		BrandName:    f.requiredString("brandName"),
		Keywords:     f.requiredStrings("keywords"),
		Industry:     f.optionalString("industry", ""),
		ColorPalette: f.optionalStrings("colorPalette", nil),
		Style:        f.optionalString("style", "modern"),
	}
	return req, f.err()
}

func bindVideo(f *fields) (VideoRequest, error) {
	req := VideoRequest{
		Prompt:          f.requiredString("prompt"),
		DurationSeconds: f.optionalInt("durationSeconds", 15),
		Style:           f.optionalString("style", "cinematic"),
		Resolution:      f.optionalString("resolution", "1080p"),
	}
	return req, f.err()
}

func bindBrandKit(f *fields) (BrandKitRequest, error) {
	req := BrandKitRequest{
		BrandName:        f.requiredString("brandName"),
		Industry:         f.requiredString("industry"),
		BrandPersonality: f.optionalStrings("brandPersonality", nil),
		TargetAudience:   f.optionalString("targetAudience", ""),
	}
	return req, f.err()
}

func bindSocial(f *fields) (SocialContentRequest, error) {
	req := SocialContentRequest{
		Platform:    f.requiredString("platform"),
		ContentType: f.requiredString("contentType"),
		Topic:       f.requiredString("topic"),
		Tone:        f.optionalString("tone", "professional"),
	}
	return req, f.err()
}

func bindChat(f *fields) (ChatRequest, error) {
	req := ChatRequest{
		Message: f.requiredString("message"),
		Context: f.optionalString("context", ""),
	}
	return req, f.err()
}

func bindWebsite(f *fields) (WebsiteRequest, error) {
	req := WebsiteRequest{
		BusinessName: f.requiredString("businessName"),
		BusinessType: f.requiredString("businessType"),
		Pages:        f.optionalStrings("pages", []string{"home", "about", "services", "contact"}),
		ColorScheme:  f.optionalString("colorScheme", "modern"),
	}
	return req, f.err()
}

func bindVoice(f *fields) (VoiceRequest, error) {
	req := VoiceRequest{
		Text:     f.requiredString("text"),
		Voice:    f.optionalString("voice", "female"),
		Language: f.optionalString("language", "en-US"),
		Speed:    f.optionalNumber("speed", 1.0),
	}
	return req, f.err()
}

func bindPhoto(f *fields) (PhotoEditRequest, error) {
	req := PhotoEditRequest{
		ImageURL:  f.requiredString("imageUrl"),
		EditType:  f.requiredString("editType"),
		Intensity: f.optionalNumber("intensity", 0.8),
	}
	return req, f.err()
}

func bindBackground(f *fields) (BackgroundRemovalRequest, error) {
	req := BackgroundRemovalRequest{
		ImageURL: f.requiredString("imageUrl"),
	}
	return req, f.err()
}

func bindDomain(f *fields) (DomainRequest, error) {
	req := DomainRequest{
		Keywords:   f.requiredStrings("keywords"),
		Extensions: f.optionalStrings("extensions", []string{".com", ".io", ".ai"}),
	}
	f.nonEmpty("keywords", req.Keywords)
	return req, f.err()
}

func bindSlogan(f *fields) (SloganRequest, error) {
	req := SloganRequest{
		BrandName: f.requiredString("brandName"),
		Industry:  f.requiredString("industry"),
		Tone:      f.optionalString("tone", "inspiring"),
	}
	return req, f.err()
}

func bindBusinessCard(f *fields) (BusinessCardRequest, error) {
	req := BusinessCardRequest{
		Name:    f.requiredString("name"),
		Title:   f.requiredString("title"),
		Company: f.requiredString("company"),
		Email:   f.optionalString("email", ""),
		Phone:   f.optionalString("phone", ""),
		Website: f.optionalString("website", ""),
		Style:   f.optionalString("style", "modern"),
	}
	return req, f.err()
}
