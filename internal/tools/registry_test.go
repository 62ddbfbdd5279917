package tools

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Catalog(t *testing.T) {
	reg := Default()
	require.Equal(t, 12, reg.Len())

	wantOps := map[string]string{
		Logo:         "generate-logo",
		Video:        "generate-video",
		BrandKit:     "generate-brand-kit",
		Social:       "generate-social-content",
		Chat:         "chat-assistant",
		Website:      "generate-website",
		Voice:        "generate-voice",
		Photo:        "edit-photo",
		Background:   "remove-background",
		Domain:       "generate-domain",
		Slogan:       "generate-slogan",
		BusinessCard: "generate-business-card",
	}
	for id, op := range wantOps {
		d, err := reg.Lookup(id)
		require.NoError(t, err, id)
		assert.Equal(t, op, d.Form.Operation(), id)
		assert.NotEmpty(t, d.Name, id)
		assert.NotEmpty(t, d.Description, id)
		assert.NotEmpty(t, d.Form.FallbackMessage(), id)
	}
	assert.Same(t, reg, Default())
}

func TestRegistry_Lookup(t *testing.T) {
	reg := Default()

	_, err := reg.Lookup("teleporter")
	assert.True(t, errors.Is(err, ErrUnknownTool))
	assert.False(t, reg.Has("teleporter"))
	assert.True(t, reg.Has(Logo))

	assert.Panics(t, func() { reg.MustLookup("teleporter") })
	assert.NotPanics(t, func() { reg.MustLookup(Slogan) })
}

func TestRegistry_AllIsOrderedCopy(t *testing.T) {
	reg := Default()
	all := reg.All()
	require.Len(t, all, 12)
	assert.Equal(t, Logo, all[0].ID)
	assert.Equal(t, BusinessCard, all[11].ID)

	all[0] = Descriptor{}
	assert.Equal(t, Logo, reg.All()[0].ID)
}

func TestNewRegistry_Rejects(t *testing.T) {
	form := &formSpec{operation: "generate-logo"}
	tests := []struct {
		name string
		in   []Descriptor
	}{
		{"empty id", []Descriptor{{Form: form}}},
		{"nil form", []Descriptor{{ID: "logo"}}},
		{"duplicate", []Descriptor{{ID: "logo", Form: form}, {ID: "logo", Form: form}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.in...)
			assert.Error(t, err)
		})
	}
}
