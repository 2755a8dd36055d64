package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/07piyush/wardrobeai/domain"
)

func TestExtractTags(t *testing.T) {
	tests := []struct {
		name   string
		colors []domain.RGB
		want   []string
	}{
		{"pure red", []domain.RGB{{R: 255}}, []string{"red"}},
		{"pure green", []domain.RGB{{G: 255}}, []string{"green"}},
		{"pure blue", []domain.RGB{{B: 255}}, []string{"blue"}},
		{"near black", []domain.RGB{{R: 10, G: 10, B: 10}}, []string{"black"}},
		{"near white", []domain.RGB{{R: 250, G: 250, B: 250}}, []string{"white"}},
		{"soft lilac is pastel", []domain.RGB{{R: 200, G: 180, B: 220}}, []string{"pastel"}},
		{"mid gray matches nothing", []domain.RGB{{R: 120, G: 120, B: 120}}, nil},
		{"no colors, no tags", nil, nil},
		{"empty cluster result, no tags", []domain.RGB{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTags(tt.colors))
		})
	}
}

func TestExtractTagsUsesFirstColorOnly(t *testing.T) {
	// Only the dominant (first) color feeds the rule table.
	got := ExtractTags([]domain.RGB{{R: 120, G: 120, B: 120}, {R: 255}})
	assert.Empty(t, got)
}
