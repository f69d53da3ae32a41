package inspector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPageMeta(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected PageMeta
	}{
		{
			name: "title and description",
			html: `<html><head>
				<title>  Example Domain  </title>
				<meta name="description" content=" A sample page. ">
			</head><body></body></html>`,
			expected: PageMeta{Title: "Example Domain", Description: "A sample page."},
		},
		{
			name:     "title only",
			html:     `<html><head><title>Bare</title></head><body></body></html>`,
			expected: PageMeta{Title: "Bare"},
		},
		{
			name:     "no head elements",
			html:     `<html><body><p>content</p></body></html>`,
			expected: PageMeta{},
		},
		{
			name: "first title wins",
			html: `<html><head><title>First</title><title>Second</title></head></html>`,
			expected: PageMeta{Title: "First"},
		},
		{
			name:     "empty document",
			html:     ``,
			expected: PageMeta{},
		},
		{
			name: "description without content attribute",
			html: `<html><head><title>T</title><meta name="description"></head></html>`,
			expected: PageMeta{Title: "T"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractPageMeta(tt.html))
		})
	}
}
