package pipeline

import (
	"strings"
	"testing"
)

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"no escape needed", "body { color: red; }", "body { color: red; }"},
		{"style close", "</style>", `<\/style>`},
		{"upper case", "</STYLE>", `<\/STYLE>`},
		{"multiple", "</a></b>", `<\/a><\/b>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := sanitizeCSS(tt.input); got != tt.want {
				t.Errorf("sanitizeCSS(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestInjectCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
		css      string
		want     string
	}{
		{
			name:     "empty css leaves document unchanged",
			document: "<html><head></head><body></body></html>",
			css:      "",
			want:     "<html><head></head><body></body></html>",
		},
		{
			name:     "before closing head",
			document: "<html><head><title>x</title></head><body></body></html>",
			css:      "p{}",
			want:     "<html><head><title>x</title><style>p{}</style></head><body></body></html>",
		},
		{
			name:     "case insensitive head",
			document: "<HTML><HEAD></HEAD><BODY></BODY></HTML>",
			css:      "p{}",
			want:     "<HTML><HEAD><style>p{}</style></HEAD><BODY></BODY></HTML>",
		},
		{
			name:     "after body when head is missing",
			document: `<body class="x"><p>a</p></body>`,
			css:      "p{}",
			want:     `<body class="x"><style>p{}</style><p>a</p></body>`,
		},
		{
			name:     "prepend as last resort",
			document: "<p>a</p>",
			css:      "p{}",
			want:     "<style>p{}</style><p>a</p>",
		},
		{
			name:     "css is sanitized",
			document: "<head></head>",
			css:      "</style><script>",
			want:     `<head><style><\/style><script></style></head>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := InjectCSS(tt.document, tt.css)
			if got != tt.want {
				t.Errorf("InjectCSS() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInjectCSS_SingleStyleBlock(t *testing.T) {
	t.Parallel()

	got := InjectCSS("<html><head></head><body></body></html>", "a{}")
	if n := strings.Count(got, "<style>"); n != 1 {
		t.Errorf("InjectCSS() produced %d style blocks, want 1", n)
	}
}
