package errors

import (
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"value", "Paper A", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"tab only", "\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired("name", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://arxiv.org/pdf/1608.03960.pdf", false},
		{"http", "http://example.com/a.pdf", false},
		{"empty", "", true},
		{"file scheme", "file:///etc/passwd", true},
		{"no scheme", "example.com/a.pdf", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "board.toml", false},
		{"absolute", "/home/me/board.yaml", false},
		{"empty", "", true},
		{"null byte", "board\x00.toml", true},
		{"newline", "board\n.toml", true},
		{"too long", string(make([]byte, 5000)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	if err := ValidateFormat("SVG", "svg", "dot"); err != nil {
		t.Errorf("ValidateFormat(SVG) = %v, want nil", err)
	}
	err := ValidateFormat("png", "svg", "dot")
	if !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormat(png) code = %v, want %v", GetCode(err), ErrCodeInvalidFormat)
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidFormat,
		ErrCodeInvalidDirection,
		ErrCodeInvalidBoard,
		ErrCodeInvalidConfig,
		ErrCodeInvalidPath,
		ErrCodeInvalidIDSource,
		ErrCodeInvalidEdge,
		ErrCodeDetachedAnnotation,
		ErrCodeNotFound,
		ErrCodeDocumentNotFound,
		ErrCodeFileNotFound,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
