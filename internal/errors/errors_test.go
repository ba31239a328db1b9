package errors

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "config missing",
			code:    "E101",
			wantMsg: "No components.json found",
			wantCat: CategoryConfig,
		},
		{
			name:    "unknown item",
			code:    "E112",
			wantMsg: "Unknown registry item",
			wantCat: CategoryRegistry,
		},
		{
			name:    "template source missing",
			code:    "E121",
			wantMsg: "Template source missing",
			wantCat: CategoryExport,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "file %q not found", "logo.tsx")
	if err.Message != `file "logo.tsx" not found` {
		t.Errorf("Message = %q, want %q", err.Message, `file "logo.tsx" not found`)
	}
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q, want %q", err.Category, CategoryCLI)
	}
}

func TestLallyError_Error(t *testing.T) {
	err := New("E101")
	got := err.Error()
	want := "E101: No components.json found"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	// Without code
	err2 := &LallyError{Message: "test error"}
	if err2.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", err2.Error(), "test error")
	}
}

func TestLallyError_Unwrap(t *testing.T) {
	inner := Newf(CategoryCLI, "inner")
	err := New("E103").Wrap(inner)
	if err.Unwrap() != inner {
		t.Error("Unwrap should return the wrapped error")
	}
}

func TestLallyError_Builders(t *testing.T) {
	err := New("E111").
		WithDetail("Namespace 'nope' is not known").
		WithSuggestion("Run 'lally list' to see available items").
		WithExample("lally add branding/logo")

	if err.Detail != "Namespace 'nope' is not known" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if err.Suggestion == "" || err.Example == "" {
		t.Error("Suggestion and Example should be set")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E103") != nil {
		t.Error("FromError(nil) should be nil")
	}

	le := New("E101")
	if FromError(le, "E103") != le {
		t.Error("FromError should pass through LallyError unchanged")
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E112").
		WithDetail("Item 'branding/nope' is not in the registry").
		WithSuggestion("Run 'lally list'").
		WithExample("lally add branding/logo")

	out := err.Format()
	for _, want := range []string{
		"ERROR E112: Unknown registry item",
		"branding/nope",
		"Hint: Run 'lally list'",
		"lally add branding/logo",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E121")
	got := err.FormatCompact()
	if got != "E121: Template source missing" {
		t.Errorf("FormatCompact() = %q", got)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five six seven eight nine ten", 20)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %v", lines)
	}
	for _, line := range lines {
		if len(line) > 20 {
			t.Errorf("line too long: %q", line)
		}
	}

	if wrapText("", 10) != nil {
		t.Error("empty text should wrap to nil")
	}
}
