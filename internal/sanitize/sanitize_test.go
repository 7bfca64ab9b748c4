package sanitize

import (
	"reflect"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "Alice Moreno", "Alice Moreno"},
		{"angle brackets stripped", "<b>bold</b>", "bbold/b"},
		{"javascript protocol stripped", "javascript:alert(1)", "xalert(1)"},
		{"event handler stripped", `onclick=doIt`, "doIt"},
		{"dangerous call defanged", "alert(1); eval (code)", "xalert(1); xeval (code)"},
		{"case insensitive", "JaVaScRiPt:x", "x"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValueRecurses(t *testing.T) {
	input := map[string]any{
		"name":  "<script>evil</script>",
		"tags":  []any{"javascript:x", 42},
		"count": 3,
	}
	got := Value(input)
	want := map[string]any{
		"name":  "scriptevil/script",
		"tags":  []any{"x", 42},
		"count": 3,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Value = %#v, want %#v", got, want)
	}
}
