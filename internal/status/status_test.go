package status

import (
	"bytes"
	"testing"
)

func TestPlainPrinter(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Info, "generating star.svg\n"},
		{Success, "ok: generating star.svg\n"},
		{Error, "error: generating star.svg\n"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			var buf bytes.Buffer
			NewPlain(&buf).Show(tt.kind, "generating %s", "star.svg")
			if got := buf.String(); got != tt.want {
				t.Errorf("Show() wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHelpers(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlain(&buf)
	p.Infof("a")
	p.Successf("b %d", 2)
	p.Errorf("c")
	if want := "a\nok: b 2\nerror: c\n"; buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestKindString(t *testing.T) {
	if got := Kind(42).String(); got != "unknown" {
		t.Errorf("Kind(42).String() = %q, want unknown", got)
	}
}
