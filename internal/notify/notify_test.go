package notify

import (
	"bytes"
	"strings"
	"testing"

	"kalemci/internal/prefs"
	"kalemci/internal/theme"
)

func testNotifier(t *testing.T) (*Notifier, *bytes.Buffer) {
	t.Helper()
	p, err := prefs.OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("prefs.OpenAt: %v", err)
	}
	var buf bytes.Buffer
	return New(&buf, theme.Current(p)), &buf
}

func TestNotifierLevels(t *testing.T) {
	n, buf := testNotifier(t)

	n.Success("yazı kaydedildi: %s", "merhaba-dunya")
	n.Error("yükleme başarısız: %s", "permission denied")
	n.Info("3 sonuç bulundu")

	out := buf.String()
	for _, want := range []string{
		"yazı kaydedildi: merhaba-dunya",
		"yükleme başarısız: permission denied",
		"3 sonuç bulundu",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if got := strings.Count(out, "\n"); got != 3 {
		t.Errorf("expected 3 lines, got %d", got)
	}
}

func TestNotifierDisabled(t *testing.T) {
	n, buf := testNotifier(t)
	n.SetEnabled(false)

	n.Success("sessiz")
	n.Error("sessiz")
	n.Info("sessiz")

	if buf.Len() != 0 {
		t.Errorf("disabled notifier wrote output: %q", buf.String())
	}
}
