package theme

import "testing"

func TestByName_FallsBackToDefault(t *testing.T) {
	if got := ByName("tokyo-night").Name; got != "tokyo-night" {
		t.Fatalf("ByName(tokyo-night) = %q", got)
	}
	if got := ByName("nope").Name; got != FlexokiDark.Name {
		t.Fatalf("ByName(nope) = %q, want %q", got, FlexokiDark.Name)
	}
	if Known("nope") || !Known("terminal") {
		t.Fatal("Known disagrees with All")
	}
}

func TestShare_Grades(t *testing.T) {
	th := FlexokiDark
	tests := []struct {
		pct  float64
		want string
	}{
		{0, string(th.Gain)},
		{0.15, string(th.Notice)},
		{0.3, string(th.Warn)},
		{0.5, string(th.Loss)},
		{1, string(th.Loss)},
	}
	for _, tt := range tests {
		if got := string(th.Share(tt.pct)); got != tt.want {
			t.Errorf("Share(%v) = %s, want %s", tt.pct, got, tt.want)
		}
	}
}
