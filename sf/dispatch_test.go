package sf

import "testing"

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchFMA, "fma"},
		{DispatchLevel(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestCurrentLevel(t *testing.T) {
	if CurrentName() == "" {
		t.Error("CurrentName() is empty")
	}
	if w := CurrentWidth(); w != 16 && w != 32 && w != 64 {
		t.Errorf("CurrentWidth() = %d", w)
	}
	if HasFMA() != (CurrentLevel() == DispatchFMA) {
		t.Error("HasFMA() disagrees with CurrentLevel()")
	}
	if NoFMAEnv() && HasFMA() {
		t.Error("SF_NO_FMA is set but the FMA kernel is active")
	}
	t.Logf("dispatch: %s (%s, %d bytes)", CurrentLevel(), CurrentName(), CurrentWidth())
}

func TestNoFMAEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("SF_NO_FMA", tt.value)
		if got := NoFMAEnv(); got != tt.want {
			t.Errorf("SF_NO_FMA=%q: NoFMAEnv() = %v, want %v", tt.value, got, tt.want)
		}
	}
}
