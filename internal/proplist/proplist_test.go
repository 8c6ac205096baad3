package proplist

import "testing"

func TestList_TypedAccess(t *testing.T) {
	l := New()
	l.SetString("sound", "filename:ring.wav")
	l.SetInt("max_timeout", 500)
	l.SetBool("audio_enabled", true)

	if got := l.GetString("sound"); got != "filename:ring.wav" {
		t.Errorf("GetString = %q", got)
	}
	if got := l.GetInt("max_timeout"); got != 500 {
		t.Errorf("GetInt = %d", got)
	}
	if !l.GetBool("audio_enabled") {
		t.Error("GetBool = false, want true")
	}
}

func TestList_ZeroValues(t *testing.T) {
	l := New()
	l.SetInt("n", 7)

	if got := l.GetString("missing"); got != "" {
		t.Errorf("GetString(missing) = %q, want empty", got)
	}
	if got := l.GetInt("missing"); got != 0 {
		t.Errorf("GetInt(missing) = %d, want 0", got)
	}
	if l.GetBool("missing") {
		t.Error("GetBool(missing) = true, want false")
	}
	// Wrong type reads as the zero value too.
	if got := l.GetString("n"); got != "" {
		t.Errorf("GetString over int = %q, want empty", got)
	}
}

func TestList_OrderPreserved(t *testing.T) {
	l := New()
	l.SetInt("a", 1)
	l.SetInt("b", 2)
	l.SetInt("a", 3) // overwrite keeps position

	keys := l.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Keys = %v, want [a b]", keys)
	}
	if got := l.GetInt("a"); got != 3 {
		t.Errorf("a = %d, want 3", got)
	}
}

func TestList_Copy(t *testing.T) {
	l := New()
	l.SetInt("a", 1)

	c := l.Copy()
	c.SetInt("a", 2)
	c.SetInt("b", 3)

	if got := l.GetInt("a"); got != 1 {
		t.Errorf("original mutated: a = %d", got)
	}
	if l.Has("b") {
		t.Error("original grew a key from the copy")
	}
}

func TestList_Merge(t *testing.T) {
	parent := New()
	parent.SetBool("audio_enabled", true)
	parent.SetInt("max_timeout", 500)

	child := New()
	child.SetInt("max_timeout", 1000)
	child.SetString("sound", "filename:sms.wav")

	merged := parent.Copy()
	merged.Merge(child)

	if !merged.GetBool("audio_enabled") {
		t.Error("inherited key lost in merge")
	}
	if got := merged.GetInt("max_timeout"); got != 1000 {
		t.Errorf("overridden key = %d, want 1000", got)
	}
	if got := merged.GetString("sound"); got != "filename:sms.wav" {
		t.Errorf("child-only key = %q", got)
	}

	// Merging nil is a no-op.
	merged.Merge(nil)
	if merged.Len() != 3 {
		t.Errorf("Len = %d after nil merge, want 3", merged.Len())
	}
}
