package resource

import (
	"testing"

	"github.com/dshills/feedbackd/internal/vfs"
)

func newTestParser() (*Parser, *vfs.MemFS) {
	fsys := vfs.NewMemFS()
	return &Parser{
		Registry:   NewRegistry(),
		FS:         fsys,
		SoundDir:   "/usr/share/sounds",
		PatternDir: "/usr/share/vibra",
	}, fsys
}

func TestSoundPath_Profile(t *testing.T) {
	p, _ := newTestParser()

	sp, ok := p.SoundPath("profile:mykey@silent")
	if !ok {
		t.Fatal("expected successful parse")
	}
	if sp.Kind != SoundProfile {
		t.Errorf("Kind = %v, want profile", sp.Kind)
	}
	if sp.Key != "mykey" || sp.Profile != "silent" {
		t.Errorf("Key/Profile = %q/%q, want mykey/silent", sp.Key, sp.Profile)
	}
}

func TestSoundPath_ProfileIncomplete(t *testing.T) {
	p, _ := newTestParser()

	tests := []string{
		"profile:nokeypart",
		"profile:@silent",
		"profile:mykey@",
		"profile:",
	}
	for _, item := range tests {
		if _, ok := p.SoundPath(item); ok {
			t.Errorf("SoundPath(%q) parsed, want drop", item)
		}
	}
}

func TestSoundPath_Filename(t *testing.T) {
	p, fsys := newTestParser()
	fsys.WriteFile("/usr/share/sounds/ring.wav", nil)
	fsys.WriteFile("/tmp/literal.wav", nil)

	t.Run("resolved under search dir", func(t *testing.T) {
		sp, ok := p.SoundPath("filename:ring.wav")
		if !ok {
			t.Fatal("expected successful parse")
		}
		if sp.Kind != SoundFilename {
			t.Errorf("Kind = %v, want filename", sp.Kind)
		}
		if sp.Filename != "/usr/share/sounds/ring.wav" {
			t.Errorf("Filename = %q", sp.Filename)
		}
	})

	t.Run("literal path wins", func(t *testing.T) {
		sp, ok := p.SoundPath("filename:/tmp/literal.wav")
		if !ok {
			t.Fatal("expected successful parse")
		}
		if sp.Filename != "/tmp/literal.wav" {
			t.Errorf("Filename = %q", sp.Filename)
		}
	})

	t.Run("missing everywhere drops", func(t *testing.T) {
		if _, ok := p.SoundPath("filename:ghost.wav"); ok {
			t.Error("expected drop for unresolvable file")
		}
	})
}

func TestSoundPath_UnknownPrefix(t *testing.T) {
	p, _ := newTestParser()

	if _, ok := p.SoundPath("bogus:x"); ok {
		t.Error("unknown prefix parsed, want drop")
	}
	if _, ok := p.SoundPath(""); ok {
		t.Error("empty item parsed, want drop")
	}
}

func TestSoundList_SkipsInvalid(t *testing.T) {
	p, fsys := newTestParser()
	fsys.WriteFile("/usr/share/sounds/a.wav", nil)

	list := p.SoundList("filename:a.wav;bogus:x;profile:k@general")
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].Kind != SoundFilename || list[1].Kind != SoundProfile {
		t.Errorf("kinds = %v/%v", list[0].Kind, list[1].Kind)
	}
}

func TestSoundList_Empty(t *testing.T) {
	p, _ := newTestParser()
	if list := p.SoundList(""); list != nil {
		t.Errorf("SoundList(\"\") = %v, want nil", list)
	}
}

func TestVolume_Fixed(t *testing.T) {
	p, _ := newTestParser()

	v, ok := p.Volume("fixed:75")
	if !ok {
		t.Fatal("expected successful parse")
	}
	if v.Kind != VolumeFixed || v.Level != 75 {
		t.Errorf("Kind/Level = %v/%d, want fixed/75", v.Kind, v.Level)
	}
}

func TestVolume_FixedNonNumeric(t *testing.T) {
	p, _ := newTestParser()

	// Best-effort integer parsing: non-numeric text reads as 0.
	v, ok := p.Volume("fixed:loud")
	if !ok {
		t.Fatal("expected successful parse")
	}
	if v.Level != 0 {
		t.Errorf("Level = %d, want 0", v.Level)
	}
}

func TestVolume_Linear(t *testing.T) {
	p, _ := newTestParser()

	v, ok := p.Volume("linear:10;50;90")
	if !ok {
		t.Fatal("expected successful parse")
	}
	if v.Kind != VolumeLinear {
		t.Errorf("Kind = %v, want linear", v.Kind)
	}
	if v.Level != 100 {
		t.Errorf("Level = %d, want 100", v.Level)
	}
	if v.Linear != [3]int{10, 50, 90} {
		t.Errorf("Linear = %v, want [10 50 90]", v.Linear)
	}
}

func TestVolume_LinearTooFewFields(t *testing.T) {
	p, _ := newTestParser()

	for _, raw := range []string{"linear:10;50", "linear:10", "linear:"} {
		if _, ok := p.Volume(raw); ok {
			t.Errorf("Volume(%q) parsed, want drop", raw)
		}
	}
}

func TestVolume_Profile(t *testing.T) {
	p, _ := newTestParser()

	v, ok := p.Volume("profile:ringing.volume@general")
	if !ok {
		t.Fatal("expected successful parse")
	}
	if v.Kind != VolumeProfile || v.Key != "ringing.volume" || v.Profile != "general" {
		t.Errorf("got %+v", v)
	}
}

func TestVolume_UnknownPrefix(t *testing.T) {
	p, _ := newTestParser()
	if _, ok := p.Volume("bogus:x"); ok {
		t.Error("unknown prefix parsed, want drop")
	}
}

func TestVibrationPattern(t *testing.T) {
	p, fsys := newTestParser()
	fsys.WriteFile("/usr/share/vibra/pulse.ivt", nil)

	t.Run("internal", func(t *testing.T) {
		vp, ok := p.VibrationPattern("internal:3")
		if !ok {
			t.Fatal("expected successful parse")
		}
		if vp.Kind != VibrationInternal || vp.Pattern != 3 {
			t.Errorf("got %+v", vp)
		}
	})

	t.Run("internal non-numeric reads as 0", func(t *testing.T) {
		vp, ok := p.VibrationPattern("internal:buzz")
		if !ok {
			t.Fatal("expected successful parse")
		}
		if vp.Pattern != 0 {
			t.Errorf("Pattern = %d, want 0", vp.Pattern)
		}
	})

	t.Run("filename", func(t *testing.T) {
		vp, ok := p.VibrationPattern("filename:pulse.ivt")
		if !ok {
			t.Fatal("expected successful parse")
		}
		if vp.Filename != "/usr/share/vibra/pulse.ivt" {
			t.Errorf("Filename = %q", vp.Filename)
		}
	})

	t.Run("profile", func(t *testing.T) {
		vp, ok := p.VibrationPattern("profile:vibrating.alert.enabled@general")
		if !ok {
			t.Fatal("expected successful parse")
		}
		if vp.Kind != VibrationProfile {
			t.Errorf("Kind = %v", vp.Kind)
		}
	})
}

func TestVibrationList(t *testing.T) {
	p, _ := newTestParser()

	list := p.VibrationList("internal:1;bogus:x;internal:2")
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].Pattern != 1 || list[1].Pattern != 2 {
		t.Errorf("patterns = %d/%d", list[0].Pattern, list[1].Pattern)
	}
}

func TestAtoi(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"42", 42},
		{"-7", -7},
		{"+9", 9},
		{"  13", 13},
		{"12abc", 12},
		{"abc", 0},
		{"", 0},
		{"-", 0},
	}
	for _, tt := range tests {
		if got := Atoi(tt.input); got != tt.want {
			t.Errorf("Atoi(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestRegistry_Interning(t *testing.T) {
	p, _ := newTestParser()

	a, _ := p.Volume("fixed:50")
	b, _ := p.Volume("fixed:50")
	c, _ := p.Volume("fixed:60")

	if a != b {
		t.Error("identical volumes interned to different descriptors")
	}
	if a == c {
		t.Error("distinct volumes interned to the same descriptor")
	}
	if n := len(p.Registry.Volumes()); n != 2 {
		t.Errorf("registry holds %d volumes, want 2", n)
	}
}
