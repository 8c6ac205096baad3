package settings

import "testing"

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Header
		ok   bool
	}{
		{
			name: "event without parent",
			raw:  "event ringtone",
			want: Header{Kind: "event", Name: "ringtone"},
			ok:   true,
		},
		{
			name: "event with parent",
			raw:  "event sms@ringtone",
			want: Header{Kind: "event", Name: "sms", Parent: "ringtone"},
			ok:   true,
		},
		{
			name: "definition",
			raw:  "definition ringtone",
			want: Header{Kind: "definition", Name: "ringtone"},
			ok:   true,
		},
		{
			name: "no space",
			raw:  "general",
			ok:   false,
		},
		{
			name: "empty tail",
			raw:  "event ",
			ok:   false,
		},
		{
			name: "empty name before at",
			raw:  "event @parent",
			ok:   false,
		},
		{
			name: "trailing at means no parent",
			raw:  "event foo@",
			want: Header{Kind: "event", Name: "foo"},
			ok:   true,
		},
		{
			name: "only first at splits",
			raw:  "event a@b@c",
			want: Header{Kind: "event", Name: "a", Parent: "b@c"},
			ok:   true,
		},
		{
			name: "no case normalization",
			raw:  "event RingTone",
			want: Header{Kind: "event", Name: "RingTone"},
			ok:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseHeader(tt.raw)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if got != tt.want {
				t.Errorf("ParseHeader(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}
