package hxattrs

import (
	"strings"
	"testing"
)

func TestVocabularySize(t *testing.T) {
	names := Vocabulary()
	if len(names) != 49 {
		t.Errorf("len(Vocabulary()) = %d, want 49", len(names))
	}

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate vocabulary name %q", n)
		}
		seen[n] = true
	}
}

func TestVocabularyReturnsCopy(t *testing.T) {
	names := Vocabulary()
	names[0] = "mutated"

	if Vocabulary()[0] != "id" {
		t.Errorf("Vocabulary()[0] = %q after caller mutation, want %q", Vocabulary()[0], "id")
	}
}

func TestIsVocabulary(t *testing.T) {
	tests := []struct {
		name   string
		expect bool
	}{
		{"id", true},
		{"class", true},
		{"aria-labelledby", true},
		{"hx-push-url", true},
		{"for", true},
		{"type", true},
		{"data-foo", false},
		{"hx_push_url", false},
		{"", false},
		{"ID", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsVocabulary(tt.name); got != tt.expect {
				t.Errorf("IsVocabulary(%q) = %v, want %v", tt.name, got, tt.expect)
			}
		})
	}
}

func TestReservedNames(t *testing.T) {
	var reserved []string
	for _, n := range Vocabulary() {
		if IsReserved(n) {
			reserved = append(reserved, n)
		}
	}
	if strings.Join(reserved, ",") != "for,type" {
		t.Errorf("reserved names = %v, want [for type]", reserved)
	}
	if IsReserved("range") {
		t.Error("IsReserved(\"range\") = true for a name outside the vocabulary")
	}
}

func TestFieldFormBijective(t *testing.T) {
	fields := make(map[string]string)
	for _, n := range Vocabulary() {
		f := FieldForm(n)
		if strings.Contains(f, "-") {
			t.Errorf("FieldForm(%q) = %q still contains '-'", n, f)
		}
		if prev, ok := fields[f]; ok {
			t.Errorf("FieldForm(%q) collides with FieldForm(%q)", n, prev)
		}
		fields[f] = n
		if back := CanonicalForm(f); back != n {
			t.Errorf("CanonicalForm(FieldForm(%q)) = %q", n, back)
		}
	}
}

func TestGroupOf(t *testing.T) {
	tests := []struct {
		name   string
		expect Group
	}{
		{"id", GroupIdentity},
		{"class", GroupIdentity},
		{"role", GroupARIA},
		{"aria-orientation", GroupARIA},
		{"tabindex", GroupInteraction},
		{"type", GroupInteraction},
		{"hx-get", GroupHTMX},
		{"hx-ws", GroupHTMX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, ok := GroupOf(tt.name)
			if !ok {
				t.Fatalf("GroupOf(%q) not found", tt.name)
			}
			if g != tt.expect {
				t.Errorf("GroupOf(%q) = %v, want %v", tt.name, g, tt.expect)
			}
		})
	}

	if _, ok := GroupOf("data-foo"); ok {
		t.Error("GroupOf(\"data-foo\") reported a group")
	}
}

func TestHTMXGroupIsPrefixed(t *testing.T) {
	for _, n := range Vocabulary() {
		g, _ := GroupOf(n)
		if (g == GroupHTMX) != strings.HasPrefix(n, "hx-") {
			t.Errorf("%q: group %v does not match hx- prefix", n, g)
		}
	}
}

func TestGroupString(t *testing.T) {
	tests := []struct {
		g      Group
		expect string
	}{
		{GroupIdentity, "identity"},
		{GroupARIA, "aria"},
		{GroupInteraction, "interaction"},
		{GroupHTMX, "htmx"},
		{Group(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.g.String(); got != tt.expect {
			t.Errorf("Group(%d).String() = %q, want %q", tt.g, got, tt.expect)
		}
	}
}
