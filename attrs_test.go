package hxattrs

import (
	"slices"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWith(t *testing.T) {
	bag := With("data-foo", "baz")

	if got := bag.String(); got != `data-foo="baz"` {
		t.Errorf("String() = %q, want %q", got, `data-foo="baz"`)
	}
}

func TestZeroAttrs(t *testing.T) {
	var bag Attrs

	if bag.Len() != 0 {
		t.Errorf("Len() = %d, want 0", bag.Len())
	}
	if bag.String() != "" {
		t.Errorf("String() = %q, want empty", bag.String())
	}
	if _, ok := bag.Get("id"); ok {
		t.Error("Get on zero bag reported a binding")
	}
	if got := bag.Set("id", "x").Map(); got["id"] != "x" {
		t.Errorf("Set on zero bag = %v", got)
	}
}

func TestSetDoesNotMutateReceiver(t *testing.T) {
	base := With("data-foo", "baz")
	next := base.Set("class", "bar")
	replaced := next.Set("data-foo", "qux")

	if diff := cmp.Diff(map[string]string{"data-foo": "baz"}, base.Map()); diff != "" {
		t.Errorf("base changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"data-foo": "baz", "class": "bar"}, next.Map()); diff != "" {
		t.Errorf("next mismatch (-want +got):\n%s", diff)
	}
	if v, _ := replaced.Get("data-foo"); v != "qux" {
		t.Errorf("replaced data-foo = %q, want %q", v, "qux")
	}
}

func TestFromMapCopies(t *testing.T) {
	m := map[string]string{"id": "a"}
	bag := FromMap(m)
	m["id"] = "b"

	if v, _ := bag.Get("id"); v != "a" {
		t.Errorf("FromMap shares caller map: id = %q", v)
	}
}

func TestSetIf(t *testing.T) {
	bag := With("class", "btn")

	if got := bag.SetIf("href", "/home", false); got.Len() != 1 {
		t.Errorf("SetIf(false) added a binding: %v", got.Map())
	}
	if v, ok := bag.SetIf("href", "/home", true).Get("href"); !ok || v != "/home" {
		t.Errorf("SetIf(true) href = %q, %v", v, ok)
	}
}

func TestOmit(t *testing.T) {
	bag := With("id", "a").Set("class", "b").Set("name", "c")

	t.Run("hides names", func(t *testing.T) {
		got := bag.Omit("id")
		if _, ok := got.Get("id"); ok {
			t.Error("omitted id is still visible")
		}
		if got.Len() != 2 {
			t.Errorf("Len() = %d, want 2", got.Len())
		}
		if _, ok := bag.Get("id"); !ok {
			t.Error("Omit mutated the receiver")
		}
	})

	t.Run("replaces earlier set", func(t *testing.T) {
		got := bag.Omit("id").Omit("class")
		if !slices.Equal(got.Omitted(), []string{"class"}) {
			t.Errorf("Omitted() = %v, want [class]", got.Omitted())
		}
		if _, ok := got.Get("id"); !ok {
			t.Error("id should be visible again after Omit replaced the set")
		}
	})

	t.Run("OmitMore unions", func(t *testing.T) {
		got := bag.Omit("id").OmitMore("class", "id")
		if !slices.Equal(got.Omitted(), []string{"id", "class"}) {
			t.Errorf("Omitted() = %v, want [id class]", got.Omitted())
		}
		if diff := cmp.Diff(map[string]string{"name": "c"}, got.Map()); diff != "" {
			t.Errorf("Map() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("omitted names survive Set", func(t *testing.T) {
		got := bag.Omit("id").Set("id", "z")
		if _, ok := got.Get("id"); ok {
			t.Error("Set made an omitted name visible")
		}
	})
}

func TestMapIsFreshCopy(t *testing.T) {
	bag := With("id", "a")
	m := bag.Map()
	m["id"] = "changed"
	m["extra"] = "x"

	if v, _ := bag.Get("id"); v != "a" {
		t.Errorf("mutating Map() result changed the bag: id = %q", v)
	}
	if bag.Len() != 1 {
		t.Errorf("Len() = %d, want 1", bag.Len())
	}
}

func TestMapExcluding(t *testing.T) {
	bag := With("id", "a").Set("class", "b").Set("type", "button").Omit("class")

	got := bag.MapExcluding("type", "missing")
	if diff := cmp.Diff(map[string]string{"id": "a"}, got); diff != "" {
		t.Errorf("MapExcluding mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge(t *testing.T) {
	a := With("id", "a").Set("class", "x").Omit("name")
	b := With("class", "y").Set("data-k", "v").Omit("role")

	merged := a.Merge(b)

	want := map[string]string{"id": "a", "class": "y", "data-k": "v"}
	if diff := cmp.Diff(want, merged.Map()); diff != "" {
		t.Errorf("Merge mismatch (-want +got):\n%s", diff)
	}
	if !slices.Equal(merged.Omitted(), []string{"name", "role"}) {
		t.Errorf("Omitted() = %v, want [name role]", merged.Omitted())
	}
	if v, _ := a.Get("class"); v != "x" {
		t.Error("Merge mutated the receiver")
	}
}

func TestAttrsConcurrentReads(t *testing.T) {
	shared := With("class", "btn").Set("data-id", "1")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = shared.Set("id", "x").String()
			_ = shared.Omit("class").Map()
		}()
	}
	wg.Wait()

	if got := shared.String(); got != `class="btn" data-id="1"` {
		t.Errorf("shared bag changed: %q", got)
	}
}
