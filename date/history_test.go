package date

import "testing"

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	// Test is about appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[1] != d1 {
		t.Errorf("history[1].day = %v want %v", h.days[0], d1)
	}
	if h.days[0] != d2 {
		t.Errorf("history[0].day = %v want %v", h.days[1], d2)
	}
	if h.values[1] != v1 {
		t.Errorf("history[1].value = %v want %v", h.values[0], v1)
	}
	if h.values[0] != v2 {
		t.Errorf("history[0].value = %v want %v", h.values[1], v2)
	}

}

func TestAppendOverwrite(t *testing.T) {
	h := new(History[int])
	on := New(2025, 7, 1)
	h.Append(on, 1).Append(on, 2)
	if h.Len() != 1 {
		t.Errorf("History.Len() = %v want 1", h.Len())
	}
	if v, ok := h.Get(on); !ok || v != 2 {
		t.Errorf("Get(%v) = %v, %v want 2, true", on, v, ok)
	}
}

func TestBetween(t *testing.T) {
	h := new(History[int])
	for i, s := range []string{"2020-01-05", "2020-01-01", "2020-01-03", "2020-01-09"} {
		h.Append(MustParse(s), i)
	}

	tests := []struct {
		from, to string
		want     []string
	}{
		{"2020-01-01", "2020-01-05", []string{"2020-01-01", "2020-01-03", "2020-01-05"}},
		{"2020-01-02", "2020-01-04", []string{"2020-01-03"}},
		{"2020-01-06", "2020-01-08", nil},
		{"2019-12-01", "2020-12-01", []string{"2020-01-01", "2020-01-03", "2020-01-05", "2020-01-09"}},
	}
	for _, tt := range tests {
		var got []string
		for d := range h.Between(Range{MustParse(tt.from), MustParse(tt.to)}) {
			got = append(got, d.String())
		}
		if len(got) != len(tt.want) {
			t.Errorf("Between(%s, %s) = %v want %v", tt.from, tt.to, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Between(%s, %s) = %v want %v", tt.from, tt.to, got, tt.want)
				break
			}
		}
	}
}

func TestValueAsOf(t *testing.T) {
	h := new(History[string])
	h.Append(New(2025, 1, 10), "a").Append(New(2025, 1, 20), "b")

	tests := []struct {
		on     Date
		want   string
		wantOK bool
	}{
		{New(2025, 1, 1), "", false},
		{New(2025, 1, 10), "a", true},
		{New(2025, 1, 15), "a", true},
		{New(2025, 2, 1), "b", true},
	}
	for _, tt := range tests {
		got, ok := h.ValueAsOf(tt.on)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ValueAsOf(%v) = %q, %v want %q, %v", tt.on, got, ok, tt.want, tt.wantOK)
		}
	}

	if first, _ := h.First(); first != New(2025, 1, 10) {
		t.Errorf("First() = %v want 2025-01-10", first)
	}
	if last, v := h.Latest(); last != New(2025, 1, 20) || v != "b" {
		t.Errorf("Latest() = %v, %q want 2025-01-20, \"b\"", last, v)
	}
}
