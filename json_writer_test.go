package quotes

import (
	"encoding/json"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("field order", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("z", 1).Append("a", "hello").Append("m", Bar{Start: 1, End: 2})
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"z":1,"a":"hello","m":{"start":1,"end":2,"high":0,"low":0,"volume":0}}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("optional fields", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", 0) // assess that a zero value is actually added.
		w.Optional("b", "")
		w.Optional("c", 0)
		w.Optional("d", "hello")
		w.Optional("e", nil)
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"a":0,"d":"hello"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("first error wins", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", make(chan int)).Append("b", 1)
		if _, err := w.MarshalJSON(); err == nil {
			t.Errorf("MarshalJSON() expected an error for an unsupported value")
		}
	})
}

func TestOutcomeJSON(t *testing.T) {
	o := Outcome{File: "AAPL.txt", Symbol: "AAPL", Action: Failed, Err: ErrMalformedLine}
	got, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("json.Marshal() unexpected error: %v", err)
	}
	want := `{"file":"AAPL.txt","symbol":"AAPL","action":"failed","error":"malformed line"}`
	if string(got) != want {
		t.Errorf("json.Marshal() = %s want %s", got, want)
	}

	o = Outcome{File: "AAPL.json", Symbol: "AAPL", Action: Loaded, Records: 3}
	got, err = json.Marshal(o)
	if err != nil {
		t.Fatalf("json.Marshal() unexpected error: %v", err)
	}
	want = `{"file":"AAPL.json","symbol":"AAPL","action":"loaded","records":3}`
	if string(got) != want {
		t.Errorf("json.Marshal() = %s want %s", got, want)
	}
}
