package movies

import (
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in   string
		want Format
	}{
		{"", FormatAuto},
		{" Auto ", FormatAuto},
		{"results", FormatResults},
		{"swapi", FormatResults},
		{"KEYED", FormatKeyed},
		{"firebase", FormatKeyed},
	}
	for _, tc := range cases {
		got, err := ParseFormat(tc.in)
		if err != nil {
			t.Fatalf("ParseFormat(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseFormat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("ParseFormat(xml) returned nil error, want error")
	}
}

func TestDecode_EmptyPayloadsYieldEmptyList(t *testing.T) {
	cases := []struct {
		name   string
		format Format
		body   string
	}{
		{"empty results", FormatAuto, `{"results": []}`},
		{"empty object", FormatAuto, `{}`},
		{"null body", FormatAuto, `null`},
		{"null keyed", FormatKeyed, ` null `},
		{"missing results", FormatResults, `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(tc.format, []byte(tc.body))
			if err != nil {
				t.Fatalf("Decode returned error: %v", err)
			}
			if got == nil || len(got) != 0 {
				t.Fatalf("Decode = %#v, want empty non-nil slice", got)
			}
		})
	}
}

func TestDecode_ResultsShapeMapsFields(t *testing.T) {
	body := `{"results":[
  {"episode_id": 4, "title": "A New Hope", "opening_crawl": "It is a period of civil war.", "release_date": "1977-05-25"},
  {"episode_id": 5, "title": "The Empire Strikes Back", "opening_crawl": "It is a dark time.", "release_date": "1980-05-17"}
]}`
	got, err := Decode(FormatAuto, []byte(body))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	want := []Movie{
		{ID: "4", Title: "A New Hope", OpeningText: "It is a period of civil war.", ReleaseDate: "1977-05-25"},
		{ID: "5", Title: "The Empire Strikes Back", OpeningText: "It is a dark time.", ReleaseDate: "1980-05-17"},
	}
	if len(got) != len(want) {
		t.Fatalf("Decode len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Decode[%d] = %#v, want %#v", i, got[i], want[i])
		}
	}
}

func TestDecode_KeyedShapeIgnoresResultsDetection(t *testing.T) {
	// A keyed collection whose only key happens to be "results" is forced
	// through the keyed decoder when the format says so.
	body := `{"results": {"title": "T", "openingText": "O", "releaseDate": "R"}}`
	got, err := Decode(FormatKeyed, []byte(body))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "results" || got[0].Title != "T" {
		t.Fatalf("Decode = %#v, want one movie keyed results", got)
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	for _, f := range []Format{FormatAuto, FormatResults, FormatKeyed} {
		_, err := Decode(f, []byte(`{"results": [`))
		if err == nil || !strings.Contains(err.Error(), "decode response") {
			t.Fatalf("Decode(%v) error = %v, want decode response error", f, err)
		}
	}
	if _, err := Decode(FormatKeyed, []byte(`[1,2]`)); err == nil {
		t.Fatalf("Decode keyed array returned nil error, want error")
	}
}

func TestFormatString(t *testing.T) {
	if FormatAuto.String() != "auto" || FormatResults.String() != "results" || FormatKeyed.String() != "keyed" {
		t.Fatalf("Format strings = %q %q %q", FormatAuto, FormatResults, FormatKeyed)
	}
}
