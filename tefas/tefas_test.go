package tefas

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etnz/fundfx"
	"github.com/shopspring/decimal"
)

func TestIsFundCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"YAC", true},
		{"ZZL", true},
		{"AFT2", true},
		{"ya", false},  // lowercase
		{"Y", false},   // too short
		{"TOOLONG", false},
		{"", false},
		{"Y C", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := IsFundCode(tt.code); got != tt.want {
				t.Errorf("IsFundCode(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

// testClient builds a Client against the test server without the daily
// disk cache, so reruns always hit the handler.
func testClient(server *httptest.Server) *Client {
	return &Client{
		baseURL:  server.URL,
		fundType: DefaultFundType,
		poster:   &formPoster{client: server.Client()},
	}
}

// sample is a trimmed BindHistoryInfo reply: two valuations of YAC.
// 1704153600000 is 2024-01-02, 1704240000000 is 2024-01-03 (UTC).
const sample = `{
  "draw": 0,
  "recordsTotal": 2,
  "recordsFiltered": 2,
  "data": [
    {"TARIH": "1704153600000", "FONKODU": "YAC", "FONUNVAN": "SAMPLE FUND", "FIYAT": 12.345678},
    {"TARIH": "1704240000000", "FONKODU": "YAC", "FONUNVAN": "SAMPLE FUND", "FIYAT": 12.401122}
  ]
}`

func TestFetch(t *testing.T) {
	var gotForm map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm() error = %v", err)
		}
		gotForm = map[string]string{
			"fontip":   r.PostFormValue("fontip"),
			"fonkod":   r.PostFormValue("fonkod"),
			"bastarih": r.PostFormValue("bastarih"),
			"bittarih": r.PostFormValue("bittarih"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sample))
	}))
	defer server.Close()

	client := testClient(server)
	points, err := client.Fetch(fundfx.MustParse("2024-01-01"), fundfx.MustParse("2024-03-01"), "yac")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	want := map[string]string{
		"fontip":   "YAT",
		"fonkod":   "YAC", // normalized to uppercase
		"bastarih": "01.01.2024",
		"bittarih": "01.03.2024",
	}
	for k, v := range want {
		if gotForm[k] != v {
			t.Errorf("form[%s] = %q, want %q", k, gotForm[k], v)
		}
	}

	if len(points) != 2 {
		t.Fatalf("Fetch() returned %d points, want 2", len(points))
	}
	if points[0].Date != fundfx.MustParse("2024-01-02") {
		t.Errorf("points[0].Date = %v, want 2024-01-02", points[0].Date)
	}
	if points[0].Code != "YAC" {
		t.Errorf("points[0].Code = %q, want YAC", points[0].Code)
	}
	if !points[0].Price.Equal(decimal.RequireFromString("12.345678")) {
		t.Errorf("points[0].Price = %v, want 12.345678", points[0].Price)
	}
}

func TestFetchRejectsInvalidCode(t *testing.T) {
	client := NewClient()
	if _, err := client.Fetch(fundfx.MustParse("2024-01-01"), fundfx.MustParse("2024-03-01"), "not a code"); err == nil {
		t.Errorf("Fetch() with invalid code: expected an error")
	}
}

func TestFetchSurfacesHTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "over quota", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := testClient(server)
	if _, err := client.Fetch(fundfx.MustParse("2024-01-01"), fundfx.MustParse("2024-03-01"), "YAC"); err == nil {
		t.Errorf("Fetch() on HTTP 429: expected an error")
	}
}
