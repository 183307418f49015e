package dispatch

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func doAnalyse(t *testing.T, pool *Pool, method, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, "/analyse", strings.NewReader(body))
	rec := httptest.NewRecorder()
	pool.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalyseRejectsNonPost(t *testing.T) {
	pool := testPool(t)
	defer pool.Close()

	rec := doAnalyse(t, pool, http.MethodGet, "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestHandleAnalyseRejectsEmptyBody(t *testing.T) {
	pool := testPool(t)
	defer pool.Close()

	rec := doAnalyse(t, pool, http.MethodPost, "   ")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleAnalyseMalformedJSON(t *testing.T) {
	pool := testPool(t)
	defer pool.Close()

	rec := doAnalyse(t, pool, http.MethodPost, "{not json")
	var resp layoutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not valid JSON: %v", err)
	}
	if resp.Error != "Invalid JSON format." {
		t.Errorf("Error = %q, want %q", resp.Error, "Invalid JSON format.")
	}
}

func TestHandleAnalyseMissingWeights(t *testing.T) {
	pool := testPool(t)
	defer pool.Close()

	valid := strings.Repeat("abcd", 7) + "ab"
	body := `{"name":"x","layout":"` + valid + `"}`
	rec := doAnalyse(t, pool, http.MethodPost, body)
	var resp layoutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not valid JSON: %v", err)
	}
	want := "Invalid JSON payload: missing layout or weights."
	if resp.Error != want {
		t.Errorf("Error = %q, want %q", resp.Error, want)
	}
}

func TestHandleAnalyseSingleObjectReturnsStatValues(t *testing.T) {
	pool := testPool(t)
	defer pool.Close()

	valid := strings.Repeat("abcd", 7) + "ab"
	body := `{"name":"x","layout":"` + valid + `","weights":{"sfb":-5,"sfs":-2,"lsb":-1,"alt":1,"rolls":1}}`
	rec := doAnalyse(t, pool, http.MethodPost, body)
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"stat_values"`)) {
		t.Errorf("response missing stat_values object: %s", rec.Body.String())
	}

	var resp layoutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not valid JSON: %v", err)
	}
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	if resp.StatValues == nil {
		t.Fatal("StatValues is nil")
	}
	want := -5*resp.StatValues.SFB + -2*resp.StatValues.SFS + -1*resp.StatValues.LSB + resp.StatValues.Alt + resp.StatValues.Rolls
	if resp.Score != want {
		t.Errorf("Score = %v, want weighted sum %v", resp.Score, want)
	}
}

func TestHandleAnalyseBatchPreservesOrderAndIsolatesErrors(t *testing.T) {
	pool := testPool(t)
	defer pool.Close()

	valid := strings.Repeat("abcd", 7) + "ab"
	body := `[
		{"name":"good-1","layout":"` + valid + `","weights":{}},
		{"name":"malformed","layout":"too-short","weights":{}},
		{"name":"good-2","layout":"` + valid + `","weights":{}}
	]`
	rec := doAnalyse(t, pool, http.MethodPost, body)

	var resps []layoutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resps); err != nil {
		t.Fatalf("response not a JSON array: %v", err)
	}
	if len(resps) != 3 {
		t.Fatalf("got %d responses, want 3", len(resps))
	}
	if resps[0].Name != "good-1" || resps[1].Name != "malformed" || resps[2].Name != "good-2" {
		t.Errorf("order not preserved: %+v", resps)
	}
	if resps[1].Error != "Invalid layout string." {
		t.Errorf("malformed item Error = %q, want %q", resps[1].Error, "Invalid layout string.")
	}
	if resps[0].Error != "" || resps[2].Error != "" {
		t.Errorf("sibling items should succeed despite malformed item: %+v", resps)
	}
	if resps[0].Score != 0 || resps[2].Score != 0 {
		t.Errorf("all-zero weights should produce a zero score, got %v and %v", resps[0].Score, resps[2].Score)
	}
}

func TestHandleAnalyseZeroWeightExcludesTerm(t *testing.T) {
	pool := testPool(t)
	defer pool.Close()

	valid := strings.Repeat("abcd", 7) + "ab"
	body := `{"name":"x","layout":"` + valid + `","weights":{"sfb":0,"sfs":1,"lsb":1,"alt":1,"rolls":1}}`
	rec := doAnalyse(t, pool, http.MethodPost, body)

	var resp layoutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not valid JSON: %v", err)
	}
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	want := resp.StatValues.SFS + resp.StatValues.LSB + resp.StatValues.Alt + resp.StatValues.Rolls
	if resp.Score != want {
		t.Errorf("Score = %v, want %v (sfb:0 must exclude its term, not default to weight 1)", resp.Score, want)
	}
}
