package dispatch

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rbscholtus/layoutscore/internal/scoring"
)

// layoutRequest is the wire shape of one scoring request. Weights is
// required; each field multiplies its stat literally, including an
// explicit zero to exclude that term from the score.
type layoutRequest struct {
	Name    string          `json:"name"`
	Layout  string          `json:"layout"`
	Weights *requestWeights `json:"weights,omitempty"`
}

type requestWeights struct {
	SFB   float64 `json:"sfb"`
	SFS   float64 `json:"sfs"`
	LSB   float64 `json:"lsb"`
	Alt   float64 `json:"alt"`
	Rolls float64 `json:"rolls"`
}

// layoutResponse is the wire shape of one scoring result. Error is set
// instead of StatValues/Score when that item failed to parse or score.
type layoutResponse struct {
	Name       string      `json:"name"`
	StatValues *statValues `json:"stat_values,omitempty"`
	Score      float64     `json:"score,omitempty"`
	Error      string      `json:"error,omitempty"`
}

type statValues struct {
	SFB   float64 `json:"sfb"`
	SFS   float64 `json:"sfs"`
	LSB   float64 `json:"lsb"`
	Alt   float64 `json:"alt"`
	Rolls float64 `json:"rolls"`
}

// Handler returns an http.Handler serving POST /analyse. The request body
// may be a single JSON object or an array of them; the response shape
// mirrors whichever was sent, preserving array order.
func (p *Pool) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/analyse", p.handleAnalyse)
	return mux
}

func (p *Pool) handleAnalyse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	isArray := bytes.HasPrefix(bytes.TrimSpace(body), []byte("["))

	var reqs []layoutRequest
	if isArray {
		if err := json.Unmarshal(body, &reqs); err != nil {
			writeJSON(w, http.StatusOK, layoutResponse{Error: "Invalid JSON format."})
			return
		}
	} else {
		var single layoutRequest
		if err := json.Unmarshal(body, &single); err != nil {
			writeJSON(w, http.StatusOK, layoutResponse{Error: "Invalid JSON format."})
			return
		}
		reqs = []layoutRequest{single}
	}

	items := make([]BatchItem, len(reqs))
	missing := make([]bool, len(reqs))
	for i, req := range reqs {
		missing[i] = req.Layout == "" || req.Weights == nil
		items[i] = BatchItem{Name: req.Name, Layout: req.Layout, Weights: toReducedWeights(req.Weights)}
	}

	results := p.ScoreBatch(r.Context(), items)
	responses := make([]layoutResponse, len(results))
	for i, res := range results {
		if missing[i] {
			responses[i] = layoutResponse{Name: reqs[i].Name, Error: "Invalid JSON payload: missing layout or weights."}
			continue
		}
		responses[i] = toResponse(res)
	}

	if isArray {
		writeJSON(w, http.StatusOK, responses)
	} else {
		writeJSON(w, http.StatusOK, responses[0])
	}
}

func toReducedWeights(w *requestWeights) scoring.ReducedWeights {
	if w == nil {
		return scoring.ReducedWeights{}
	}
	return scoring.ReducedWeights{
		SameFingerBigram:   w.SFB,
		SameFingerSkip1:    w.SFS,
		IndexStretchBigram: w.LSB,
		Alternation:        w.Alt,
		Roll:               w.Rolls,
	}
}

func toResponse(r BatchResult) layoutResponse {
	if r.Error != "" {
		return layoutResponse{Name: r.Name, Error: r.Error}
	}
	return layoutResponse{
		Name: r.Name,
		StatValues: &statValues{
			SFB:   r.Result.SameFingerBigram,
			SFS:   r.Result.SameFingerSkip1,
			LSB:   r.Result.IndexStretchBigram,
			Alt:   r.Result.Alternation,
			Rolls: r.Result.Roll,
		},
		Score: r.Result.Score,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
