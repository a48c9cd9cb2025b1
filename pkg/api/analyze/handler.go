package analyze

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/core/agent"
	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/core/chat"
	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/core/document"
	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/core/extract"
	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/core/fingerprint"
	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/core/report"
	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/core/store"
)

const (
	maxUploadBytes = 20 << 20 // per file
	maxUploadFiles = 10
)

var (
	generator *report.Generator
	extractor *extract.Extractor
	cache     *store.AnalysisCache
)

// InitHandler wires the analyze endpoint to the global agent manager.
func InitHandler(mgr *agent.Manager) {
	generator = report.NewGenerator(mgr)
	extractor = extract.NewExtractor()
	cache = store.NewAnalysisCache(store.GetPool(), "")
}

// ExtractionInfo tells the client how the figures were obtained.
type ExtractionInfo struct {
	Status     string   `json:"status"`
	SampleData bool     `json:"sampleData"`
	Log        []string `json:"log"`
}

type Response struct {
	Analysis      *report.Analysis `json:"analysis"`
	Extraction    ExtractionInfo   `json:"extraction"`
	ChatSessionID string           `json:"chatSessionId"`
	Cached        bool             `json:"cached"`
}

// HandleAnalyze accepts a multipart upload of statement files, extracts a
// financial time series, and returns the generated credit analysis.
func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, fmt.Sprintf("Invalid multipart form: %v", err), http.StatusBadRequest)
		return
	}

	names, payloads, err := readUploads(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fp := fingerprint.ComputeSet(names, payloads)
	refresh := r.URL.Query().Get("refresh") == "1"

	if !refresh {
		if cached, err := cache.Get(r.Context(), fp); err == nil && cached != nil {
			fmt.Printf("[ANALYZE] Cache hit for %s\n", fp[:12])
			// The cached analysis keeps its extraction provenance; a
			// sample-fallback result stays flagged on every replay.
			status := extract.StatusExtracted
			if cached.SampleData {
				status = extract.StatusSampleFallback
			}
			respond(w, cached, ExtractionInfo{
				Status:     string(status),
				SampleData: cached.SampleData,
				Log:        []string{"served from analysis cache"},
			}, true)
			return
		}
	}

	// Split uploads: HTML documents feed the prompt as text, everything
	// else goes through the spreadsheet extractor.
	var sheetNames []string
	var sheetPayloads [][]byte
	var docTexts []string
	for i, data := range payloads {
		if document.IsHTML(names[i], data) {
			text, derr := document.ExtractText(string(data))
			if derr != nil {
				fmt.Printf("[WARNING] Skipping document %s: %v\n", names[i], derr)
				continue
			}
			docTexts = append(docTexts, fmt.Sprintf("--- %s ---\n%s", names[i], text))
			continue
		}
		sheetNames = append(sheetNames, names[i])
		sheetPayloads = append(sheetPayloads, data)
	}

	var result *extract.Result
	if len(sheetPayloads) > 0 {
		result, err = extractor.ExtractFiles(sheetNames, sheetPayloads)
		if err != nil {
			http.Error(w, fmt.Sprintf("Could not read uploaded files: %v", err), http.StatusUnprocessableEntity)
			return
		}
	} else {
		// Document-only upload: no series to extract, sample fallback
		// keeps the report pipeline alive.
		result = extractor.ExtractSheets(names[0], nil)
	}

	fmt.Printf("[ANALYZE] %d file(s), status=%s, years=%v\n", len(payloads), result.Status, result.Series.Years)

	analysis := generator.Generate(r.Context(), report.Input{
		Series:       result.Series,
		SampleData:   result.Status == extract.StatusSampleFallback,
		DocumentText: strings.Join(docTexts, "\n\n"),
		Fingerprint:  fp,
	})

	if err := cache.Save(r.Context(), fp, analysis); err != nil {
		fmt.Printf("[WARNING] Failed to cache analysis %s: %v\n", fp[:12], err)
	}

	respond(w, analysis, ExtractionInfo{
		Status:     string(result.Status),
		SampleData: result.Status == extract.StatusSampleFallback,
		Log:        result.Log,
	}, false)
}

type FingerprintRequest struct {
	Fingerprint string `json:"fingerprint"`
}

type FingerprintResponse struct {
	Fingerprint string `json:"fingerprint"`
	Cached      bool   `json:"cached"`
	SampleData  bool   `json:"sampleData,omitempty"`
	Provider    string `json:"provider,omitempty"`
}

// HandleFingerprint reports whether an analysis already exists for a
// fingerprint, so clients can skip re-uploading statement files they have
// analyzed before.
func HandleFingerprint(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req FingerprintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Fingerprint == "" {
		http.Error(w, "fingerprint is required", http.StatusBadRequest)
		return
	}

	resp := FingerprintResponse{Fingerprint: req.Fingerprint}
	if cached, err := cache.Get(r.Context(), req.Fingerprint); err == nil && cached != nil {
		resp.Cached = true
		resp.SampleData = cached.SampleData
		resp.Provider = cached.Provider
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func respond(w http.ResponseWriter, analysis *report.Analysis, info ExtractionInfo, cached bool) {
	sessionID := chat.GetManager().StartSession(reportContext(analysis))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Response{
		Analysis:      analysis,
		Extraction:    info,
		ChatSessionID: sessionID,
		Cached:        cached,
	})
}

// reportContext serializes the analysis into the text block follow-up chat
// answers from.
func reportContext(analysis *report.Analysis) string {
	var b strings.Builder
	b.WriteString(report.StatementSummary(analysis.Series))
	if rep := analysis.Report; rep != nil {
		b.WriteString("\nExecutive summary: " + rep.ExecutiveSummary + "\n")
		b.WriteString("Credit grade: " + rep.CreditGrade + "\n")
		for _, sec := range rep.Sections {
			b.WriteString(fmt.Sprintf("%s: %s\n", sec.Title, sec.Narrative))
		}
	}
	return b.String()
}

func readUploads(r *http.Request) ([]string, [][]byte, error) {
	var headers []*multipart.FileHeader
	if r.MultipartForm != nil {
		headers = append(headers, r.MultipartForm.File["files"]...)
		headers = append(headers, r.MultipartForm.File["file"]...)
	}
	if len(headers) == 0 {
		return nil, nil, fmt.Errorf("no files in upload; send them under the 'files' field")
	}
	if len(headers) > maxUploadFiles {
		return nil, nil, fmt.Errorf("too many files: %d uploaded, limit is %d", len(headers), maxUploadFiles)
	}

	var names []string
	var payloads [][]byte
	for _, h := range headers {
		if h.Size > maxUploadBytes {
			return nil, nil, fmt.Errorf("file %s exceeds the %dMB limit", h.Filename, maxUploadBytes>>20)
		}
		f, err := h.Open()
		if err != nil {
			return nil, nil, fmt.Errorf("could not open %s: %v", h.Filename, err)
		}
		data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
		f.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("could not read %s: %v", h.Filename, err)
		}
		if len(data) > maxUploadBytes {
			return nil, nil, fmt.Errorf("file %s exceeds the %dMB limit", h.Filename, maxUploadBytes>>20)
		}
		names = append(names, h.Filename)
		payloads = append(payloads, data)
	}
	return names, payloads, nil
}
