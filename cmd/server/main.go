// Command server exposes the grammar engine as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/parse?sentence=<text>
//	POST /api/parse            body: {"sentence":"..."}
//	GET  /api/examples
//	GET  /api/stats
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/rs/cors"

	grammatical "github.com/eivinsam/grammatical"
)

// ---- JSON response types ------------------------------------------------

type derivationJSON struct {
	Tree        string   `json:"tree"`
	Diagnostics []string `json:"diagnostics"`
}

type parseResponse struct {
	Sentence    string            `json:"sentence"`
	Derivations []derivationJSON `json:"derivations"`
}

type examplesResponse struct {
	Sentences []string `json:"sentences"`
}

type statsResponse struct {
	Lexemes int `json:"lexemes"`
	Words   int `json:"words"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers --------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func toParseResponse(sentence string, results []grammatical.Result) parseResponse {
	out := parseResponse{Sentence: sentence, Derivations: make([]derivationJSON, 0, len(results))}
	for _, r := range results {
		var tree strings.Builder
		for i, p := range r.Phrases {
			if i > 0 {
				tree.WriteByte(' ')
			}
			tree.WriteString(p.String())
		}
		out.Derivations = append(out.Derivations, derivationJSON{
			Tree:        tree.String(),
			Diagnostics: r.Diagnostics,
		})
	}
	return out
}

// ---- handlers ---------------------------------------------------------------

func handleParse(lex *grammatical.Lexicon) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sentence string
		switch r.Method {
		case http.MethodGet:
			sentence = r.URL.Query().Get("sentence")
		case http.MethodPost:
			var body struct {
				Sentence string `json:"sentence"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				writeError(w, http.StatusBadRequest, "body must be JSON with a 'sentence' field")
				return
			}
			sentence = body.Sentence
		default:
			writeError(w, http.StatusMethodNotAllowed, "GET or POST required")
			return
		}
		if sentence == "" {
			writeError(w, http.StatusBadRequest, "missing 'sentence'")
			return
		}

		results := grammatical.Analyze(sentence, lex)
		writeJSON(w, http.StatusOK, toParseResponse(sentence, results))
	}
}

func handleExamples(examples []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, examplesResponse{Sentences: examples})
	}
}

func handleStats(lex *grammatical.Lexicon) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, statsResponse{
			Lexemes: len(lex.Lexemes),
			Words:   len(lex.Words),
		})
	}
}

// ---- main ---------------------------------------------------------------

func loadExamples(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("no examples file at %s: %v", path, err)
		return nil
	}
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

func main() {
	dataDir := flag.String("data", "data", "path to grammar data directory")
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	log.Printf("loading lexicon from %s …", *dataDir)
	lex, err := grammatical.Load(*dataDir)
	if err != nil {
		log.Fatalf("failed to load lexicon: %v", err)
	}
	log.Printf("lexicon loaded: %d lexemes, %d word forms", len(lex.Lexemes), len(lex.Words))

	examples := loadExamples(*dataDir + "/examples.txt")

	mux := http.NewServeMux()
	mux.HandleFunc("/api/parse", handleParse(lex))
	mux.HandleFunc("/api/examples", handleExamples(examples))
	mux.HandleFunc("/api/stats", handleStats(lex))

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
