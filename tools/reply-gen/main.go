// reply-gen emits a synthetic search reply for exercising afstext by hand and
// for seeding the fuzz corpora: the reply carries highlighted XML payloads
// and kwic JSON payloads shaped like real engine output.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/agentic-research/afstext/api"
)

var (
	words = []string{
		"solar", "charger", "portable", "battery", "panel", "folds",
		"hiking", "compact", "output", "waterproof", "cable", "weight",
	}
	terms = []string{"charger", "panel", "battery"}
)

func main() {
	count := flag.Int("n", 1, "Number of payload pairs to generate")
	seed := flag.Int64("seed", 1, "Random seed (fixed by default so corpora are reproducible)")
	out := flag.String("out", "", "Output file (default stdout)")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	result := api.Result{URI: "doc://1"}
	for i := 0; i < *count; i++ {
		suffix := ""
		if *count > 1 {
			suffix = fmt.Sprintf("-%d", i+1)
		}
		result.ClientData = append(result.ClientData,
			xmlPayload(rng, "main"+suffix),
			kwicPayload(rng, "abstract"+suffix),
		)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fatal(err)
	}
	jsonBytes = append(jsonBytes, '\n')

	if *out == "" {
		os.Stdout.Write(jsonBytes)
		return
	}
	if err := os.WriteFile(*out, jsonBytes, 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("✅ %d payloads written to %s\n", len(result.ClientData), *out)
}

// xmlPayload builds a payload the way the engine emits it when highlighting
// is on: match markers use the afs prefix and the namespace is never
// declared.
func xmlPayload(rng *rand.Rand, id string) api.ClientData {
	doc := fmt.Sprintf("<product><name>%s</name><desc>%s</desc></product>",
		sentence(rng, 3), sentence(rng, 8))
	contents, err := json.Marshal(doc)
	if err != nil {
		fatal(err)
	}
	return api.ClientData{ID: id, MimeType: "text/xml", Contents: contents}
}

// kwicPayload builds a kwic run alternating plain fragments, matches and
// truncation markers.
func kwicPayload(rng *rand.Rand, id string) api.ClientData {
	run := []any{
		map[string]any{"afs:t": "KwicTruncate"},
		map[string]any{"afs:t": "KwicString", "text": plain(rng, 4) + " "},
		map[string]any{"afs:t": "KwicMatch", "match": terms[rng.Intn(len(terms))]},
		map[string]any{"afs:t": "KwicString", "text": " " + plain(rng, 4)},
		map[string]any{"afs:t": "KwicTruncate"},
	}
	contents, err := json.Marshal(map[string]any{"abstract": run})
	if err != nil {
		fatal(err)
	}
	return api.ClientData{ID: id, MimeType: "application/json", Contents: contents}
}

// sentence mixes plain words with one highlighted term.
func sentence(rng *rand.Rand, n int) string {
	parts := make([]string, 0, n+1)
	for i := 0; i < n; i++ {
		parts = append(parts, words[rng.Intn(len(words))])
	}
	at := rng.Intn(len(parts) + 1)
	marker := fmt.Sprintf("<afs:match>%s</afs:match>", terms[rng.Intn(len(terms))])
	parts = append(parts[:at], append([]string{marker}, parts[at:]...)...)
	return strings.Join(parts, " ")
}

func plain(rng *rand.Rand, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = words[rng.Intn(len(words))]
	}
	return strings.Join(parts, " ")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
