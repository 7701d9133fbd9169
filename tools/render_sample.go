package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
)

// Renders sample_document.json under every template to HTML files for
// eyeballing layout changes without running the server.
func main() {
	in := "sample_document.json"
	if len(os.Args) > 1 {
		in = os.Args[1]
	}
	b, err := os.ReadFile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read document: %v\n", err)
		os.Exit(2)
	}
	var doc model.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal: %v\n", err)
		os.Exit(2)
	}

	exporter := usecase.NewExporter(nil, nil, "templates")
	outDir := filepath.Join("resume-data", "samples")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(2)
	}

	for _, v := range render.Variants() {
		html, err := exporter.ComposeHTML(doc, v, render.ModePrint)
		if err != nil {
			fmt.Fprintf(os.Stderr, "compose %s: %v\n", v, err)
			os.Exit(2)
		}
		outFile := filepath.Join(outDir, fmt.Sprintf("sample_%s.html", v))
		if err := os.WriteFile(outFile, []byte(html), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", outFile, err)
			os.Exit(2)
		}
		fmt.Printf("wrote %s\n", outFile)
	}
}
