package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"career-hub/internal/domain"
	"career-hub/internal/usecase"
)

// input mirrors what the editors store for a user.
type input struct {
	Profile domain.Profile `json:"profile"`
	Resume  domain.Resume  `json:"resume"`
	Summary string         `json:"summary"`
}

// Renders profile_override.json with every template into
// resume-data/generated/preview_<template>.html.
func main() {
	in := "profile_override.json"
	if len(os.Args) > 1 {
		in = os.Args[1]
	}
	b, err := os.ReadFile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read profile: %v\n", err)
		os.Exit(2)
	}
	var data input
	if err := json.Unmarshal(b, &data); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal: %v\n", err)
		os.Exit(2)
	}

	renderer, err := usecase.NewTemplateRenderer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse templates: %v\n", err)
		os.Exit(2)
	}
	doc := usecase.BuildResume(data.Profile, data.Resume, data.Summary)

	outDir := filepath.Join("resume-data", "generated")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create out dir: %v\n", err)
		os.Exit(2)
	}
	for _, t := range usecase.Templates {
		html, err := renderer.Render(t.Name, doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "render %s: %v\n", t.Name, err)
			os.Exit(2)
		}
		outFile := filepath.Join(outDir, "preview_"+t.Name+".html")
		if err := os.WriteFile(outFile, []byte(html), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", outFile, err)
			os.Exit(2)
		}
		fmt.Printf("wrote %s\n", outFile)
	}
}
