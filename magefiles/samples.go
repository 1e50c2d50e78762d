//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const samplesDir = "samples"

// Samples builds the CLI and runs every operation once, leaving the
// results in samples/ for manual inspection.
func Samples() error {
	mg.Deps(Build)

	if err := os.MkdirAll(samplesDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", samplesDir, err)
	}
	at := func(name string) string { return filepath.Join(samplesDir, name) }

	steps := [][]string{
		{"create", "-o", at("a.pdf"), "-c", `First document\nwith two lines`},
		{"create", "-o", at("b.pdf"), "-c", "Second document"},
		{"merge", at("a.pdf"), at("b.pdf"), "-o", at("merged.pdf")},
		{"split", at("merged.pdf"), "-o", at("split"), "-p", "1"},
		{"rotate", at("merged.pdf"), "-a", "90", "-o", at("rotated.pdf")},
		{"watermark", at("merged.pdf"), "-w", "DRAFT", "-o", at("watermarked.pdf")},
		{"extract-text", at("merged.pdf"), "-o", at("merged.txt")},
		{"info", at("merged.pdf"), at("rotated.pdf")},
	}
	for _, args := range steps {
		fmt.Printf("[samples] pdftool %v\n", args)
		if err := sh.RunV(binPath, args...); err != nil {
			return fmt.Errorf("pdftool %s: %w", args[0], err)
		}
	}
	fmt.Printf("Samples written to %s/\n", samplesDir)
	return nil
}
