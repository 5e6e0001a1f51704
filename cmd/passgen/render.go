package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/vaultpass/passgen-go/internal/model"
)

var tagColors = map[string]*color.Color{
	"weak":        color.New(color.FgRed),
	"moderate":    color.New(color.FgYellow),
	"strong":      color.New(color.FgGreen),
	"very-strong": color.New(color.FgHiGreen, color.Bold),
}

// printStrength writes the "Password Strength" line, colored by the style tag.
func printStrength(w io.Writer, s model.StrengthResponse) {
	label := s.Level
	if c, ok := tagColors[s.Tag]; ok {
		label = c.Sprint(s.Level)
	}
	fmt.Fprintf(w, "Password Strength: %s\n", label)
}
