// Package output renders catalog data for the command-line browser.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Lixing-Zhang/vape-store/internal/models"
)

// Format represents the output format type.
type Format string

const (
	// FormatTable is the default terminal table output.
	FormatTable Format = "table"
	// FormatJSON outputs data as indented JSON.
	FormatJSON Format = "json"
	// FormatYAML outputs data as YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name case-insensitively. An empty name selects the table.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use table, json or yaml)", s)
	}
}

// WriteProducts writes products in the given format
func WriteProducts(w io.Writer, format Format, products []models.Product) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, products)
	case FormatYAML:
		return writeYAML(w, products)
	}

	t := NewTable("ID", "NAME", "CATEGORY", "PRICE", "NICOTINE", "FLAVOR", "FEATURED")
	for _, p := range products {
		featured := ""
		if p.Featured {
			featured = "yes"
		}
		t.AddRow(
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Category.Label(),
			strconv.Itoa(p.Price)+" ₽",
			nicotineLabel(p.Nicotine),
			p.Flavor,
			featured,
		)
	}
	if err := t.Render(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d product(s)\n", len(products))
	return err
}

// WriteFilterMetadata writes the available filter options in the given format
func WriteFilterMetadata(w io.Writer, format Format, meta models.FilterMetadata) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, meta)
	case FormatYAML:
		return writeYAML(w, meta)
	}

	t := NewTable("FILTER", "ID", "VALUE")
	for _, c := range meta.Categories {
		t.AddRow("category", string(c.ID), c.Label)
	}
	for _, f := range meta.Flavors {
		t.AddRow("flavor", "", f)
	}
	t.AddRow("price", "", fmt.Sprintf("%d-%d step %d", meta.Price.Min, meta.Price.Max, meta.Price.Step))
	t.AddRow("nicotine", "", fmt.Sprintf("%d-%d mg step %d", meta.Nicotine.Min, meta.Nicotine.Max, meta.Nicotine.Step))
	return t.Render(w)
}

func nicotineLabel(mg int) string {
	if mg == 0 {
		return "0"
	}
	return strconv.Itoa(mg) + "mg"
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
