package main

import (
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/RMahshie/bodeplot/internal/marker"
)

var _ pflag.Value = (*markList)(nil)

// markList is a pflag.Value for --fmarks. It remembers whether the flag was
// given at all so an empty list can be told apart from "use the defaults".
type markList struct {
	values []float64
	set    bool
}

func (m *markList) String() string {
	parts := make([]string, len(m.values))
	for i, v := range m.values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

// Set replaces the list; a repeated --fmarks keeps the last one
func (m *markList) Set(s string) error {
	values, err := marker.ParseList(s)
	if err != nil {
		return err
	}
	m.values = values
	m.set = true
	return nil
}

func (m *markList) Type() string { return "floats" }

// Marks returns nil when --fmarks was not given
func (m *markList) Marks() []float64 {
	if !m.set {
		return nil
	}
	return m.values
}

// normalizeArgs rewrites space-separated "--fmarks 79 3162" into
// "--fmarks=79,3162" so pflag sees a single value. Every following token that
// is not an option is consumed, negative numbers included.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--":
			return append(out, args[i:]...)
		case "--fmarks":
			var values []string
			for i+1 < len(args) && isFlagValue(args[i+1]) {
				i++
				values = append(values, args[i])
			}
			out = append(out, "--fmarks="+strings.Join(values, ","))
		default:
			out = append(out, args[i])
		}
	}
	return out
}

func isFlagValue(tok string) bool {
	if !strings.HasPrefix(tok, "-") {
		return true
	}
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}
