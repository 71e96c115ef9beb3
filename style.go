package reprint

import (
	"fmt"
	"slices"
)

// Style decorates one composite shape. KeyValueSep is only used by mappings.
type Style struct {
	Open        string `yaml:"open"`
	Sep         string `yaml:"sep"`
	Close       string `yaml:"close"`
	KeyValueSep string `yaml:"kv_sep"`
}

var (
	basicStyle = Style{Open: "", Sep: " ", Close: "", KeyValueSep: " "}
	pairStyle  = Style{Open: "(", Sep: ", ", Close: ")"}
	listStyle  = Style{Open: "[", Sep: ", ", Close: "]"}
	dictStyle  = Style{Open: "{", Sep: ", ", Close: "}", KeyValueSep: ": "}
)

// Basic prints without brackets and with single spaces between items. It
// keeps one-line trace output compact.
var Basic = Printer{Tuple: basicStyle, List: basicStyle, Dict: basicStyle}

// Pretty brackets every composite: () for pairs and tuples, [] for sequences
// and sets, {} with ": " for mappings.
var Pretty = Printer{Tuple: pairStyle, List: listStyle, Dict: dictStyle}

// Built-in style names.
const (
	StyleBasic  = "basic"
	StylePretty = "pretty"
)

// LookupStyle resolves a style name. Built-in names win over entries in
// extra, which is typically the result of [ParseStyles].
func LookupStyle(name string, extra map[string]Printer) (Printer, error) {
	switch name {
	case StyleBasic:
		return Basic, nil
	case StylePretty:
		return Pretty, nil
	}
	if p, ok := extra[name]; ok {
		return p, nil
	}
	return Printer{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// StyleNames returns the built-in names followed by the sorted names in extra.
func StyleNames(extra map[string]Printer) []string {
	names := make([]string, 0, len(extra))
	for name := range extra {
		if name == StyleBasic || name == StylePretty {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return append([]string{StyleBasic, StylePretty}, names...)
}
