package reprint

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseStyles reads named printers from a YAML document of the form
//
//	compact:
//	  tuple: {open: "<", sep: ",", close: ">"}
//	  list:  {open: "[", sep: ",", close: "]"}
//	  dict:  {open: "{", sep: ",", close: "}", kv_sep: "="}
//	  max_depth: 4
//
// Omitted styles are left empty. Unknown keys are rejected. An empty
// document yields an empty map.
func ParseStyles(r io.Reader) (map[string]Printer, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	styles := map[string]Printer{}
	if err := dec.Decode(&styles); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]Printer{}, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidStyles, err)
	}
	for name, p := range styles {
		if name == "" {
			return nil, fmt.Errorf("%w: empty style name", ErrInvalidStyles)
		}
		if p.MaxDepth < 0 || p.MaxWidth < 0 {
			return nil, fmt.Errorf("%w: style %q has a negative limit", ErrInvalidStyles, name)
		}
	}
	return styles, nil
}
