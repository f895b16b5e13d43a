// SPDX-License-Identifier: MIT
// Package: routesim/topology
//
// codec.go — JSON and YAML round-tripping for topology documents.
package topology

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeJSON reads one Document from r. The document is decoded only, not
// validated; call Validate (or Graph) before handing it to an engine.
func DecodeJSON(r io.Reader) (*Document, error) {
	var d Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("topology: decode json: %w", err)
	}

	return &d, nil
}

// EncodeJSON writes d to w as indented JSON, the interchange format the
// canvas editors import and export.
func EncodeJSON(w io.Writer, d *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("topology: encode json: %w", err)
	}

	return nil
}

// DecodeYAML reads one Document from r.
func DecodeYAML(r io.Reader) (*Document, error) {
	var d Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("topology: decode yaml: %w", err)
	}

	return &d, nil
}

// EncodeYAML writes d to w as YAML.
func EncodeYAML(w io.Writer, d *Document) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("topology: encode yaml: %w", err)
	}

	return nil
}
