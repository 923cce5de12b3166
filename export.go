package main

import (
	"fmt"

	clipboard "golang.design/x/clipboard"
	"gopkg.in/yaml.v3"

	"tweakdock/dock"
)

var clipboardReady bool

// exportValues renders the current parameter values as YAML keyed by id,
// ready to paste back into code or a config file.
func exportValues(rows []*dock.Row) ([]byte, error) {
	vals := make(map[string]float64, len(rows))
	for _, r := range rows {
		vals[r.Param.ID()] = r.Param.Value()
	}
	data, err := yaml.Marshal(vals)
	if err != nil {
		return nil, fmt.Errorf("marshal values: %w", err)
	}
	return data, nil
}

// copyValues puts the exported values on the system clipboard.
func copyValues(rows []*dock.Row) {
	if !clipboardReady {
		logWarn("clipboard unavailable; values not copied")
		return
	}
	data, err := exportValues(rows)
	if err != nil {
		logError("copy values: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	logDebug("copied %d values to clipboard", len(rows))
}
