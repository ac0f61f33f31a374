package main

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// resultJSON encodes one edited document:
//
//	{"file":"a.md","action":"applied","selection":{"start":6,"end":15},"text":"..."}
//
// file is omitted for stdin.
func resultJSON(path string, res editResult) (string, error) {
	doc := `{}`
	var err error
	set := func(key string, value any) {
		if err == nil {
			doc, err = sjson.Set(doc, key, value)
		}
	}

	if path != "" {
		set("file", path)
	}
	set("action", res.Action)
	set("selection.start", res.After.Start)
	set("selection.end", res.After.End)
	set("text", res.Text)

	if err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}
	return doc, nil
}

// outcomesJSON encodes the outcomes of a --write batch as an array.
// Failed files carry an error message instead of an action.
func outcomesJSON(outcomes []editOutcome) (string, error) {
	doc := `[]`
	for _, o := range outcomes {
		item := `{}`
		var err error
		item, err = sjson.Set(item, "file", o.Path)
		if err == nil {
			if o.Err != nil {
				item, err = sjson.Set(item, "error", o.Err.Error())
			} else {
				item, err = sjson.Set(item, "action", o.Result.Action)
			}
		}
		if err == nil {
			doc, err = sjson.SetRaw(doc, "-1", item)
		}
		if err != nil {
			return "", fmt.Errorf("encoding results: %w", err)
		}
	}
	return doc, nil
}
