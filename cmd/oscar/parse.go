package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/oscar"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	document, err := readDocument(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	catalog, err := deps.Parser.Parse(document)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", oscar.ErrorMessage(err))
		return err
	}

	if c.Text {
		if len(catalog) > 0 {
			fmt.Fprintln(deps.Stdout, oscar.FormatCatalog(catalog))
		}
		return nil
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(catalog)
}

func readDocument(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
