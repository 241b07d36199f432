package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/oscar"
	"github.com/fwojciec/oscar/harvest"
	"github.com/fwojciec/oscar/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Parser    oscar.Parser
	Terms     oscar.TermService
	Snapshots oscar.SnapshotService
	Harvester *harvest.Harvester

	// Writer overrides the file exporter used by the export command.
	Writer oscar.CatalogWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log service calls to stderr"`
	BaseURL string `name:"url" env:"OSCAR_URL" default:"https://oscar.gatech.edu" help:"Registration system base URL"`

	Terms   TermsCmd   `cmd:"" help:"List terms offered by the registration system"`
	Parse   ParseCmd   `cmd:"" help:"Parse a saved section search page"`
	Fetch   FetchCmd   `cmd:"" help:"Fetch and store catalogs for terms"`
	Show    ShowCmd    `cmd:"" help:"Show the latest stored catalog for a term"`
	History HistoryCmd `cmd:"" help:"List stored snapshots for a term"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored snapshot"`
	Export  ExportCmd  `cmd:"" help:"Export the latest catalog for a term to a directory"`
}

// TermsCmd is the "terms" subcommand.
type TermsCmd struct {
	All bool `short:"a" help:"Include view-only terms"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File          string `arg:"" help:"HTML file to parse (- for stdin)"`
	Text          bool   `short:"t" help:"Print a plain-text listing instead of JSON"`
	SkipMalformed bool   `help:"Skip malformed course blocks instead of failing"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Terms         []string `arg:"" optional:"" help:"Term codes to fetch (default: all open terms)"`
	Concurrency   int      `short:"c" default:"2" help:"Concurrent term limit"`
	RPS           float64  `name:"rps" default:"1" help:"Maximum requests per second"`
	SkipMalformed bool     `help:"Skip malformed course blocks instead of failing"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Term string `arg:"" help:"Term code"`
	Code string `help:"Only show the course with this code"`
	CRN  string `name:"crn" help:"Only show the section with this registration number"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Term  string `arg:"" help:"Term code"`
	Limit int    `short:"n" default:"20" help:"Maximum snapshots to list"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Snapshot ID"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Term string `arg:"" help:"Term code"`
	Dir  string `arg:"" help:"Output directory"`
}
