package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/stringlet"
)

// layoutReport describes how one string is encoded.
type layoutReport struct {
	Text     string `json:"text" yaml:"text"`
	Kind     string `json:"kind" yaml:"kind"`
	Capacity int    `json:"capacity" yaml:"capacity"`
	Length   int    `json:"length" yaml:"length"`
	Stride   int    `json:"stride" yaml:"stride"`
	Hash     string `json:"hash" yaml:"hash"`
	Record   string `json:"record" yaml:"record"`
	Layout   string `json:"layout" yaml:"layout"`
}

func newLayoutReport(v stringlet.Value) layoutReport {
	cfg := v.Config()

	return layoutReport{
		Text:     v.String(),
		Kind:     cfg.Kind.String(),
		Capacity: cfg.Capacity,
		Length:   v.Len(),
		Stride:   cfg.Stride(),
		Hash:     fmt.Sprintf("%016x", v.Hash()),
		Record:   hex.EncodeToString(v.AppendRecord(nil)),
		Layout:   v.GoString(),
	}
}

func runInspect(env *environment, args []string) error {
	s := defaultSettings()
	var kindName string
	var capacity int

	fs := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
	fs.SetOutput(env.stderr)
	s.addFlags(fs)
	fs.StringVar(&s.Spec, "spec", s.Spec, "configuration as kind:capacity")
	fs.StringVarP(&kindName, "kind", "k", "", "kind (fixed, var, trim, slim); overrides the kind of --spec")
	fs.IntVarP(&capacity, "capacity", "c", 0, "capacity in bytes; overrides the capacity of --spec")
	fs.StringVarP(&s.Output, "output", "o", s.Output, "output format: text, json or yaml")
	fs.Usage = func() {
		fmt.Fprintf(env.stderr, "Usage:\n  stringlet inspect [flags] TEXT...\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := s.parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("inspect: at least one TEXT argument is required")
	}

	cfg, err := s.config()
	if err != nil {
		return err
	}
	if fs.Changed("kind") {
		if cfg.Kind, err = stringlet.ParseKind(kindName); err != nil {
			return err
		}
	}
	if fs.Changed("capacity") {
		cfg.Capacity = capacity
	}

	logger, err := s.logger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	reports := make([]layoutReport, 0, fs.NArg())
	for _, text := range fs.Args() {
		v, err := cfg.New(text)
		if err != nil {
			return err
		}
		logger.Debug("encoded", zap.Stringer("config", cfg), zap.Int("length", v.Len()))
		reports = append(reports, newLayoutReport(v))
	}

	return writeReports(env.stdout, s.Output, reports)
}

func writeReports(w io.Writer, output string, reports []layoutReport) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(reports)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}

		return enc.Close()
	case "text":
		for i, r := range reports {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "text:     %q\n", r.Text)
			fmt.Fprintf(w, "config:   %s<%d>\n", r.Kind, r.Capacity)
			fmt.Fprintf(w, "length:   %d\n", r.Length)
			fmt.Fprintf(w, "stride:   %d\n", r.Stride)
			fmt.Fprintf(w, "hash:     %s\n", r.Hash)
			fmt.Fprintf(w, "record:   %s\n", r.Record)
			fmt.Fprintf(w, "layout:   %s\n", r.Layout)
		}

		return nil
	default:
		return fmt.Errorf("unknown output format %q, want text, json or yaml", output)
	}
}
