package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"
	"go.uber.org/zap"

	"github.com/arloliu/stringlet"
	"github.com/arloliu/stringlet/format"
)

// settings are the options shared by every subcommand. A JSONC file named
// by --config supplies defaults; flags set on the command line win.
type settings struct {
	Spec        string `json:"spec"`
	Compression string `json:"compression"`
	Output      string `json:"output"`
	Verbose     bool   `json:"verbose"`

	configPath string
}

func defaultSettings() settings {
	return settings{
		Spec:        "slim:16",
		Compression: "none",
		Output:      "text",
	}
}

// addFlags registers the shared flags on fs.
func (s *settings) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&s.configPath, "config", "", "JSONC file with default settings")
	fs.BoolVarP(&s.Verbose, "verbose", "v", s.Verbose, "log progress to stderr")
}

// load applies the --config file to every setting whose flag was not set on
// the command line. Settings without a flag on fs are always taken from the
// file.
func (s *settings) load(fs *pflag.FlagSet) error {
	if s.configPath == "" {
		return nil
	}

	data, err := os.ReadFile(s.configPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", s.configPath, err)
	}

	var file settings
	if err := json.Unmarshal(jsonc.ToJSON(data), &file); err != nil {
		return fmt.Errorf("%s: %w", s.configPath, err)
	}

	override := func(name string) bool {
		flag := fs.Lookup(name)
		return flag == nil || !flag.Changed
	}
	if file.Spec != "" && override("spec") {
		s.Spec = file.Spec
	}
	if file.Compression != "" && override("compression") {
		s.Compression = file.Compression
	}
	if file.Output != "" && override("output") {
		s.Output = file.Output
	}
	if file.Verbose && override("verbose") {
		s.Verbose = true
	}

	return nil
}

func (s *settings) config() (stringlet.Config, error) {
	return stringlet.ParseConfig(s.Spec)
}

func (s *settings) compression() (format.CompressionType, error) {
	return format.ParseCompressionType(s.Compression)
}

// logger returns a development logger writing to stderr when verbose is set,
// and a no-op logger otherwise.
func (s *settings) logger() (*zap.Logger, error) {
	if !s.Verbose {
		return zap.NewNop(), nil
	}

	return zap.NewDevelopment()
}

// parse parses args into fs and then applies the --config file.
func (s *settings) parse(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}

	return s.load(fs)
}
