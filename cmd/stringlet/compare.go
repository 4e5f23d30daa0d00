package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/arloliu/stringlet"
)

func runCompare(env *environment, args []string) error {
	s := defaultSettings()

	fs := pflag.NewFlagSet("compare", pflag.ContinueOnError)
	fs.SetOutput(env.stderr)
	s.addFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(env.stderr, "Usage:\n  stringlet compare [flags] A_SPEC A_TEXT B_SPEC B_TEXT\n\n")
		fmt.Fprintf(env.stderr, "Specs are kind:capacity, e.g. slim:16 or var:200.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := s.parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 4 {
		return fmt.Errorf("compare: want 4 arguments, got %d", fs.NArg())
	}

	a, err := parseValue(fs.Arg(0), fs.Arg(1))
	if err != nil {
		return fmt.Errorf("first value: %w", err)
	}
	b, err := parseValue(fs.Arg(2), fs.Arg(3))
	if err != nil {
		return fmt.Errorf("second value: %w", err)
	}

	fmt.Fprintf(env.stdout, "a:       %#v\n", a)
	fmt.Fprintf(env.stdout, "b:       %#v\n", b)
	fmt.Fprintf(env.stdout, "equal:   %t\n", stringlet.EqualReaders(&a, &b))
	fmt.Fprintf(env.stdout, "compare: %d\n", stringlet.CompareReaders(&a, &b))
	fmt.Fprintf(env.stdout, "hash:    %t\n", a.Hash() == b.Hash())

	return nil
}

func parseValue(spec, text string) (stringlet.Value, error) {
	cfg, err := stringlet.ParseConfig(spec)
	if err != nil {
		return stringlet.Value{}, err
	}

	return cfg.New(text)
}
