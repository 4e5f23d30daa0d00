package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/arloliu/stringlet/column"
	"github.com/arloliu/stringlet/endian"
)

func runPack(env *environment, args []string) error {
	s := defaultSettings()
	var in, out string
	var noChecksum, distinct, bigEndian bool

	fs := pflag.NewFlagSet("pack", pflag.ContinueOnError)
	fs.SetOutput(env.stderr)
	s.addFlags(fs)
	fs.StringVar(&s.Spec, "spec", s.Spec, "record configuration as kind:capacity")
	fs.StringVar(&s.Compression, "compression", s.Compression, "payload compression: none, zstd, s2 or lz4")
	fs.StringVarP(&in, "in", "i", "-", "input file with one string per line, - for stdin")
	fs.StringVarP(&out, "out", "o", "-", "output column file, - for stdout")
	fs.BoolVar(&noChecksum, "no-checksum", false, "omit the payload checksum")
	fs.BoolVar(&distinct, "distinct", false, "reject repeated strings")
	fs.BoolVar(&bigEndian, "big-endian", false, "write big-endian header fields")
	fs.Usage = func() {
		fmt.Fprintf(env.stderr, "Usage:\n  stringlet pack [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := s.parse(fs, args); err != nil {
		return err
	}

	cfg, err := s.config()
	if err != nil {
		return err
	}
	comp, err := s.compression()
	if err != nil {
		return err
	}
	logger, err := s.logger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts := []column.EncoderOption{column.WithCompression(comp), column.WithChecksum(!noChecksum)}
	if distinct {
		opts = append(opts, column.WithDistinct())
	}
	if bigEndian {
		opts = append(opts, column.WithBigEndian())
	}

	enc, err := column.NewEncoder(cfg, opts...)
	if err != nil {
		return err
	}

	r, closeIn, err := openInput(env, in)
	if err != nil {
		return err
	}
	defer closeIn()

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		if err := enc.AppendString(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	blob, err := enc.Finish()
	if err != nil {
		return err
	}

	stats := enc.Stats()
	logger.Info("packed column",
		zap.Stringer("config", cfg),
		zap.Stringer("compression", comp),
		zap.Int("records", enc.Len()),
		zap.Int64("payload_bytes", stats.OriginalSize),
		zap.Int64("stored_bytes", stats.CompressedSize),
		zap.Float64("space_savings", stats.SpaceSavings()),
		zap.Int("hash_collisions", enc.Collisions()),
	)

	return writeOutput(env, out, blob)
}

func runUnpack(env *environment, args []string) error {
	s := defaultSettings()
	var in string
	var headerOnly bool

	fs := pflag.NewFlagSet("unpack", pflag.ContinueOnError)
	fs.SetOutput(env.stderr)
	s.addFlags(fs)
	fs.StringVarP(&in, "in", "i", "-", "input column file, - for stdin")
	fs.BoolVar(&headerOnly, "header", false, "print the column header instead of the strings")
	fs.Usage = func() {
		fmt.Fprintf(env.stderr, "Usage:\n  stringlet unpack [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := s.parse(fs, args); err != nil {
		return err
	}
	logger, err := s.logger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	r, closeIn, err := openInput(env, in)
	if err != nil {
		return err
	}
	defer closeIn()

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	dec, err := column.NewDecoder(data)
	if err != nil {
		return err
	}

	header := dec.Header()
	byteOrder := endian.Name(header.GetEndianEngine())
	logger.Info("unpacking column",
		zap.Stringer("config", dec.Config()),
		zap.Stringer("compression", header.Flag.GetCompression()),
		zap.String("byte_order", byteOrder),
		zap.Bool("checksum", header.Flag.HasChecksum()),
		zap.Int("records", dec.Len()),
	)

	if headerOnly {
		fmt.Fprintf(env.stdout, "config:       %s\n", dec.Config())
		fmt.Fprintf(env.stdout, "records:      %d\n", dec.Len())
		fmt.Fprintf(env.stdout, "compression:  %s\n", header.Flag.GetCompression())
		fmt.Fprintf(env.stdout, "byte order:   %s\n", byteOrder)
		fmt.Fprintf(env.stdout, "checksum:     %t\n", header.Flag.HasChecksum())
		fmt.Fprintf(env.stdout, "payload size: %d\n", header.PayloadSize)
		fmt.Fprintf(env.stdout, "stored size:  %d\n", header.StoredSize)

		return nil
	}

	w := bufio.NewWriter(env.stdout)
	for str := range dec.Strings() {
		if _, err := fmt.Fprintln(w, str); err != nil {
			return err
		}
	}

	return w.Flush()
}

func openInput(env *environment, path string) (io.Reader, func(), error) {
	if path == "-" {
		return env.stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}

func writeOutput(env *environment, path string, data []byte) error {
	if path == "-" {
		_, err := env.stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, 0o644) //nolint:gosec
}
