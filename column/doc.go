// Package column packs many stringlets of one configuration into a compact,
// checksummed blob with constant-time random access.
//
// Every record has the same stride (the capacity, plus one length byte for
// Var), so the blob needs no index: record i starts at i*stride of the
// decompressed payload. Records are canonical, which lets Index compare them
// byte for byte.
//
// # Encoding
//
//	cfg, _ := stringlet.ParseConfig("slim:16")
//	enc, err := column.NewEncoder(cfg, column.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	if err := enc.AppendStrings("cpu.usage", "mem.free"); err != nil {
//	    return err
//	}
//	data, err := enc.Finish()
//
// # Decoding
//
//	dec, err := column.NewDecoder(data)
//	if err != nil {
//	    return err
//	}
//	for i, v := range dec.All() {
//	    fmt.Println(i, v)
//	}
//	name, err := column.Get[stringlet.Slim, [16]byte](dec, 1)
//
// NewDecoder validates the header, the checksum and every record once, so the
// accessors never fail on a successfully opened column.
package column
