// Package stringlet provides inline, fixed-capacity UTF-8 strings.
//
// A stringlet stores its bytes directly in a byte array of a capacity chosen
// at compile time. It never allocates, copies by value, and compares with ==
// within one configuration. Four kinds trade capacity against length
// tracking:
//
//   - Fixed: the content always fills the buffer; no length is stored.
//   - Var: an explicit one-byte length next to the buffer; 0..capacity bytes.
//   - Trim: capacity or capacity-1 bytes, told apart by one tagged byte.
//   - Slim: 0..capacity bytes, the length packed into the last byte.
//
// # Tail Encoding
//
// Unused tail bytes of Var, Trim and Slim hold TailTag|(capacity-length). A
// byte with the two top bits set never ends valid UTF-8, so the last byte of a
// Trim or Slim buffer tells content from tail, and its low six bits give the
// tail length. For Slim at capacity 64 an empty string is 64 bytes of 0xC0.
//
// # Basic Usage
//
//	name, err := stringlet.FromString[stringlet.Slim, [16]byte]("cpu.usage")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(name.Len(), name) // 9 cpu.usage
//
//	code := stringlet.MustFromString[stringlet.Fixed, [3]byte]("aha")
//	fmt.Println(stringlet.Equal(name, code)) // false
//
// Configurations are mixed freely by Equal and Compare, which look at the kinds
// and capacities first and only read content when they must:
//
//	a := stringlet.MustFromString[stringlet.Slim, [2]byte]("xy")
//	b := stringlet.MustFromString[stringlet.Var, [3]byte]("xy")
//	stringlet.Equal(a, b) // true
//	a.Hash() == b.Hash()  // true
//
// # Runtime Configurations
//
// The generic Stringlet covers capacities 0..64. Value is the
// runtime-configured form: the kind and capacity are data, which suits
// configuration files and column storage, and it also reaches Var capacities up
// to 255.
//
//	cfg, _ := stringlet.ParseConfig("var:200")
//	v, err := cfg.New(longText)
//
// # Serialization
//
// Stringlet and Value marshal as strings in JSON, YAML and CBOR, and as their
// raw record in binary form. The column package packs many records of one
// configuration into a compressed, checksummed blob.
//
// # Debug Builds
//
// The unchecked constructors trust the caller. Building with the
// stringlet_debug tag makes them panic on a violated contract.
package stringlet
