package stringlet

// Common configurations. Any other is spelled out, e.g.
// Stringlet[Slim, [12]byte].
type (
	Fixed2  = Stringlet[Fixed, [2]byte]
	Fixed3  = Stringlet[Fixed, [3]byte]
	Fixed4  = Stringlet[Fixed, [4]byte]
	Fixed8  = Stringlet[Fixed, [8]byte]
	Fixed16 = Stringlet[Fixed, [16]byte]

	Var8  = Stringlet[Var, [8]byte]
	Var16 = Stringlet[Var, [16]byte]
	Var32 = Stringlet[Var, [32]byte]
	Var64 = Stringlet[Var, [64]byte]

	Trim8  = Stringlet[Trim, [8]byte]
	Trim16 = Stringlet[Trim, [16]byte]
	Trim32 = Stringlet[Trim, [32]byte]

	Slim8  = Stringlet[Slim, [8]byte]
	Slim16 = Stringlet[Slim, [16]byte]
	Slim24 = Stringlet[Slim, [24]byte]
	Slim32 = Stringlet[Slim, [32]byte]
	Slim64 = Stringlet[Slim, [64]byte]
)
