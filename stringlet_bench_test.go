package stringlet

import "testing"

func BenchmarkFromString(b *testing.B) {
	b.Run("Slim16", func(b *testing.B) {
		for b.Loop() {
			_, _ = FromString[Slim, [16]byte]("cpu.usage")
		}
	})
	b.Run("Var16", func(b *testing.B) {
		for b.Loop() {
			_, _ = FromString[Var, [16]byte]("cpu.usage")
		}
	})
	b.Run("Value", func(b *testing.B) {
		cfg := Config{Kind: KindSlim, Capacity: 16}
		for b.Loop() {
			_, _ = cfg.New("cpu.usage")
		}
	})
}

func BenchmarkLen(b *testing.B) {
	slim := MustFromString[Slim, [16]byte]("cpu.usage")
	trim := MustFromString[Trim, [16]byte](text(15))
	v := MustFromString[Var, [16]byte]("cpu.usage")

	b.Run("Slim", func(b *testing.B) {
		for b.Loop() {
			_ = slim.Len()
		}
	})
	b.Run("Trim", func(b *testing.B) {
		for b.Loop() {
			_ = trim.Len()
		}
	})
	b.Run("Var", func(b *testing.B) {
		for b.Loop() {
			_ = v.Len()
		}
	})
}

func BenchmarkEqual(b *testing.B) {
	a := MustFromString[Slim, [16]byte]("cpu.usage")
	same := MustFromString[Slim, [16]byte]("cpu.usage")
	wider := MustFromString[Var, [32]byte]("cpu.usage")
	fixed := MustFromString[Fixed, [3]byte]("cpu")

	b.Run("SameConfig", func(b *testing.B) {
		for b.Loop() {
			_ = a.Equal(same)
		}
	})
	b.Run("SameCapacity", func(b *testing.B) {
		for b.Loop() {
			_ = Equal(a, same)
		}
	})
	b.Run("MixedCapacity", func(b *testing.B) {
		for b.Loop() {
			_ = Equal(a, wider)
		}
	})
	b.Run("FixedPrefix", func(b *testing.B) {
		for b.Loop() {
			_ = Equal(fixed, wider)
		}
	})
}

func BenchmarkHash(b *testing.B) {
	a := MustFromString[Slim, [16]byte]("cpu.usage")
	for b.Loop() {
		_ = a.Hash()
	}
}
