package stringlet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/stringlet/errs"
)

func TestKind(t *testing.T) {
	tests := []struct {
		kind   Kind
		name   string
		maxCap int
	}{
		{KindFixed, "fixed", MaxCapacity},
		{KindVar, "var", MaxVarCapacity},
		{KindTrim, "trim", MaxCapacity},
		{KindSlim, "slim", MaxCapacity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.kind.IsValid())
			require.Equal(t, tt.name, tt.kind.String())
			require.Equal(t, tt.maxCap, tt.kind.MaxCapacity())

			parsed, err := ParseKind(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.kind, parsed)

			text, err := tt.kind.MarshalText()
			require.NoError(t, err)

			var k Kind
			require.NoError(t, k.UnmarshalText(text))
			require.Equal(t, tt.kind, k)
		})
	}

	t.Run("Invalid kind", func(t *testing.T) {
		k := Kind(7)
		require.False(t, k.IsValid())
		require.Equal(t, "unknown", k.String())
		require.Equal(t, -1, k.MaxCapacity())

		_, err := k.MarshalText()
		require.ErrorIs(t, err, errs.ErrInvalidKind)
	})

	t.Run("Parse is case-insensitive", func(t *testing.T) {
		k, err := ParseKind(" SLIM ")
		require.NoError(t, err)
		require.Equal(t, KindSlim, k)
	})

	t.Run("Parse unknown name", func(t *testing.T) {
		_, err := ParseKind("short")
		require.ErrorIs(t, err, errs.ErrInvalidKind)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		valid bool
	}{
		{"Fixed 0", Config{KindFixed, 0}, true},
		{"Fixed 64", Config{KindFixed, 64}, true},
		{"Fixed 65", Config{KindFixed, 65}, false},
		{"Trim 0", Config{KindTrim, 0}, true},
		{"Trim 64", Config{KindTrim, 64}, true},
		{"Trim 65", Config{KindTrim, 65}, false},
		{"Slim 64", Config{KindSlim, 64}, true},
		{"Slim 65", Config{KindSlim, 65}, false},
		{"Var 255", Config{KindVar, 255}, true},
		{"Var 256", Config{KindVar, 256}, false},
		{"Negative capacity", Config{KindVar, -1}, false},
		{"Invalid kind", Config{Kind(4), 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.valid, Legal(tt.cfg.Kind, tt.cfg.Capacity))

			err := tt.cfg.Validate()
			if tt.valid {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, errs.ErrCapacity)

			var capErr *CapacityError
			require.ErrorAs(t, err, &capErr)
			require.Equal(t, tt.cfg.Kind, capErr.Kind)
			require.Equal(t, tt.cfg.Capacity, capErr.Capacity)
		})
	}
}

func TestConfig_Fits(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		fits   []int
		misfit []int
	}{
		{"Fixed 3", Config{KindFixed, 3}, []int{3}, []int{0, 2, 4}},
		{"Fixed 0", Config{KindFixed, 0}, []int{0}, []int{1}},
		{"Var 5", Config{KindVar, 5}, []int{0, 1, 5}, []int{6}},
		{"Trim 4", Config{KindTrim, 4}, []int{3, 4}, []int{0, 2, 5}},
		{"Trim 1", Config{KindTrim, 1}, []int{0, 1}, []int{2}},
		{"Trim 0", Config{KindTrim, 0}, []int{0}, []int{1}},
		{"Slim 64", Config{KindSlim, 64}, []int{0, 63, 64}, []int{65}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := tt.cfg.LengthRange()
			for _, n := range tt.fits {
				require.True(t, tt.cfg.Fits(n), "length %d", n)
				require.True(t, n >= lo && n <= hi, "length %d outside [%d, %d]", n, lo, hi)
			}
			for _, n := range tt.misfit {
				require.False(t, tt.cfg.Fits(n), "length %d", n)
			}
		})
	}
}

func TestConfig_Stride(t *testing.T) {
	require.Equal(t, 16, Config{KindSlim, 16}.Stride())
	require.Equal(t, 3, Config{KindFixed, 3}.Stride())
	require.Equal(t, 8, Config{KindTrim, 8}.Stride())
	require.Equal(t, 256, Config{KindVar, 255}.Stride())
	require.Equal(t, 1, Config{KindVar, 0}.Stride())
}

func TestParseConfig(t *testing.T) {
	t.Run("Colon form", func(t *testing.T) {
		cfg, err := ParseConfig("slim:16")
		require.NoError(t, err)
		require.Equal(t, Config{KindSlim, 16}, cfg)
	})

	t.Run("String form round-trips", func(t *testing.T) {
		for _, want := range []Config{{KindVar, 200}, {KindFixed, 0}, {KindTrim, 64}} {
			cfg, err := ParseConfig(want.String())
			require.NoError(t, err)
			require.Equal(t, want, cfg)
		}
	})

	t.Run("String format", func(t *testing.T) {
		require.Equal(t, "slim<16>", Config{KindSlim, 16}.String())
	})

	t.Run("Illegal capacity", func(t *testing.T) {
		_, err := ParseConfig("fixed:65")
		require.ErrorIs(t, err, errs.ErrCapacity)
	})

	t.Run("Non-numeric capacity", func(t *testing.T) {
		_, err := ParseConfig("slim:x")
		require.ErrorIs(t, err, errs.ErrCapacity)
	})

	t.Run("Unknown kind", func(t *testing.T) {
		_, err := ParseConfig("bogus:3")
		require.ErrorIs(t, err, errs.ErrInvalidKind)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := ParseConfig("slim16")
		require.ErrorIs(t, err, errs.ErrInvalidKind)
	})
}
