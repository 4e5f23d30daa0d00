package stringlet

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGoString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Fixed", fmt.Sprintf("%#v", MustFromString[Fixed, [3]byte]("aha")), `fixed<3>{"aha"}`},
		{"Slim with tail", fmt.Sprintf("%#v", MustFromString[Slim, [5]byte]("aha")), `slim<5>{"aha", 0b11_000010, 0b11_000010}`},
		{"Trim short", fmt.Sprintf("%#v", MustFromString[Trim, [3]byte]("ah")), `trim<3>{"ah", 0b11_000001}`},
		{"Var empty", fmt.Sprintf("%#v", MustFromString[Var, [2]byte]("")), `var<2>{"", 0b11_000010, 0b11_000010}`},
		{"Value", fmt.Sprintf("%#v", MustValue(KindVar, 3, "é")), `var<3>{"é", 0b11_000001}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.got)
		})
	}
}
