package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another string", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestID_Stable(t *testing.T) {
	// Custom dimension identity relies on the hash being stable across calls.
	for _, name := range []string{"Reflectance", "Amplitude", "Deviation", "pulse width"} {
		require.Equal(t, ID(name), ID(name))
		require.NotZero(t, ID(name))
	}
}

func BenchmarkID(b *testing.B) {
	for b.Loop() {
		ID("Reflectance")
	}
}
