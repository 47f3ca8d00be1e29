package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "lagos_previous", NormalizeName("  Lagos_Previous\n"))
	require.Equal(t, "westernunion", NormalizeName("Western Union"))
}

func TestClosest(t *testing.T) {
	types := []string{"cbn", "movement", "lagos_previous", "moneygram", "westernunion", "otherparallel"}

	require.Equal(t, "moneygram", Closest("monygram", types))
	require.Equal(t, "westernunion", Closest("Western Union", types))
	require.Equal(t, "", Closest("", types))
	require.Equal(t, "", Closest("zzzzzzzz", types))
}
