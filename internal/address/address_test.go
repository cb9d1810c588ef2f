package address

import (
	"crypto/ed25519"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func genPub(t *testing.T) ed25519.PublicKey {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return pub
}

func TestFromPublicKeyDeterministic(t *testing.T) {
	pub := genPub(t)
	a := FromPublicKey(pub)
	require.Equal(t, a, FromPublicKey(pub))
	require.True(t, strings.HasPrefix(a, "oct"))
}

func TestGeneratedAddressesAreValid(t *testing.T) {
	for i := 0; i < 50; i++ {
		a := FromPublicKey(genPub(t))
		require.True(t, IsValid(a), "address %q", a)
		require.GreaterOrEqual(t, len(a), 46)
		require.LessOrEqual(t, len(a), 47)
	}
}

func TestIsValidRejects(t *testing.T) {
	a := FromPublicKey(genPub(t))
	require.True(t, IsValid(a))

	// truncation breaks the length invariant
	require.False(t, IsValid(a[:45]))
	// growing past 47 breaks it too
	require.False(t, IsValid(a+"11"))
	// wrong prefix
	require.False(t, IsValid("abc"+a[3:]))
	// out-of-alphabet character after the prefix ('0' is not base58)
	require.False(t, IsValid(a[:10]+"0"+a[11:]))
	require.False(t, IsValid(""))
	require.False(t, IsValid("oct"))
}
