package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/victimofleisure/BalaGrayIter/crawler"
)

func TestDefaultContainsDocumentedSetCodes(t *testing.T) {
	cat := Default()
	want := []uint32{0x22, 0x23, 0x33, 0x234, 0x336, 0x2334, 0x22233,
		0x22223, 0x22224, 0x37, 0x46, 0x22222, 0x2225, 0x3333}

	got := make(map[uint32]bool, len(cat.Entries))
	for _, e := range cat.Entries {
		got[e.SetCode] = true
	}
	for _, code := range want {
		require.True(t, got[code], "missing set code %#x", code)
	}
}

func TestDefaultIsTheExhaustivePrimeFormList(t *testing.T) {
	cat := Default()
	require.Len(t, cat.Entries, len(allSetCodes))

	got := make(map[uint32]bool, len(cat.Entries))
	for _, e := range cat.Entries {
		got[e.SetCode] = true
	}
	// Spot-check entries, all but 0x3333 absent from the older 14-code subset.
	for _, code := range []uint32{0x24, 0x2A, 0x66, 0x444, 0x3333, 0x222222} {
		require.True(t, got[code], "missing set code %#x", code)
	}
}

func TestResolveAppliesPruneImbalanceOverride(t *testing.T) {
	cat := Default()
	base := crawler.DefaultOptions()

	opts, _ := cat.Resolve(base, time.Second, 0x336)
	require.Equal(t, 4, opts.PruneImbalance)

	opts, _ = cat.Resolve(base, time.Second, 0x22223)
	require.Equal(t, 2, opts.PruneImbalance)
}

func TestResolveRaisesTimeoutFloor(t *testing.T) {
	cat := Default()
	base := crawler.DefaultOptions()

	_, timeout := cat.Resolve(base, 5*time.Second, 0x234)
	require.GreaterOrEqual(t, timeout, 120*time.Second)

	_, timeout = cat.Resolve(base, 200*time.Second, 0x234)
	require.Equal(t, 200*time.Second, timeout)

	_, timeout = cat.Resolve(base, 5*time.Second, 0x2225)
	require.GreaterOrEqual(t, timeout, 180*time.Second)
}

func TestResolveUnknownCodeLeavesBaseUntouched(t *testing.T) {
	cat := Default()
	base := crawler.DefaultOptions()

	opts, timeout := cat.Resolve(base, 30*time.Second, 0xDEAD)
	require.Equal(t, base.PruneImbalance, opts.PruneImbalance)
	require.Equal(t, 30*time.Second, timeout)
}
