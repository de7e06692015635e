package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/victimofleisure/BalaGrayIter/winner"
)

func sampleWinners(trackStdDev bool) []winner.Winner {
	return []winner.Winner{
		winner.New(0x22, 2, 4, 0, 2, 2, 0, trackStdDev, true, []int{0, 1, 3, 2}),
		winner.New(0x33, 2, 6, 1, 3, 3, 1.5, trackStdDev, false, []int{0, 1, 2, 5, 8, 7, 4, 3, 6}),
	}
}

func TestWinnerListRoundTrip(t *testing.T) {
	for _, track := range []bool{false, true} {
		winners := sampleWinners(track)
		var buf bytes.Buffer

		require.NoError(t, WriteWinnerList(&buf, winners, track))

		got, err := ReadWinnerList(&buf, track)
		require.NoError(t, err)
		require.Len(t, got, len(winners))
		for i := range winners {
			require.True(t, winners[i].Equal(got[i]))
		}
	}
}

func TestReadWinnerListSchemaMismatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWinnerList(&buf, sampleWinners(false), false))

	_, err := ReadWinnerList(&buf, true)
	require.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, sampleWinners(true)))
	require.Contains(t, buf.String(), "<table>")
	require.Contains(t, buf.String(), "</table>")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleWinners(true)))
	require.Contains(t, buf.String(), "SetCode")
}

func TestWriteStepTrackCSV(t *testing.T) {
	var buf bytes.Buffer
	w := sampleWinners(false)[0]
	require.NoError(t, WriteStepTrackCSV(&buf, w))
	require.Contains(t, buf.String(), "step,numeral")
}

func TestReadLogRoundTrip(t *testing.T) {
	log := "balance = 0, maxtrans = 2, maxspan = 2, stddev = 0.5\n" +
		"0 1 0 1\n1 0 1 0\n\n"

	entries, err := ReadLog(bytes.NewBufferString(log))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, 0, entries[0].Imbalance)
	require.Equal(t, 2, entries[0].MaxTrans)
	require.Equal(t, 2, entries[0].MaxSpan)
	require.True(t, entries[0].TrackStdDev)
	require.InDelta(t, 0.5, entries[0].StdDev, 1e-9)
	require.Equal(t, [][]int{{0, 1, 0, 1}, {1, 0, 1, 0}}, entries[0].Digits)
}

func TestReadLogRejectsTruncatedEntry(t *testing.T) {
	log := "balance = 0, maxtrans = 2, maxspan = 2\n0 1 0 1\n"

	_, err := ReadLog(bytes.NewBufferString(log))
	require.ErrorIs(t, err, ErrMalformedLog)
}
