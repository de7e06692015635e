package orchestrator_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/victimofleisure/BalaGrayIter/catalog"
	"github.com/victimofleisure/BalaGrayIter/crawler"
	"github.com/victimofleisure/BalaGrayIter/orchestrator"
)

func TestRunProducesOneWinnerPerEntry(t *testing.T) {
	cat := catalog.Catalog{Entries: []catalog.Entry{
		{SetCode: 0x22},
		{SetCode: 0x23},
	}}

	winners, err := orchestrator.Run(cat, crawler.DefaultOptions(), 5*time.Second, "")
	require.NoError(t, err)
	require.Len(t, winners, 2)
	require.Equal(t, uint32(0x22), winners[0].SetCode)
	require.Equal(t, uint32(0x23), winners[1].SetCode)
	require.True(t, winners[0].Proven)
	require.True(t, winners[1].Proven)
}

func TestRunSkipsUndecodableSetCodes(t *testing.T) {
	cat := catalog.Catalog{Entries: []catalog.Entry{
		{SetCode: 0}, // zero code: ErrZeroCode, must be skipped not fatal
		{SetCode: 0x22},
	}}

	winners, err := orchestrator.Run(cat, crawler.DefaultOptions(), 5*time.Second, "")
	require.NoError(t, err)
	require.Len(t, winners, 1)
	require.Equal(t, uint32(0x22), winners[0].SetCode)
}

func TestRunWritesLogFilesWhenLogDirSet(t *testing.T) {
	dir := t.TempDir()
	cat := catalog.Catalog{Entries: []catalog.Entry{{SetCode: 0x22}}}

	_, err := orchestrator.Run(cat, crawler.DefaultOptions(), 5*time.Second, dir)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, crawler.LogFileName(0x22)))
}
