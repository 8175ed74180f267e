package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/herd/internal/config"
)

func TestOpenBackendUnsupportedSource(t *testing.T) {
	_, err := OpenBackend(context.Background(), &config.Config{Reporting: config.ReportingConfig{Source: "csv"}}, nil)
	require.ErrorContains(t, err, "unsupported cattle source")
}

func TestBackendCloseNil(t *testing.T) {
	var b *Backend
	require.NoError(t, b.Close(context.Background()))
	require.NoError(t, (&Backend{}).Close(context.Background()))
}

func TestOpenBackendSheetsMissingCredentials(t *testing.T) {
	cfg := &config.Config{
		Reporting: config.ReportingConfig{Source: config.SourceSheets},
		Sheets: config.SheetsConfig{
			CredentialsPath: filepath.Join(t.TempDir(), "absent.json"),
			SpreadsheetID:   "sheet-1",
			CattleRange:     "Cattle!A:M",
		},
	}

	_, err := OpenBackend(context.Background(), cfg, nil)
	require.ErrorContains(t, err, "open sheets backend")
}
