package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cricket-insights/internal/config"
	"github.com/riskibarqy/cricket-insights/internal/platform/logging"
	"github.com/riskibarqy/cricket-insights/internal/usecase"
)

func writeSource(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		HTTPAddr:           ":0",
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		DataDir:            t.TempDir(),
		SourceDir:          t.TempDir(),
		ETLLoadWorkers:     2,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		CacheWarmupWorkers: 2,
		CORSAllowedOrigins: []string{"*"},
	}
}

func playerTotal(t *testing.T, handler http.Handler) float64 {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/players", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Total float64 `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	return body.Data.Total
}

func TestIngestionThenAPI_ServesAndReloadsSnapshot(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()
	logger := logging.NewNop()

	writeSource(t, cfg.SourceDir, "Batting/ODI data.csv",
		"Player,Span,Mat,Inns,NO,Runs,HS,Ave,BF,SR,100,50,4s,6s\n"+
			"SR Tendulkar (INDIA),1989-2012,463,452,41,18426,200*,44.83,21367,86.23,49,96,2016,195\n"+
			"RT Ponting (AUS/ICC),1995-2012,375,365,39,13704,164,42.03,17046,80.39,30,82,1231,162\n")
	writeSource(t, cfg.SourceDir, "Bowling/Bowling_ODI.csv",
		"Player,Span,Mat,Inns,Wkts,BBI,Ave,Econ,SR,5,10\n"+
			"SR Tendulkar (INDIA),1989-2012,463,270,154,5/32,44.48,5.10,52.2,2,0\n")

	ingestion, err := NewIngestion(cfg, logger)
	require.NoError(t, err)
	result, err := ingestion.Run(ctx, usecase.IngestionInput{})
	require.NoError(t, err)
	assert.True(t, result.Published)
	assert.Equal(t, 2, result.Players)
	assert.Equal(t, 2, result.Stats)

	api, err := NewAPI(ctx, cfg, logger)
	require.NoError(t, err)
	require.NoError(t, api.Warm(ctx))
	assert.Equal(t, float64(2), playerTotal(t, api.Server.Handler))

	writeSource(t, cfg.SourceDir, "Batting/t20.csv",
		"Player,Span,Mat,Inns,NO,Runs,HS,Ave,BF,SR,100,50,4s,6s\n"+
			"V Kohli (INDIA),2010-2024,125,117,31,4188,122*,48.69,3056,137.04,1,38,369,124\n")
	_, err = ingestion.Run(ctx, usecase.IngestionInput{})
	require.NoError(t, err)

	assert.Equal(t, float64(2), playerTotal(t, api.Server.Handler), "cached snapshot until reload")
	require.NoError(t, api.Reload(ctx))
	assert.Equal(t, float64(3), playerTotal(t, api.Server.Handler))
}

func TestNewAPI_EmptyDataDirServesEmptySnapshot(t *testing.T) {
	cfg := testConfig(t)
	cfg.CacheEnabled = false

	api, err := NewAPI(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	require.NoError(t, api.Warm(context.Background()))
	assert.Equal(t, float64(0), playerTotal(t, api.Server.Handler))
	require.NoError(t, api.Reload(context.Background()))
}

func TestNewAPI_RequiresAddr(t *testing.T) {
	cfg := testConfig(t)
	cfg.HTTPAddr = ""

	_, err := NewAPI(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}

func TestNewIngestion_BadManifest(t *testing.T) {
	cfg := testConfig(t)
	cfg.SourceManifest = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := NewIngestion(cfg, logging.NewNop())
	require.Error(t, err)
}
