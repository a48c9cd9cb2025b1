package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Vvijayaragupathy-uno/Aiccore-fcsa-sub000/pkg/core/report"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AnalysisCache stores completed analyses keyed by upload fingerprint so a
// re-uploaded statement never pays for a second model round trip.
// DB is primary when a pool is configured; the file directory serves as a
// local fallback.
type AnalysisCache struct {
	pool    *pgxpool.Pool
	fileDir string
}

// NewAnalysisCache creates a cache instance. If pool is nil, it falls back
// to a file cache in dir, defaulting to .cache/analyses.
func NewAnalysisCache(pool *pgxpool.Pool, dir string) *AnalysisCache {
	if pool == nil && dir == "" {
		dir = filepath.Join(".cache", "analyses")
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("[WARNING] Check AnalysisCache dir: %v\n", err)
		}
	}
	return &AnalysisCache{pool: pool, fileDir: dir}
}

// cacheRecord is the file cache envelope around one analysis.
type cacheRecord struct {
	Fingerprint string           `json:"fingerprint"`
	Provider    string           `json:"llm_provider"`
	SavedAt     time.Time        `json:"saved_at"`
	Analysis    *report.Analysis `json:"analysis"`
}

// Get retrieves a cached analysis by fingerprint. A miss returns nil, nil.
func (c *AnalysisCache) Get(ctx context.Context, fingerprint string) (*report.Analysis, error) {
	if c.pool != nil {
		var dataJSON []byte
		err := c.pool.QueryRow(ctx,
			`SELECT data FROM analysis_cache WHERE fingerprint = $1`, fingerprint,
		).Scan(&dataJSON)
		if err != nil {
			return nil, nil // cache miss
		}
		var a report.Analysis
		if err := json.Unmarshal(dataJSON, &a); err != nil {
			return nil, fmt.Errorf("failed to unmarshal db cached analysis: %w", err)
		}
		return &a, nil
	}

	if c.fileDir != "" {
		return c.loadFromFile(c.path(fingerprint))
	}
	return nil, nil
}

// Save stores an analysis under its fingerprint, upserting on re-analysis.
func (c *AnalysisCache) Save(ctx context.Context, fingerprint string, a *report.Analysis) error {
	dataJSON, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	if c.pool != nil {
		_, err = c.pool.Exec(ctx, `
			INSERT INTO analysis_cache (fingerprint, data, llm_provider)
			VALUES ($1, $2, $3)
			ON CONFLICT (fingerprint)
			DO UPDATE SET
				data = EXCLUDED.data,
				llm_provider = EXCLUDED.llm_provider,
				updated_at = NOW()
		`, fingerprint, dataJSON, a.Provider)
		if err != nil {
			return fmt.Errorf("failed to save to db cache: %w", err)
		}
	}

	if c.fileDir != "" {
		record := cacheRecord{
			Fingerprint: fingerprint,
			Provider:    a.Provider,
			SavedAt:     time.Now(),
			Analysis:    a,
		}
		recordJSON, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal cache record: %w", err)
		}
		if err := os.WriteFile(c.path(fingerprint), recordJSON, 0644); err != nil {
			return fmt.Errorf("failed to write file cache: %w", err)
		}
	}
	return nil
}

func (c *AnalysisCache) path(fingerprint string) string {
	return filepath.Join(c.fileDir, fingerprint+".json")
}

func (c *AnalysisCache) loadFromFile(path string) (*report.Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil // cache miss
	}
	var record cacheRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal file cached analysis: %w", err)
	}
	return record.Analysis, nil
}
