package collector

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"StockLens/internal/config"
	"StockLens/internal/loader"
	"StockLens/internal/stock"
)

// LoadResult describes how one source fared.
type LoadResult struct {
	Source   string
	Format   string
	Records  int
	Duration time.Duration
	Err      error
}

// Collector gathers every configured source into a single registry.
type Collector struct {
	opener loader.Opener
	cfg    config.DataConfig
}

// New creates a Collector reading through opener.
func New(opener loader.Opener, cfg config.DataConfig) *Collector {
	return &Collector{opener: opener, cfg: cfg}
}

// Sources returns the source paths a Collect call would load, in load order.
func (c *Collector) Sources() ([]string, error) {
	if len(c.cfg.Sources) > 0 {
		out := make([]string, 0, len(c.cfg.Sources))
		for _, s := range c.cfg.Sources {
			if !filepath.IsAbs(s) {
				s = filepath.Join(c.cfg.Dir, s)
			}
			out = append(out, s)
		}
		return out, nil
	}

	entries, err := os.ReadDir(c.cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("scan data dir: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := loader.ForSource(e.Name()); err != nil {
			continue
		}
		out = append(out, filepath.Join(c.cfg.Dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

// Collect loads every source into a fresh registry. A failing source aborts
// the run unless SkipBadSources is set, in which case it is logged and left
// out. The returned results cover every source attempted.
func (c *Collector) Collect() (*stock.Registry, []LoadResult, error) {
	sources, err := c.Sources()
	if err != nil {
		return nil, nil, err
	}
	if len(sources) == 0 {
		log.Warn().Str("dir", c.cfg.Dir).Msg("no data sources found")
	}

	reg := stock.NewRegistry()
	results := make([]LoadResult, 0, len(sources))
	for _, src := range sources {
		res := c.load(src, reg)
		results = append(results, res)
		if res.Err == nil {
			log.Info().
				Str("source", src).
				Str("format", res.Format).
				Int("records", res.Records).
				Dur("took", res.Duration).
				Msg("source loaded")
			continue
		}
		if !c.cfg.SkipBadSources {
			return nil, results, res.Err
		}
		log.Warn().Err(res.Err).Str("source", src).Msg("skipping bad source")
	}

	log.Info().Int("sources", len(sources)).Int("symbols", reg.Len()).Msg("collection complete")
	return reg, results, nil
}

func (c *Collector) load(src string, reg *stock.Registry) LoadResult {
	start := time.Now()
	res := LoadResult{Source: src}

	l, err := loader.ForSource(src)
	if err != nil {
		res.Err = err
		return res
	}
	res.Format = l.Name
	res.Records, res.Err = l.Load(c.opener, src, reg)
	res.Duration = time.Since(start)
	return res
}
