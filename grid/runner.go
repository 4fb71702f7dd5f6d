// SPDX-License-Identifier: MIT

package grid

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sedmaker/agegrid"
	"github.com/katalvlaran/sedmaker/bpass"
	"github.com/katalvlaran/sedmaker/spectra"
)

// Runner executes a validated Config.
type Runner struct {
	cfg     *Config
	log     *zap.Logger
	loader  TableLoader
	workers int
	policy  ErrorPolicy
	now     func() time.Time
}

// jobResult is written only by the goroutine that owns the job's table group.
type jobResult struct {
	path string
	err  error
}

// NewRunner validates cfg and applies opts. The default loader reads
// cfg.Library from disk.
func NewRunner(cfg *Config, opts ...Option) (*Runner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("grid.NewRunner: nil config: %w", ErrConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rc := newRunnerConfig(opts...)
	r := &Runner{
		cfg:     cfg,
		log:     rc.log,
		loader:  rc.loader,
		workers: cfg.Workers,
		policy:  cfg.OnError,
		now:     rc.now,
	}
	if r.loader == nil {
		r.loader = cfg.Library
	}
	if rc.workers > 0 {
		r.workers = rc.workers
	}
	if rc.policy != "" {
		r.policy = rc.policy
	}

	return r, nil
}

// Run plans the grid, synthesizes every job and writes SEDs, catalogs and
// the manifest into cfg.OutputDir.
//
// Implementation:
//   - Stage 1: Plan under the effective policy; group jobs by TableKey in
//     first-appearance order.
//   - Stage 2: one errgroup task per group (at most workers at a time) loads
//     the table once and writes its SEDs. Under PolicyAbort the first error
//     cancels the group context.
//   - Stage 3: catalogs and manifest in plan order, after all tasks finish.
//
// Cancelling ctx stops the run between jobs regardless of policy.
func (r *Runner) Run(ctx context.Context) (*Manifest, error) {
	cfg := *r.cfg
	cfg.OnError = r.policy
	jobs, err := Plan(&cfg)
	if err != nil {
		return nil, err
	}

	m := &Manifest{
		RunID:   uuid.NewString(),
		Started: r.now(),
		Library: ManifestLibrary{
			Root:             cfg.Library.Root,
			Version:          cfg.Library.Version,
			IMF:              cfg.Library.IMF,
			WavelengthColumn: cfg.Library.WavelengthColumn,
		},
		Window:    cfg.Window,
		SpanYears: agegrid.Span(),
		Workers:   r.workers,
		OnError:   r.policy,
	}
	log := r.log.With(zap.String("run_id", m.RunID))

	if err = os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("grid.Run: %w", err)
	}

	keys, groups := groupByKey(jobs)
	log.Info("grid run started",
		zap.Int("jobs", len(jobs)),
		zap.Int("tables", len(keys)),
		zap.Int("workers", r.workers),
		zap.String("on_error", string(r.policy)),
		zap.String("library", cfg.Library.Dir()),
	)

	results := make([]jobResult, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for _, key := range keys {
		idxs := groups[key]
		g.Go(func() error {
			return r.runGroup(gctx, log, key, idxs, jobs, results)
		})
	}
	if err = g.Wait(); err != nil {
		log.Error("grid run aborted", zap.Error(err))
		return nil, err
	}

	if err = r.finish(m, jobs, results, len(keys)); err != nil {
		return nil, err
	}
	log.Info("grid run finished",
		zap.Int("written", m.Totals.Written),
		zap.Int("skipped", m.Totals.Skipped),
		zap.Duration("elapsed", m.Finished.Sub(m.Started)),
	)

	return m, nil
}

// runGroup loads key's table and processes its jobs in plan order.
func (r *Runner) runGroup(ctx context.Context, log *zap.Logger, key TableKey, idxs []int, jobs []Job, results []jobResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	log = log.With(zap.String("table", key.String()))
	tbl, err := r.loader.Load(key.Metallicity, key.Binaries, r.cfg.Window)
	if err != nil {
		err = fmt.Errorf("grid: load %s: %w", key, err)
		if r.policy == PolicyAbort {
			return err
		}
		log.Warn("table skipped", zap.Int("jobs", len(idxs)), zap.Error(err))
		for _, i := range idxs {
			results[i].err = err
		}

		return nil
	}
	log.Debug("table loaded", zap.Int("rows", tbl.Rows()))

	for _, i := range idxs {
		if err = ctx.Err(); err != nil {
			return err
		}
		job := jobs[i]
		if job.Err != nil {
			log.Warn("job skipped", zap.String("file", job.File), zap.Error(job.Err))
			results[i].err = job.Err
			continue
		}

		path := filepath.Join(r.cfg.OutputDir, job.File)
		if err = r.synthesize(job, tbl, path); err != nil {
			if r.policy == PolicyAbort {
				return err
			}
			log.Warn("job skipped", zap.String("file", job.File), zap.Error(err))
			results[i].err = err
			continue
		}
		results[i].path = path
		log.Debug("sed written", zap.String("file", job.File), zap.Stringer("sfh", job.Spec))
	}

	return nil
}

func (r *Runner) synthesize(job Job, tbl *spectra.Table, path string) error {
	s, _, err := spectra.Synthesize(job.Spec, tbl)
	if err != nil {
		return fmt.Errorf("grid: %s: %w", job.File, err)
	}
	if r.cfg.NormalizeRow != NoNormalize {
		if s, err = s.Normalize(r.cfg.NormalizeRow); err != nil {
			return fmt.Errorf("grid: %s: %w", job.File, err)
		}
	}

	return WriteSED(path, s)
}

// finish fills the manifest from results and writes catalogs and manifest.
func (r *Runner) finish(m *Manifest, jobs []Job, results []jobResult, tables int) error {
	var all, nobin, bin []string
	for i, job := range jobs {
		res := results[i]
		if res.err != nil {
			m.Skipped = append(m.Skipped, Skipped{File: job.File, Reason: res.err.Error()})
			continue
		}
		z, _ := bpass.MetallicityValue(job.Key.Metallicity)
		m.Outputs = append(m.Outputs, Output{
			File:        job.File,
			Family:      job.Spec.Family().String(),
			Metallicity: job.Key.Metallicity,
			Z:           z,
			Binaries:    job.Key.Binaries,
			Params:      job.Spec.Params(),
		})
		all = append(all, res.path)
		if job.Key.Binaries {
			bin = append(bin, res.path)
		} else {
			nobin = append(nobin, res.path)
		}
	}

	base := filepath.Join(r.cfg.OutputDir, r.cfg.Catalog)
	catalogs := []struct {
		path  string
		files []string
	}{
		{base + ".param", all},
		{base + "_nobin.param", nobin},
		{base + "_bin.param", bin},
	}
	for _, c := range catalogs {
		if err := WriteCatalog(c.path, c.files); err != nil {
			return err
		}
		m.Catalogs = append(m.Catalogs, filepath.Base(c.path))
	}

	m.Finished = r.now()
	m.Totals = Totals{Planned: len(jobs), Written: len(m.Outputs), Skipped: len(m.Skipped), Tables: tables}

	return WriteManifest(filepath.Join(r.cfg.OutputDir, ManifestFile), m)
}

// groupByKey returns the distinct keys in first-appearance order and the
// job indexes of each.
func groupByKey(jobs []Job) ([]TableKey, map[TableKey][]int) {
	var keys []TableKey
	groups := make(map[TableKey][]int)
	for i, j := range jobs {
		if _, ok := groups[j.Key]; !ok {
			keys = append(keys, j.Key)
		}
		groups[j.Key] = append(groups[j.Key], i)
	}

	return keys, groups
}
