package driver

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SteveSandersonMS/witx-bindgen/internal/diag"
	"github.com/SteveSandersonMS/witx-bindgen/internal/pipeline"
	"github.com/SteveSandersonMS/witx-bindgen/internal/project"
	"github.com/SteveSandersonMS/witx-bindgen/internal/source"
)

// CheckResult is the outcome of checking one profile file.
type CheckResult struct {
	Path    string
	FileID  source.FileID
	Decls   int
	Bag     *diag.Bag
	Elapsed time.Duration
	Cached  bool
}

// CheckOptions configures a batch check.
type CheckOptions struct {
	MaxDiagnostics int
	Jobs           int
	Progress       pipeline.ProgressSink
	Cache          *DiskCache // optional
}

// CheckDir checks every *.profile file under dir in parallel.
// Results come back in deterministic (sorted path) order.
func CheckDir(ctx context.Context, dir string, opts CheckOptions) (*source.FileSet, []CheckResult, error) {
	files, err := project.ListProfileFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	return CheckFiles(ctx, files, opts)
}

// CheckFiles checks the given files in parallel with a bounded worker pool.
func CheckFiles(ctx context.Context, files []string, opts CheckOptions) (*source.FileSet, []CheckResult, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	maxDiagnostics := opts.MaxDiagnostics
	if maxDiagnostics <= 0 {
		maxDiagnostics = 100
	}

	// Load sequentially: the FileSet is not safe for concurrent Add.
	fs := source.NewFileSet()
	ids := make([]source.FileID, len(files))
	for i, path := range files {
		pipeline.Emit(opts.Progress, pipeline.Event{
			File: path, Stage: pipeline.StageLex, Status: pipeline.StatusQueued,
		})
		id, err := fs.Load(path)
		if err != nil {
			return nil, nil, err
		}
		ids[i] = id
	}

	results := make([]CheckResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i := range files {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			file := fs.Get(ids[i])
			results[i] = checkOne(file, files[i], maxDiagnostics, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fs, results, nil
}

func checkOne(file *source.File, path string, maxDiagnostics int, opts CheckOptions) CheckResult {
	start := time.Now()

	if opts.Cache != nil {
		var payload CachePayload
		if hit, err := opts.Cache.Get(file.Hash, &payload); err == nil && hit && payload.Clean {
			pipeline.Emit(opts.Progress, pipeline.Event{
				File: path, Stage: pipeline.StageParse, Status: pipeline.StatusDone,
				Elapsed: time.Since(start),
			})
			return CheckResult{
				Path:    path,
				FileID:  file.ID,
				Decls:   payload.Decls,
				Bag:     diag.NewBag(maxDiagnostics),
				Elapsed: time.Since(start),
				Cached:  true,
			}
		}
	}

	pipeline.Emit(opts.Progress, pipeline.Event{
		File: path, Stage: pipeline.StageParse, Status: pipeline.StatusWorking,
	})

	profile, bag := parseFile(file, maxDiagnostics)

	res := CheckResult{
		Path:    path,
		FileID:  file.ID,
		Bag:     bag,
		Elapsed: time.Since(start),
	}
	status := pipeline.StatusDone
	if profile != nil {
		res.Decls = len(profile.Decls)
	}
	if bag.HasErrors() {
		status = pipeline.StatusError
	} else if opts.Cache != nil {
		// cache only clean files; failures reparse next time
		_ = opts.Cache.Put(file.Hash, &CachePayload{
			Schema: cacheSchemaVersion,
			Path:   path,
			Clean:  true,
			Decls:  res.Decls,
		})
	}
	pipeline.Emit(opts.Progress, pipeline.Event{
		File: path, Stage: pipeline.StageParse, Status: status,
		Elapsed: res.Elapsed,
	})
	return res
}
