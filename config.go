package ninjaparse

import (
	"context"
	"log/slog"

	"github.com/dangerclosesec/ninjaparse/manifest"
	"golang.org/x/sync/errgroup"
)

// Config holds the settings for parsing build files.
type Config struct {
	// ctx is the context for all operations.
	ctx context.Context

	// logger is the logger used for logging messages.
	logger *slog.Logger

	// loader reads build files.
	// Default is manifest.OSLoader.
	loader manifest.Loader

	// Jobs bounds how many files are parsed concurrently.
	// Default is 8.
	Jobs int

	// FollowIncludes makes ParseAll load included and subninja files.
	FollowIncludes bool
}

func NewConfig(ctx context.Context) *Config {
	return &Config{
		ctx:    ctx,
		logger: slog.Default(),
		loader: manifest.OSLoader{},
		Jobs:   8,
	}
}

// SetJobs sets the parse concurrency.
func (c *Config) SetJobs(jobs int) {
	c.Jobs = jobs
}

// SetLoader sets the file loader.
func (c *Config) SetLoader(loader manifest.Loader) {
	c.loader = loader
}

// SetLogger sets the logger.
func (c *Config) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

// ParseAll parses each path in its own goroutine and returns the results in
// argument order. Without FollowIncludes every result holds one manifest.
func (c *Config) ParseAll(paths ...string) ([][]*manifest.Manifest, error) {
	results := make([][]*manifest.Manifest, len(paths))

	g, ctx := errgroup.WithContext(c.ctx)
	if c.Jobs > 0 {
		g.SetLimit(c.Jobs)
	}
	for i, path := range paths {
		g.Go(func() error {
			c.logger.Debug("parsing", "path", path, "follow", c.FollowIncludes)
			if c.FollowIncludes {
				files, err := manifest.Load(ctx, c.loader, path, c.logger)
				if err != nil {
					return err
				}
				results[i] = files
				return nil
			}

			content, err := c.loader.ReadFile(path)
			if err != nil {
				return err
			}
			m, err := manifest.Parse(path, content)
			if err != nil {
				return err
			}
			results[i] = []*manifest.Manifest{m}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
