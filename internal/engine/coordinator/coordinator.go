// Package coordinator ties the memo layer and the entry store together around the transformer.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.trai.ch/jsxcache/internal/core/domain"
	"go.trai.ch/jsxcache/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.TransformCache = (*Coordinator)(nil)

// Coordinator implements ports.TransformCache.
//
// Lookups go memo first (by identity), then the entry store (by content key) in the
// primary directory and finally in the temporary directory. The transformer runs at most
// once per Compute call.
type Coordinator struct {
	transformer ports.Transformer
	store       ports.EntryStore
	memo        ports.Memo
	locator     ports.DirectoryLocator
	logger      ports.Logger
	telemetry   ports.Telemetry

	dirOnce sync.Once
	dir     string

	inflight singleflight.Group
}

// New creates a new Coordinator.
func New(
	transformer ports.Transformer,
	store ports.EntryStore,
	memo ports.Memo,
	locator ports.DirectoryLocator,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Coordinator {
	return &Coordinator{
		transformer: transformer,
		store:       store,
		memo:        memo,
		locator:     locator,
		logger:      logger,
		telemetry:   telemetry,
	}
}

// Directory returns the primary cache directory, resolving it on first use.
func (c *Coordinator) Directory() string {
	c.dirOnce.Do(func() {
		c.dir = c.locator.Locate()
	})
	return c.dir
}

// Key returns the content key of req.
func (c *Coordinator) Key(req *domain.Request) (domain.CacheKey, error) {
	return req.Key()
}

// Compute returns the transformer output for req.
//
// Transformer errors are returned unchanged. When no candidate directory can be prepared
// the error matches domain.ErrStorageUnavailable.
func (c *Coordinator) Compute(ctx context.Context, req *domain.Request, cacheEnabled bool) (string, error) {
	ctx, vertex := c.telemetry.Record(ctx, vertexName(req))

	output, cached, err := c.compute(ctx, req, cacheEnabled)
	if cached {
		vertex.Cached()
	}
	vertex.Complete(err)

	return output, err
}

type outcome struct {
	output string
	cached bool
}

func (c *Coordinator) compute(ctx context.Context, req *domain.Request, cacheEnabled bool) (string, bool, error) {
	if !cacheEnabled {
		output, err := c.transformer.Transform(ctx, req.Source, req.Options, req.Filename)
		return output, false, err
	}

	if req.Identity != "" {
		if output, ok := c.memo.Get(req.Identity); ok {
			return output, true, nil
		}
	}

	key, err := req.Key()
	if err != nil {
		return "", false, err
	}

	v, err, _ := c.inflight.Do(key.Filename(), func() (any, error) {
		output, cached, err := c.resolveAndCompute(ctx, req, key)
		return outcome{output: output, cached: cached}, err
	})
	if err != nil {
		return "", false, err
	}
	res, _ := v.(outcome)

	if req.Identity != "" {
		c.memo.Put(req.Identity, res.output)
	}

	return res.output, res.cached, nil
}

// resolveAndCompute walks the candidate directories until one serves or stores the entry.
func (c *Coordinator) resolveAndCompute(
	ctx context.Context,
	req *domain.Request,
	key domain.CacheKey,
) (string, bool, error) {
	dirs := Candidates(c.Directory(), c.locator.TempDir())

	var (
		result   string
		computed bool
		failures []error
	)

	for i, dir := range dirs {
		last := i == len(dirs)-1

		if output, ok := c.lookup(dir, key); ok {
			return output, true, nil
		}

		if err := c.store.Prepare(dir); err != nil {
			failures = append(failures, err)
			if last {
				return "", false, storageError(failures, dirs)
			}
			c.logger.Warn(fmt.Sprintf("cache directory %s is not usable, falling back to %s", dir, dirs[i+1]))
			continue
		}

		if !computed {
			output, err := c.transformer.Transform(ctx, req.Source, req.Options, req.Filename)
			if err != nil {
				return "", false, err
			}
			result, computed = output, true
		}

		if err := c.persist(dir, key, req.ToolVersion, result); err != nil {
			if last {
				c.logger.Warn("cache entry not persisted: " + err.Error())
				return result, false, nil
			}
			c.logger.Warn(fmt.Sprintf("cache entry not persisted in %s, falling back to %s", dir, dirs[i+1]))
			continue
		}

		return result, false, nil
	}

	return result, false, nil
}

// lookup reads an entry. Unreadable and undecodable entries are misses.
func (c *Coordinator) lookup(dir string, key domain.CacheKey) (string, bool) {
	data, ok := c.store.Get(dir, key)
	if !ok {
		return "", false
	}
	output, err := domain.DecodeEntry(key.Encoding, data)
	if err != nil {
		return "", false
	}
	return output, true
}

func (c *Coordinator) persist(dir string, key domain.CacheKey, version, output string) error {
	data, err := domain.EncodeEntry(key.Encoding, version, output)
	if err != nil {
		return err
	}
	return c.store.Put(dir, key, data)
}

func storageError(failures []error, dirs []string) error {
	cause := zerr.With(zerr.Wrap(errors.Join(failures...), "no usable cache directory"), "dirs", strings.Join(dirs, ", "))
	return errors.Join(domain.ErrStorageUnavailable, cause)
}

func vertexName(req *domain.Request) string {
	if req.Filename != "" {
		return "transform " + req.Filename
	}
	return "transform"
}
