// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pseq

import (
	"io"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/caarlos0/env/v9"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config holds the process-wide tuning of pseq.
type Config struct {
	// ChunkSize is the chunk size target of Chunked sequences created
	// without an explicit size.
	ChunkSize int `yaml:"chunk_size" env:"PSEQ_CHUNK_SIZE"`

	// Workers is the number of worker pool goroutines, and the limit of
	// concurrent chunk evaluation. Read once, when the pool starts.
	Workers int `yaml:"workers" env:"PSEQ_WORKERS"`

	// ParallelThreshold is the smallest window a parallel Buffer fans out.
	ParallelThreshold int `yaml:"parallel_threshold" env:"PSEQ_PARALLEL_THRESHOLD"`

	// QueueCapacity is the capacity of the worker pool task queue,
	// rounded up to a power of two. Read once, when the pool starts.
	QueueCapacity int `yaml:"queue_capacity" env:"PSEQ_QUEUE_CAPACITY"`

	// Growth is the policy of Buffers created without an explicit one.
	Growth Growth `yaml:"growth" envPrefix:"PSEQ_GROWTH_"`
}

// DefaultConfig returns the configuration used until [Configure] is called.
func DefaultConfig() Config {
	return Config{
		ChunkSize:         DefaultChunkSize,
		Workers:           runtime.GOMAXPROCS(0),
		ParallelThreshold: 1024,
		QueueCapacity:     1024,
		Growth:            DefaultGrowth,
	}
}

// Validate reports ErrInvalidArgument for unusable settings.
func (c *Config) Validate() error {
	switch {
	case c.ChunkSize < 1:
		return invalidArgument("chunk size %d", c.ChunkSize)
	case c.Workers < 1:
		return invalidArgument("workers %d", c.Workers)
	case c.ParallelThreshold < 1:
		return invalidArgument("parallel threshold %d", c.ParallelThreshold)
	case c.QueueCapacity < 2:
		return invalidArgument("queue capacity %d", c.QueueCapacity)
	case c.ChunkSize > c.Growth.Limit:
		return invalidArgument("chunk size %d exceeds growth limit %d", c.ChunkSize, c.Growth.Limit)
	}
	return c.Growth.Validate()
}

// Options returns the constructor options matching c.
func (c *Config) Options() []Option {
	return []Option{WithGrowth(c.Growth)}
}

// LoadConfig overrides configuration in the following order (from less to most priority)
// 1 - DefaultConfig
// 2 - Contents of the provided YAML reader (nillable)
// 3 - Environment variables
func LoadConfig(file io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if file != nil {
		cfgBuf, err := io.ReadAll(file)
		if err != nil {
			return nil, errors.Wrap(err, "reading config")
		}
		if err := yaml.Unmarshal(cfgBuf, &cfg); err != nil {
			return nil, errors.Wrap(err, "parsing config YAML")
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "reading env vars")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var config atomic.Pointer[Config]

// Configure installs cfg process-wide. Existing sequences keep the growth
// policy they were built with.
func Configure(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c := *cfg
	config.Store(&c)
	logger().Info("configured",
		zap.Int("chunk_size", c.ChunkSize),
		zap.Int("workers", c.Workers),
		zap.Int("parallel_threshold", c.ParallelThreshold),
		zap.Int("growth_limit", c.Growth.Limit),
	)
	return nil
}

var defaultConfig = sync.OnceValue(func() *Config {
	c := DefaultConfig()
	return &c
})

// CurrentConfig returns a copy of the configuration in effect.
func CurrentConfig() Config {
	return *currentConfig()
}

func currentConfig() *Config {
	if c := config.Load(); c != nil {
		return c
	}
	return defaultConfig()
}

// defaultGrowth is the growth policy of the current configuration.
func defaultGrowth() *Growth {
	return &currentConfig().Growth
}
