package pixelcipher

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pixelcipher/analyzer"
	"pixelcipher/core"
	"pixelcipher/format"
	"pixelcipher/imageio"
	"pixelcipher/logging"
	"pixelcipher/metrics"
	"pixelcipher/pixel"
	"pixelcipher/transform"
)

// NewEngineFromConfig builds a logger, a metrics store and an engine from cfg.
// A nil cfg uses core.DefaultConfig. Extra options are applied after the
// config-derived ones, so they win. The caller owns the returned logger
// and should Sync it before exit.
func NewEngineFromConfig(cfg *core.Config, opts ...transform.EngineOption) (*transform.Engine, *logging.Logger, error) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	if err := core.ValidateConfig(cfg); err != nil {
		return nil, nil, err
	}

	logger, err := newLoggerFromConfig(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store := metrics.NewStore(metrics.StoreConfig{HistoryCapacity: cfg.HistoryCapacity})
	base := []transform.EngineOption{
		transform.WithLogger(logger.Named("transform")),
		transform.WithCollector(store),
		transform.WithProgressInterval(cfg.ProgressInterval),
	}
	return transform.NewEngine(append(base, opts...)...), logger, nil
}

// newLoggerFromConfig logs to stderr only when no log file is configured,
// otherwise to the console and a rotating file.
func newLoggerFromConfig(cfg *core.Config) (*logging.Logger, error) {
	level := logging.ParseLogLevelString(cfg.LogLevel, zapcore.InfoLevel)
	if cfg.LogFile == "" {
		return logging.NewLoggerWithWriter(zapcore.Lock(os.Stderr), level), nil
	}

	logger, err := logging.NewLogger(cfg.DevMode, cfg.LogFile)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)
	return logger, nil
}

// Result describes one processed image.
type Result struct {
	Format     imageio.Format
	Width      int
	Height     int
	Filename   string // suggested export name
	Difference analyzer.DifferenceReport
}

// Processor runs decode, transform and PNG export for whole images.
// It is safe for concurrent use.
type Processor struct {
	cfg     *core.Config
	engine  *transform.Engine
	decoder *imageio.Decoder
	logger  *logging.Logger
	now     func() time.Time
}

// NewProcessor creates a Processor from cfg (nil for defaults).
func NewProcessor(cfg *core.Config, opts ...transform.EngineOption) (*Processor, error) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	engine, logger, err := NewEngineFromConfig(cfg, opts...)
	if err != nil {
		return nil, err
	}

	logger.Debug("processor ready",
		zap.String("version", Version),
		zap.String("default_algorithm", string(cfg.DefaultAlgorithm)),
		zap.Int("history_capacity", cfg.HistoryCapacity),
		zap.String("max_image_size", format.FileSize(cfg.MaxImageBytes)),
	)

	return &Processor{
		cfg:     cfg,
		engine:  engine,
		decoder: imageio.NewDecoder(cfg.MaxImageBytes),
		logger:  logger,
		now:     time.Now,
	}, nil
}

// Engine returns the underlying transform engine.
func (p *Processor) Engine() *transform.Engine {
	return p.engine
}

// Logger returns the processor's logger.
func (p *Processor) Logger() *logging.Logger {
	return p.logger
}

// Params returns the configured default parameters with key filled in.
func (p *Processor) Params(key string) transform.Params {
	return p.cfg.Params(key)
}

// Decode reads an image of at most the configured size.
func (p *Processor) Decode(r io.Reader, size int64) (*pixel.Buffer, imageio.Format, error) {
	return p.decoder.Decode(r, size)
}

// Preview returns a copy of buf scaled to fit the configured display size.
func (p *Processor) Preview(buf *pixel.Buffer) (*pixel.Buffer, error) {
	return imageio.Fit(buf, p.cfg.DisplayMaxSize)
}

// Process decodes an image from r, transforms it with params and writes the
// result to w as PNG. size is the reported input length, or -1 if unknown.
func (p *Processor) Process(r io.Reader, size int64, w io.Writer, params transform.Params) (Result, error) {
	params, err := params.Normalize()
	if err != nil {
		return Result{}, err
	}

	src, imgFormat, err := p.decoder.Decode(r, size)
	if err != nil {
		p.logger.Warn("decode failed", zap.Error(err))
		return Result{}, err
	}

	out, err := p.engine.Transform(src, params)
	if err != nil {
		return Result{}, err
	}

	diff, err := analyzer.Compare(src, out)
	if err != nil {
		return Result{}, err
	}

	if err := imageio.EncodePNG(w, out); err != nil {
		return Result{}, err
	}

	res := Result{
		Format:     imgFormat,
		Width:      out.Width,
		Height:     out.Height,
		Filename:   imageio.ExportFilename(string(params.Operation), string(params.Algorithm), p.now()),
		Difference: diff,
	}
	p.logger.Info("image processed",
		zap.String("format", string(imgFormat)),
		zap.String("algorithm", string(params.Algorithm)),
		zap.String("operation", string(params.Operation)),
		zap.Int("width", res.Width),
		zap.Int("height", res.Height),
		zap.String("changed", diff.ChangePercentage),
	)
	return res, nil
}

// Report returns the performance summary of runs so far.
func (p *Processor) Report() metrics.Report {
	return p.engine.Collector().Report()
}

// PrintReport writes the performance summary to w.
func (p *Processor) PrintReport(w io.Writer) {
	p.Report().Print(w)
}

// Close flushes the logger.
func (p *Processor) Close() error {
	return p.logger.Sync()
}
