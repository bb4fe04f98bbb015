package pixelcipher

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pixelcipher/core"
	"pixelcipher/imageio"
	"pixelcipher/pixel"
	"pixelcipher/transform"
)

func quietConfig() *core.Config {
	cfg := core.DefaultConfig()
	cfg.LogLevel = "error"
	return cfg
}

func newTestProcessor(t *testing.T, cfg *core.Config) *Processor {
	t.Helper()
	p, err := NewProcessor(cfg)
	if err != nil {
		t.Fatalf("NewProcessor: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func encodedSample(t *testing.T, w, h int) (*pixel.Buffer, []byte) {
	t.Helper()
	buf, err := pixel.FromBytes(sampleRGBA(w, h), w, h)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := imageio.EncodePNG(&out, buf); err != nil {
		t.Fatal(err)
	}
	return buf, out.Bytes()
}

func TestNewEngineFromConfig(t *testing.T) {
	cfg := quietConfig()
	cfg.HistoryCapacity = 2

	engine, logger, err := NewEngineFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewEngineFromConfig: %v", err)
	}
	defer logger.Sync()

	src, _ := encodedSample(t, 3, 3)
	for i := 0; i < 3; i++ {
		if _, err := engine.Encrypt(src, transform.AlgorithmXOR, "abcd", 1); err != nil {
			t.Fatal(err)
		}
	}

	recent := engine.Collector().Recent(10)
	if len(recent) != 2 {
		t.Errorf("history holds %d records, want capacity 2", len(recent))
	}
	if got := engine.Collector().Report().TotalOperations; got != 3 {
		t.Errorf("TotalOperations = %d, want 3", got)
	}
}

func TestNewEngineFromConfig_InvalidConfig(t *testing.T) {
	cfg := quietConfig()
	cfg.HistoryCapacity = 0

	_, _, err := NewEngineFromConfig(cfg)
	if code := core.GetErrorCode(err); code != core.ErrCodeInvalidValue {
		t.Errorf("error code = %q, want %q (%v)", code, core.ErrCodeInvalidValue, err)
	}
}

func TestNewEngineFromConfig_LogFile(t *testing.T) {
	cfg := quietConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "pixelcipher.log")

	_, logger, err := NewEngineFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewEngineFromConfig: %v", err)
	}
	if logger.LogFilePath() != cfg.LogFile {
		t.Errorf("LogFilePath() = %q, want %q", logger.LogFilePath(), cfg.LogFile)
	}
	if logger.Level().String() != "error" {
		t.Errorf("Level() = %v, want error", logger.Level())
	}
}

func TestProcessor_ProcessRoundTrip(t *testing.T) {
	p := newTestProcessor(t, quietConfig())
	p.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	orig, input := encodedSample(t, 6, 4)

	for _, alg := range transform.Algorithms() {
		t.Run(string(alg), func(t *testing.T) {
			params := transform.Params{Algorithm: alg, Operation: transform.OperationEncrypt, Key: "abcd", Strength: 2}

			var encrypted bytes.Buffer
			res, err := p.Process(bytes.NewReader(input), int64(len(input)), &encrypted, params)
			if err != nil {
				t.Fatalf("encrypt: %v", err)
			}
			if res.Format != imageio.FormatPNG || res.Width != 6 || res.Height != 4 {
				t.Errorf("Result = %+v", res)
			}
			wantName := "encrypt-" + string(alg) + "-2024-01-02T03-04-05.png"
			if res.Filename != wantName {
				t.Errorf("Filename = %q, want %q", res.Filename, wantName)
			}

			params.Operation = transform.OperationDecrypt
			var decrypted bytes.Buffer
			if _, err := p.Process(&encrypted, -1, &decrypted, params); err != nil {
				t.Fatalf("decrypt: %v", err)
			}

			got, _, err := imageio.Decode(&decrypted, -1)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(orig) {
				t.Error("decrypted image differs from original")
			}
		})
	}

	report := p.Report()
	if want := int64(2 * len(transform.Algorithms())); report.TotalOperations != want {
		t.Errorf("TotalOperations = %d, want %d", report.TotalOperations, want)
	}

	var out bytes.Buffer
	p.PrintReport(&out)
	if !strings.Contains(out.String(), "Total operations: 10") {
		t.Errorf("PrintReport() output missing total:\n%s", out.String())
	}
}

func TestProcessor_ProcessErrors(t *testing.T) {
	cfg := quietConfig()
	cfg.MaxImageBytes = 32
	p := newTestProcessor(t, cfg)

	_, input := encodedSample(t, 8, 8)
	valid := p.Params("abcd")

	tests := []struct {
		name    string
		data    []byte
		params  transform.Params
		wantErr error
	}{
		{"short key", input, p.Params("ab"), transform.ErrInvalidKey},
		{"too large", input, valid, imageio.ErrImageTooLarge},
		{"not an image", []byte("plain text"), valid, imageio.ErrUnsupportedFormat},
		{"empty", nil, valid, imageio.ErrEmptyImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := p.Process(bytes.NewReader(tt.data), -1, &out, tt.params)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Process() error = %v, want %v", err, tt.wantErr)
			}
			if out.Len() != 0 {
				t.Errorf("Process() wrote %d bytes on error", out.Len())
			}
		})
	}
}

func TestProcessor_Preview(t *testing.T) {
	cfg := quietConfig()
	cfg.DisplayMaxSize = 10
	p := newTestProcessor(t, cfg)

	buf, err := pixel.New(40, 20)
	if err != nil {
		t.Fatal(err)
	}
	preview, err := p.Preview(buf)
	if err != nil {
		t.Fatal(err)
	}
	if preview.Width != 10 || preview.Height != 5 {
		t.Errorf("Preview() = %dx%d, want 10x5", preview.Width, preview.Height)
	}
}

func TestProcessor_Params(t *testing.T) {
	cfg := quietConfig()
	cfg.DefaultAlgorithm = transform.AlgorithmShuffle
	cfg.DefaultStrength = 5
	p := newTestProcessor(t, cfg)

	got := p.Params("abcd")
	if got.Algorithm != transform.AlgorithmShuffle || got.Strength != 5 || got.Key != "abcd" {
		t.Errorf("Params() = %+v", got)
	}
}
