package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// ProviderConfig configures the PDF text provider.
type ProviderConfig struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Timeout   time.Duration
}

// Provider turns a source PDF into a Corpus by shelling out to pdftotext.
// Scanned documents are out of scope: there is no OCR fallback, a PDF with no
// text layer simply yields empty pages.
type Provider struct {
	cfg    ProviderConfig
	runner Runner
	logger *slog.Logger
}

func NewProvider(cfg ProviderConfig, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	return &Provider{cfg: cfg, runner: execRunner{}, logger: logger}
}

// WithRunner replaces the command runner; tests stub it.
func (p *Provider) WithRunner(r Runner) *Provider {
	p.runner = r
	return p
}

// FromPDF extracts per-page text from the PDF at path.
func (p *Provider) FromPDF(ctx context.Context, path string) (*Corpus, error) {
	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := p.runner.Run(ctx, p.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return nil, fmt.Errorf("pdftotext %q: %w (stderr: %s)", path, err, truncate(string(errb), 1<<10))
	}

	// A form-feed \f is used as page separator by default.
	raw := strings.Split(string(out), "\f")
	pages := make(map[int]string, len(raw))
	for i, text := range raw {
		pages[i+1] = text
	}
	// pdftotext emits a trailing \f after the last page; drop the empty tail.
	if len(raw) > 1 && strings.TrimSpace(raw[len(raw)-1]) == "" {
		delete(pages, len(raw))
	}

	c := FromPages(pages)
	p.logger.Debug("corpus built",
		"path", path,
		"pages", c.PageCount(),
		"bytes", len(out),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return c, nil
}
