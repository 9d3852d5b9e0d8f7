package main

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/arloliu/restream/compress"
	"github.com/arloliu/restream/encoding"
	"github.com/arloliu/restream/endian"
	"github.com/arloliu/restream/format"
	"github.com/arloliu/restream/internal/hash"
)

const (
	modeSlow     = "slow"
	modeFast     = "fast"
	modeParallel = "parallel"
)

// runBenchmark encodes input cfg.Iterations times in the requested mode and
// prints the results to w.
//
// An unknown mode prints a diagnostic and returns a nil report without doing
// any timed work. A fast run on a host without an accelerated packer is
// reported as unavailable with zero compressed bytes.
func runBenchmark(w io.Writer, cfg Config, inputName, mode string, input []byte) (*Report, error) {
	var (
		strategy format.StrategyType
		parallel bool
		banner   string
	)
	switch mode {
	case modeSlow:
		strategy, banner = format.StrategyScalar, "SLOW"
	case modeFast:
		strategy, banner = format.StrategySWAR, "FAST"
	case modeParallel:
		strategy, banner, parallel = format.StrategyAuto, "PARALLEL", true
	default:
		fmt.Fprintf(w, "unknown mode %q (want %s, %s or %s)\n", mode, modeSlow, modeFast, modeParallel)
		return nil, nil
	}

	tail, _ := format.ParseTailPolicy(cfg.TailPolicy)
	opts := []encoding.EncoderOption{
		encoding.WithStrategy(strategy),
		encoding.WithTailPolicy(tail),
	}
	if cfg.Workers > 0 {
		opts = append(opts, encoding.WithWorkers(cfg.Workers))
	}

	report := &Report{
		RunID:         uuid.NewString(),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Input:         inputName,
		Mode:          mode,
		Iterations:    cfg.Iterations,
		OriginalBytes: len(input),
		SecondStage:   cfg.SecondStage,
		Host:          encoding.Host().String(),
	}

	enc, err := encoding.NewEncoder(opts...)
	if err != nil {
		if errors.Is(err, encoding.ErrStrategyUnavailable) || errors.Is(err, encoding.ErrUnknownStrategy) {
			fmt.Fprintf(w, "%s (unavailable)\n", banner)
			report.Strategy = strategy.String()
			report.Status = statusUnavailable
			printReport(w, report)

			return report, nil
		}

		return nil, err
	}

	fmt.Fprintln(w, banner)
	report.Strategy = enc.Strategy().String()
	report.Status = statusOK

	encode := enc.Encode
	if parallel {
		encode = enc.EncodeParallel
	}

	compressed := make([]byte, 0, encoding.MaxEncodedLen(len(input)))
	start := time.Now()
	for range cfg.Iterations {
		compressed, err = encode(compressed[:0], input)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", inputName, err)
		}
	}
	elapsed := time.Since(start)

	report.Seconds = elapsed.Seconds()
	if report.Seconds > 0 {
		report.FPS = float64(cfg.Iterations) / report.Seconds
	}
	report.CompressedBytes = len(compressed)
	report.Ratio = ratio(len(input), len(compressed))
	report.Digest = formatDigest(hash.Digest(compressed))

	if stats, err := enc.Analyze(input); err == nil {
		report.EscapeUnits = stats.EscapeUnits
	}

	if err := applySecondStage(report, compressed); err != nil {
		return nil, err
	}

	printReport(w, report)

	return report, nil
}

func applySecondStage(report *Report, encoded []byte) error {
	ct, err := format.ParseCompression(report.SecondStage)
	if err != nil {
		return err
	}
	if ct == format.CompressionNone {
		return nil
	}

	_, stats, err := compress.Measure(ct, encoded)
	if err != nil {
		return err
	}
	report.SecondStageBytes = int(stats.CompressedSize)
	report.SecondStageRatio = ratio(report.OriginalBytes, report.SecondStageBytes)

	return nil
}

// ratio returns original/compressed, or 0 when there is no compressed output.
func ratio(original, compressed int) float64 {
	if compressed == 0 {
		return 0
	}

	return float64(original) / float64(compressed)
}

func formatDigest(d uint64) string {
	return fmt.Sprintf("%016x", d)
}

func formatRatio(r float64) string {
	if r == 0 {
		return "n/a"
	}

	return fmt.Sprintf("%.3f", r)
}

func printReport(w io.Writer, r *Report) {
	fmt.Fprintf(w, "strategy:   %s (%s, %s-endian, %s)\n", r.Strategy, r.Host, endian.NativeName(), runtime.Version())
	fmt.Fprintf(w, "time:       %.3f secs\n", r.Seconds)
	fmt.Fprintf(w, "bw:         %.3f fps\n", r.FPS)
	fmt.Fprintf(w, "original:   %d bytes\n", r.OriginalBytes)
	fmt.Fprintf(w, "compressed: %d bytes\n", r.CompressedBytes)
	fmt.Fprintf(w, "ratio:      %s\n", formatRatio(r.Ratio))
	if r.Status != statusOK {
		return
	}
	fmt.Fprintf(w, "escapes:    %d units\n", r.EscapeUnits)
	fmt.Fprintf(w, "digest:     %s\n", r.Digest)
	if r.SecondStageBytes > 0 {
		fmt.Fprintf(w, "%-11s %d bytes (ratio %s)\n", r.SecondStage+":", r.SecondStageBytes, formatRatio(r.SecondStageRatio))
	}
}
