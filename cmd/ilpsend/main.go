// Command ilpsend reads newline-delimited JSON records and sends them to a
// line-protocol ingestion endpoint over TCP.
//
// Usage:
//
//	ilpsend -config ilpsend.toml -input records.ndjson.gz
//
// The input file may be gzip, zstd, s2 or lz4 compressed; the codec is
// picked from the file extension. With no -input (or "-") records are read
// uncompressed from stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/arloliu/lineproto/input"
	"github.com/arloliu/lineproto/sender"
)

const (
	scanBufferInit = 64 * 1024
	scanBufferMax  = 16 * 1024 * 1024
)

func main() {
	configPath := flag.String("config", "ilpsend.toml", "path to the TOML config file")
	inputPath := flag.String("input", "-", "NDJSON records file, optionally compressed; \"-\" means stdin")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(cfg, *inputPath, logger); err != nil {
		logger.Error().Err(err).Msg("ingestion failed")
		os.Exit(1)
	}
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log_level %q: %w", level, err)
	}

	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	return input.Open(path)
}

func run(cfg appConfig, inputPath string, logger zerolog.Logger) error {
	in, err := openInput(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	opts := make([]sender.Option, 0, 2)
	if cfg.NetInterface != "" {
		opts = append(opts, sender.WithNetInterface(cfg.NetInterface))
	}
	if cfg.InitBufferSize > 0 {
		opts = append(opts, sender.WithInitBufferSize(cfg.InitBufferSize))
	}

	s, err := sender.Connect(cfg.Host, cfg.Port, opts...)
	if err != nil {
		return err
	}
	defer s.Close()

	logger.Info().
		Str("host", cfg.Host).
		Str("port", cfg.Port).
		Str("input", inputPath).
		Msg("connected")

	var sent, skipped, pending int
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, scanBufferInit), scanBufferMax)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		if err := sendRecord(s, line); err != nil {
			if s.MustClose() {
				return fmt.Errorf("sender poisoned at record %d: %w", sent+skipped+1, err)
			}
			skipped++
			logger.Warn().Err(err).Int("record", sent+skipped).Msg("skipping record")

			continue
		}
		sent++
		pending++

		if pending >= cfg.FlushEvery {
			if err := s.Flush(); err != nil {
				return err
			}
			logger.Debug().Int("rows", pending).Msg("flushed")
			pending = 0
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if pending > 0 {
		if err := s.Flush(); err != nil {
			return err
		}
	}

	logger.Info().Int("sent", sent).Int("skipped", skipped).Msg("done")

	return nil
}
