package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"supocr/internal/config"
	"supocr/internal/engine"
	"supocr/internal/logging"
	"supocr/internal/manifest"
	"supocr/internal/ocr"
	"supocr/internal/services"
)

// engineOpener overrides the Tesseract engine; nil uses the real one.
var engineOpener ocr.EngineOpener

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var tessdata string
	var lang string
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "convert <manifest.toml>",
		Short: "Recognize the subtitle bitmaps of a manifest and write an SRT file",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("provide the path to an event manifest. Example: supocr convert movie/events.toml -o movie.srt\nRun supocr convert --help for more details")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			engineCfg, err := resolveEngineConfig(cfg, tessdata, lang)
			if err != nil {
				return err
			}

			source := strings.TrimSpace(args[0])
			dest := strings.TrimSpace(outputPath)
			if dest == "" {
				dest = defaultOutputPath(source)
			}

			logger, logPath, err := logging.NewFromConfig(cfg)
			if err != nil {
				return services.Wrap(services.ErrConfiguration, "config", "logging", "", err)
			}
			logging.CleanupOldLogs(logger, cfg.Logging.RetentionDays, cfg.Logging.Dir, logging.LogFilePattern, logPath)
			logger = logging.NewComponentLogger(logger, "cli-convert")

			records, err := manifest.Load(source)
			if err != nil {
				logging.ErrorWithContext(logger, "manifest unreadable", "manifest_invalid",
					logging.String("manifest", source),
					logging.Error(err),
					logging.String(logging.FieldErrorHint, "check the manifest syntax and that every image exists"),
				)
				return err
			}

			opts := []ocr.Option{
				ocr.WithLogger(logger),
				ocr.WithOutputLock(cfg.Output.LockOutputs, ""),
				ocr.WithEngineOpener(engineOpener),
			}
			var bar *itemProgress
			if !noProgress && len(records) > 0 && isTerminal(os.Stderr) {
				bar = newItemProgress(os.Stderr, len(records), "OCR")
				opts = append(opts, ocr.WithItemObserver(bar.observe))
			}

			pipeline := ocr.New(engineCfg, opts...)
			err = pipeline.ToSRT(cmd.Context(), records, dest)
			if bar != nil {
				bar.finish()
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d subtitles to %s\n", len(records), dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination SRT file (default: manifest name with .srt)")
	cmd.Flags().StringVar(&tessdata, "tessdata", "", "Directory holding .traineddata models (overrides tesseract.data_path)")
	cmd.Flags().StringVar(&lang, "lang", "", "Tesseract language, e.g. eng or eng+deu (overrides tesseract.language)")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the interactive progress bar")
	return cmd
}

// resolveEngineConfig applies flag overrides on top of the loaded config.
func resolveEngineConfig(cfg *config.Config, tessdata, lang string) (engine.Config, error) {
	out := engine.Config{
		DataPath: cfg.Tesseract.DataPath,
		Language: cfg.Tesseract.Language,
	}
	if value := strings.TrimSpace(tessdata); value != "" {
		expanded, err := config.ExpandPath(value)
		if err != nil {
			return engine.Config{}, services.Wrap(services.ErrConfiguration, "config", "--tessdata", value, err)
		}
		out.DataPath = expanded
	}
	if value := strings.TrimSpace(lang); value != "" {
		if err := config.ValidateLanguage(value); err != nil {
			return engine.Config{}, services.Wrap(services.ErrConfiguration, "config", "--lang", "", err)
		}
		out.Language = value
	}
	return out, nil
}

func defaultOutputPath(manifestPath string) string {
	dir := filepath.Dir(manifestPath)
	base := strings.TrimSuffix(filepath.Base(manifestPath), filepath.Ext(manifestPath))
	if base == "" || base == "." {
		base = "subtitles"
	}
	return filepath.Join(dir, base+".srt")
}
