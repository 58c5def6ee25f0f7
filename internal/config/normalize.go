package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeTesseract(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeTesseract() error {
	c.Tesseract.DataPath = strings.TrimSpace(c.Tesseract.DataPath)
	if c.Tesseract.DataPath == "" {
		if value, ok := os.LookupEnv("TESSDATA_PREFIX"); ok {
			c.Tesseract.DataPath = strings.TrimSpace(value)
		}
	}
	if c.Tesseract.DataPath == "" {
		c.Tesseract.DataPath = probeTessdataDir(defaultTessdataDirs)
	}
	var err error
	if c.Tesseract.DataPath, err = expandPath(c.Tesseract.DataPath); err != nil {
		return fmt.Errorf("tesseract.data_path: %w", err)
	}

	c.Tesseract.Language = strings.TrimSpace(c.Tesseract.Language)
	if c.Tesseract.Language == "" {
		c.Tesseract.Language = defaultTesseractLanguage
	}
	return nil
}

func probeTessdataDir(candidates []string) string {
	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return ""
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.log_dir: %w", err)
	}
	return nil
}
