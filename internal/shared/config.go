package shared

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		Driver string `yaml:"driver"` // "sqlite" (default)
		DSN    string `yaml:"dsn"`    // "./pyreview.db"
	} `yaml:"database"`

	Analysis struct {
		MinPriority   string   `yaml:"min_priority"`   // LOW|MEDIUM|HIGH
		MaxComplexity int      `yaml:"max_complexity"` // complexity threshold
		MaxFuncLines  int      `yaml:"max_func_lines"` // size threshold
		MergeIssues   bool     `yaml:"merge_issues"`   // collapse duplicate findings
		DisabledRules []string `yaml:"disabled_rules"`
	} `yaml:"analysis"`

	Reporting struct {
		OutDir string `yaml:"out_dir"` // "./reports"
	} `yaml:"reporting"`

	Logging struct {
		Format string `yaml:"format"` // "json"|"text"
		Level  string `yaml:"level"`  // "info"|"debug"|"warn"|"error"
	} `yaml:"logging"`
}

func DefaultConfig() Config {
	var c Config
	c.Database.Driver = "sqlite"
	c.Database.DSN = "./pyreview.db"
	c.Analysis.MinPriority = "LOW"
	c.Analysis.MaxComplexity = 10
	c.Analysis.MaxFuncLines = 50
	c.Reporting.OutDir = "./reports"
	c.Logging.Format = "json"
	c.Logging.Level = "info"
	return c
}

func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path != "" {
		if b, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(b, &c)
		}
	}
	// Env overrides (simple, explicit)
	if v := os.Getenv("PYREVIEW_DB_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("PYREVIEW_MIN_PRIORITY"); v != "" {
		c.Analysis.MinPriority = v
	}
	if v := os.Getenv("PYREVIEW_MAX_COMPLEXITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Analysis.MaxComplexity = n
		}
	}
	if v := os.Getenv("PYREVIEW_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("PYREVIEW_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PYREVIEW_OUT_DIR"); v != "" {
		c.Reporting.OutDir = v
	}
	return c, nil
}
