package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/codewithboateng/pyreview/internal/analyzer"
	"github.com/codewithboateng/pyreview/internal/api"
	"github.com/codewithboateng/pyreview/internal/issue"
	"github.com/codewithboateng/pyreview/internal/reporting"
	"github.com/codewithboateng/pyreview/internal/rules"
	"github.com/codewithboateng/pyreview/internal/rulesdsl"
	"github.com/codewithboateng/pyreview/internal/security"
	"github.com/codewithboateng/pyreview/internal/shared"
	"github.com/codewithboateng/pyreview/internal/storage"
	"github.com/codewithboateng/pyreview/internal/summary"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "analyze":
		analyzeCmd(os.Args[2:])
	case "report":
		reportCmd(os.Args[2:])
	case "diff":
		diffCmd(os.Args[2:])
	case "serve":
		serveCmd(os.Args[2:])
	case "user-add":
		userAddCmd(os.Args[2:])
	case "version", "--version":
		fmt.Println("pyreview", issue.Version)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `pyreview - Python static code reviewer

Usage:
  pyreview analyze <file.py> [--out review_report.csv] [--json-output out.json] [--log out.log] [--html out.html]
                   [--min-priority LOW] [--fail-on HIGH] [--max-lines N] [--merge-issues]
                   [--rules-pack pack.yaml] [--db ./pyreview.db] [--no-db] [--config ./pyreview.yaml]
  pyreview report  --run <run-id> [--out <reports-dir>] [--db ./pyreview.db] [--config ./pyreview.yaml]
  pyreview diff    --base <run-id> --head <run-id> [--out <reports-dir>] [--db ./pyreview.db]
  pyreview serve   [--addr :8080] [--db ./pyreview.db] [--config ./pyreview.yaml]
  pyreview user-add --username <name> --password <pw> [--role viewer] [--db ./pyreview.db]
  pyreview version
`)
}

func analyzeCmd(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config (optional)")
	outPath := fs.String("out", "review_report.csv", "CSV report path")
	jsonPath := fs.String("json-output", "", "JSON report path (optional)")
	logPath := fs.String("log", "", "Text summary path (optional)")
	htmlPath := fs.String("html", "", "HTML report path (optional)")
	minPriority := fs.String("min-priority", "", "Minimum priority to report (LOW|MEDIUM|HIGH)")
	failOn := fs.String("fail-on", "", "Exit nonzero when issues at or above this priority exist")
	maxLines := fs.Int("max-lines", 0, "Cap impacted-line lists at N entries (0 = unlimited)")
	mergeIssues := fs.Bool("merge-issues", false, "Merge duplicate issues per file/category")
	rulesPack := fs.String("rules-pack", "", "Extra YAML rules pack (optional)")
	dbPath := fs.String("db", "", "SQLite database path")
	noDB := fs.Bool("no-db", false, "Skip saving the run to the database")
	_ = fs.Parse(args)

	target := fs.Arg(0)
	if target == "" {
		fmt.Fprintln(os.Stderr, "analyze: a Python file argument is required")
		os.Exit(2)
	}
	st, err := os.Stat(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze: cannot read %s: %v\n", target, err)
		os.Exit(2)
	}
	if st.IsDir() {
		fmt.Fprintf(os.Stderr, "analyze: %s is a directory, expected a .py file\n", target)
		os.Exit(2)
	}
	if !strings.HasSuffix(target, ".py") {
		fmt.Fprintf(os.Stderr, "analyze: %s is not a .py file\n", target)
		os.Exit(2)
	}

	cfg, _ := shared.LoadConfig(*configPath)
	shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)
	if *dbPath == "" {
		*dbPath = cfg.Database.DSN
	}

	s := settingsFrom(cfg)
	if *minPriority != "" {
		s.MinPriority = strings.ToUpper(*minPriority)
	}
	switch s.MinPriority {
	case issue.Low, issue.Medium, issue.High:
	default:
		fmt.Fprintf(os.Stderr, "analyze: bad --min-priority %q (use LOW, MEDIUM or HIGH)\n", *minPriority)
		os.Exit(2)
	}
	if *failOn != "" {
		switch strings.ToUpper(*failOn) {
		case issue.Low, issue.Medium, issue.High:
		default:
			fmt.Fprintf(os.Stderr, "analyze: bad --fail-on %q (use LOW, MEDIUM or HIGH)\n", *failOn)
			os.Exit(2)
		}
	}

	var extra []rules.Rule
	if *rulesPack != "" {
		extra, err = rulesdsl.LoadRules(*rulesPack)
		if err != nil {
			fmt.Fprintln(os.Stderr, "analyze: rules pack:", err)
			os.Exit(2)
		}
	}

	found := analyzer.RunOnFileWith(target, s, *maxLines, extra)
	items := analyzer.Pair(target, found)
	merge := *mergeIssues || cfg.Analysis.MergeIssues
	if merge {
		items = issue.Merge(items)
	}
	issue.Sort(items)

	run := issue.Run{
		ID:          fmt.Sprintf("run-%d", time.Now().Unix()),
		StartedAt:   time.Now().UTC(),
		Source:      target,
		ToolVersion: issue.Version,
		MinPriority: s.MinPriority,
		Merged:      merge,
		Issues:      items,
	}

	if !*noDB {
		db, err := storage.OpenSQLite(*dbPath)
		if err != nil {
			slog.Error("db open error", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.CreateSchema(); err != nil {
			slog.Error("db schema error", "err", err)
			os.Exit(1)
		}
		sups, err := db.ListSuppressions(true)
		if err == nil && len(sups) > 0 {
			var dropped int
			items, dropped = rules.ApplySuppressions(items, sups)
			run.Issues = items
			if dropped > 0 {
				slog.Info("suppressions applied", "dropped", dropped)
			}
		}
		if err := db.SaveRun(&run); err != nil {
			slog.Error("db save run error", "err", err)
			os.Exit(1)
		}
	}

	if err := reporting.WriteCSV(*outPath, items); err != nil {
		slog.Error("csv write error", "err", err)
		os.Exit(1)
	}
	if *jsonPath != "" {
		if err := reporting.WriteJSON(*jsonPath, items); err != nil {
			slog.Error("json write error", "err", err)
			os.Exit(1)
		}
	}
	if *logPath != "" {
		if err := reporting.WriteTextLog(*logPath, target, items); err != nil {
			slog.Error("log write error", "err", err)
			os.Exit(1)
		}
	}
	if *htmlPath != "" {
		if err := reporting.WriteHTML(*htmlPath, target, items); err != nil {
			slog.Error("html write error", "err", err)
			os.Exit(1)
		}
	}

	sum := summary.Build(items)
	slog.Info("analyze complete",
		"run", run.ID,
		"file", target,
		"issues", sum.Total,
		"score", sum.Score,
		"csv", filepath.Clean(*outPath),
	)
	fmt.Printf("Wrote %d issue(s) to %s\n", sum.Total, filepath.Clean(*outPath))

	if *failOn != "" {
		threshold := issue.Rank(strings.ToUpper(*failOn))
		for _, it := range items {
			if issue.Rank(it.Priority) >= threshold {
				fmt.Fprintf(os.Stderr, "fail-on: found %s-or-above issues\n", strings.ToUpper(*failOn))
				os.Exit(2)
			}
		}
	}
}

func settingsFrom(cfg shared.Config) rules.Settings {
	s := rules.DefaultSettings()
	if cfg.Analysis.MinPriority != "" {
		s.MinPriority = strings.ToUpper(cfg.Analysis.MinPriority)
	}
	if cfg.Analysis.MaxComplexity > 0 {
		s.MaxComplexity = cfg.Analysis.MaxComplexity
	}
	if cfg.Analysis.MaxFuncLines > 0 {
		s.MaxFuncLines = cfg.Analysis.MaxFuncLines
	}
	for _, name := range cfg.Analysis.DisabledRules {
		s.Disabled[name] = true
	}
	return s
}

func reportCmd(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config (optional)")
	runID := fs.String("run", "", "Run ID")
	outDir := fs.String("out", "", "Output directory")
	dbPath := fs.String("db", "", "SQLite database path")
	_ = fs.Parse(args)

	cfg, _ := shared.LoadConfig(*configPath)
	shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	if *outDir == "" {
		*outDir = cfg.Reporting.OutDir
	}
	if *dbPath == "" {
		*dbPath = cfg.Database.DSN
	}
	if *runID == "" {
		fmt.Fprintln(os.Stderr, "report: --run is required")
		os.Exit(2)
	}

	db, err := storage.OpenSQLite(*dbPath)
	if err != nil {
		slog.Error("db open error", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	run, err := db.LoadRun(*runID)
	if err != nil {
		slog.Error("load run error", "err", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		slog.Error("cannot create out dir", "err", err)
		os.Exit(1)
	}
	jsonPath, _ := reporting.WriteRunJSON(run.ID, *outDir, &run)
	htmlPath := filepath.Join(*outDir, run.ID+".html")
	_ = reporting.WriteHTML(htmlPath, run.Source, run.Issues)
	logPath := filepath.Join(*outDir, run.ID+".log")
	_ = reporting.WriteTextLog(logPath, run.Source, run.Issues)
	fmt.Printf("Report OK\n  Run: %s\n  JSON: %s\n  HTML: %s\n  Log: %s\n", run.ID, jsonPath, htmlPath, logPath)
}

func diffCmd(args []string) {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config (optional)")
	base := fs.String("base", "", "Base run ID")
	head := fs.String("head", "", "Head run ID")
	outDir := fs.String("out", "", "Output directory")
	dbPath := fs.String("db", "", "SQLite database path")
	_ = fs.Parse(args)

	cfg, _ := shared.LoadConfig(*configPath)
	shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	if *outDir == "" {
		*outDir = cfg.Reporting.OutDir
	}
	if *dbPath == "" {
		*dbPath = cfg.Database.DSN
	}
	if *base == "" || *head == "" {
		fmt.Fprintln(os.Stderr, "diff: --base and --head are required")
		os.Exit(2)
	}
	db, err := storage.OpenSQLite(*dbPath)
	if err != nil {
		slog.Error("db open error", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	br, err := db.LoadRun(*base)
	if err != nil {
		slog.Error("load base run error", "err", err)
		os.Exit(1)
	}
	hr, err := db.LoadRun(*head)
	if err != nil {
		slog.Error("load head run error", "err", err)
		os.Exit(1)
	}
	path, err := reporting.WriteDiffJSON(*base, *head, *outDir, &br, &hr)
	if err != nil {
		slog.Error("diff write error", "err", err)
		os.Exit(1)
	}
	fmt.Printf("Diff OK\n  %s\n", path)
}

func serveCmd(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config (optional)")
	addr := fs.String("addr", ":8080", "Listen address")
	dbPath := fs.String("db", "", "SQLite database path")
	_ = fs.Parse(args)

	cfg, _ := shared.LoadConfig(*configPath)
	logger := shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	if *dbPath == "" {
		*dbPath = cfg.Database.DSN
	}
	db, err := storage.OpenSQLite(*dbPath)
	if err != nil {
		slog.Error("db open error", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.CreateSchema(); err != nil {
		slog.Error("db schema error", "err", err)
		os.Exit(1)
	}

	srv := &api.Server{
		DB:              db,
		UserStore:       db,
		Rules:           rules.DefaultRegistry(settingsFrom(cfg)),
		Logger:          logger,
		SessionDuration: 12 * time.Hour,
	}
	slog.Info("serving", "addr", *addr, "db", filepath.Clean(*dbPath))
	if err := http.ListenAndServe(*addr, srv.Routes()); err != nil {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}

func userAddCmd(args []string) {
	fs := flag.NewFlagSet("user-add", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config (optional)")
	username := fs.String("username", "", "Username")
	password := fs.String("password", "", "Password")
	role := fs.String("role", "viewer", "Role (viewer|admin)")
	dbPath := fs.String("db", "", "SQLite database path")
	_ = fs.Parse(args)

	cfg, _ := shared.LoadConfig(*configPath)
	shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "user-add: --username and --password are required")
		os.Exit(2)
	}
	if *dbPath == "" {
		*dbPath = cfg.Database.DSN
	}
	db, err := storage.OpenSQLite(*dbPath)
	if err != nil {
		slog.Error("db open error", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.CreateSchema(); err != nil {
		slog.Error("db schema error", "err", err)
		os.Exit(1)
	}
	hash, err := security.HashPassword(*password)
	if err != nil {
		slog.Error("hash error", "err", err)
		os.Exit(1)
	}
	id, err := db.CreateUser(*username, hash, *role)
	if err != nil {
		slog.Error("create user error", "err", err)
		os.Exit(1)
	}
	fmt.Printf("User %s created (id=%d, role=%s)\n", *username, id, *role)
}
