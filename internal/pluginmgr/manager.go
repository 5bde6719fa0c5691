package pluginmgr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	apperrors "ouma-web/internal/errors"

	"go.uber.org/zap"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

// ===========================================================================
// Package manager
// ===========================================================================

// Requirement one require line of go.mod
type Requirement struct {
	Path     string
	Version  string
	Indirect bool
}

// Dependencies parsed go.mod
type Dependencies struct {
	Module    string
	GoVersion string
	Direct    []Requirement
	Indirect  []Requirement
}

// Outdated a module with a newer version available
type Outdated struct {
	Path     string
	Current  string
	Latest   string
	Indirect bool
}

// Vulnerability findings reported for one OSV entry
type Vulnerability struct {
	ID       string
	Summary  string
	Findings int
}

// Audit govulncheck summary
type Audit struct {
	Total           int
	Vulnerabilities []Vulnerability
}

// Overview everything the plugins page renders
type Overview struct {
	Dependencies *Dependencies
	Outdated     []Outdated
	Audit        Audit
}

// Config manager settings
type Config struct {
	WorkDir    string
	GoBinary   string
	VulnBinary string
}

// Manager runs module maintenance commands in WorkDir
type Manager struct {
	cfg    Config
	runner Runner
	logger *zap.Logger
}

// NewManager creates a Manager
func NewManager(cfg Config, runner Runner, logger *zap.Logger) *Manager {
	if cfg.WorkDir == "" {
		cfg.WorkDir = "."
	}
	if cfg.GoBinary == "" {
		cfg.GoBinary = "go"
	}
	if cfg.VulnBinary == "" {
		cfg.VulnBinary = "govulncheck"
	}
	return &Manager{cfg: cfg, runner: runner, logger: logger}
}

// Overview collects dependencies, outdated modules and the audit.
// Outdated and audit failures are logged and leave their section empty.
func (m *Manager) Overview(ctx context.Context) (*Overview, error) {
	deps, err := m.Dependencies()
	if err != nil {
		return nil, err
	}

	outdated, err := m.Outdated(ctx)
	if err != nil {
		m.logger.Warn("list outdated modules failed", zap.Error(err))
		outdated = []Outdated{}
	}

	return &Overview{
		Dependencies: deps,
		Outdated:     outdated,
		Audit:        m.Audit(ctx),
	}, nil
}

// Dependencies parses go.mod in the work dir
func (m *Manager) Dependencies() (*Dependencies, error) {
	path := filepath.Join(m.cfg.WorkDir, "go.mod")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read go.mod: %w", err)
	}
	return ParseGoMod(path, data)
}

// ParseGoMod splits the require block into direct and indirect modules
func ParseGoMod(path string, data []byte) (*Dependencies, error) {
	f, err := modfile.ParseLax(path, data, nil)
	if err != nil {
		return nil, fmt.Errorf("parse go.mod: %w", err)
	}

	deps := &Dependencies{Direct: []Requirement{}, Indirect: []Requirement{}}
	if f.Module != nil {
		deps.Module = f.Module.Mod.Path
	}
	if f.Go != nil {
		deps.GoVersion = f.Go.Version
	}
	for _, r := range f.Require {
		req := Requirement{Path: r.Mod.Path, Version: r.Mod.Version, Indirect: r.Indirect}
		if r.Indirect {
			deps.Indirect = append(deps.Indirect, req)
		} else {
			deps.Direct = append(deps.Direct, req)
		}
	}
	return deps, nil
}

// listedModule subset of `go list -m -json` output
type listedModule struct {
	Path     string
	Version  string
	Main     bool
	Indirect bool
	Update   *struct {
		Version string
	}
}

// Outdated runs `go list -m -u -json all`
func (m *Manager) Outdated(ctx context.Context) ([]Outdated, error) {
	res, err := m.runner.Run(ctx, m.cfg.WorkDir, m.cfg.GoBinary, "list", "-m", "-u", "-json", "all")
	if err != nil {
		return nil, fmt.Errorf("go list: %w", err)
	}
	return ParseOutdated(res.Stdout)
}

// ParseOutdated decodes the concatenated JSON objects of `go list -m -u -json`
func ParseOutdated(data []byte) ([]Outdated, error) {
	out := []Outdated{}
	dec := json.NewDecoder(bytes.NewReader(data))
	for {
		var mod listedModule
		if err := dec.Decode(&mod); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return out, fmt.Errorf("decode go list output: %w", err)
		}
		if mod.Main || mod.Update == nil {
			continue
		}
		out = append(out, Outdated{
			Path:     mod.Path,
			Current:  mod.Version,
			Latest:   mod.Update.Version,
			Indirect: mod.Indirect,
		})
	}
	return out, nil
}

// vulnMessage subset of the govulncheck -json stream
type vulnMessage struct {
	OSV *struct {
		ID      string `json:"id"`
		Summary string `json:"summary"`
	} `json:"osv"`
	Finding *struct {
		OSV string `json:"osv"`
	} `json:"finding"`
}

// Audit runs govulncheck. Tool failures give an empty audit.
func (m *Manager) Audit(ctx context.Context) Audit {
	res, err := m.runner.Run(ctx, m.cfg.WorkDir, m.cfg.VulnBinary, "-json", "./...")
	if err != nil && (res == nil || len(res.Stdout) == 0) {
		m.logger.Warn("govulncheck failed", zap.Error(err))
		return Audit{Vulnerabilities: []Vulnerability{}}
	}
	audit, perr := ParseAudit(res.Stdout)
	if perr != nil {
		m.logger.Warn("parse govulncheck output failed", zap.Error(perr))
		return Audit{Vulnerabilities: []Vulnerability{}}
	}
	return audit
}

// ParseAudit counts findings per OSV id
func ParseAudit(data []byte) (Audit, error) {
	summaries := map[string]string{}
	counts := map[string]int{}

	dec := json.NewDecoder(bytes.NewReader(data))
	for {
		var msg vulnMessage
		if err := dec.Decode(&msg); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Audit{}, fmt.Errorf("decode govulncheck output: %w", err)
		}
		if msg.OSV != nil {
			summaries[msg.OSV.ID] = msg.OSV.Summary
		}
		if msg.Finding != nil && msg.Finding.OSV != "" {
			counts[msg.Finding.OSV]++
		}
	}

	audit := Audit{Vulnerabilities: make([]Vulnerability, 0, len(counts))}
	for id, n := range counts {
		audit.Vulnerabilities = append(audit.Vulnerabilities, Vulnerability{ID: id, Summary: summaries[id], Findings: n})
		audit.Total += n
	}
	sort.Slice(audit.Vulnerabilities, func(i, j int) bool {
		return audit.Vulnerabilities[i].ID < audit.Vulnerabilities[j].ID
	})
	return audit, nil
}

// UpdateAll runs `go get -u ./...` then `go mod tidy`
func (m *Manager) UpdateAll(ctx context.Context) error {
	if err := m.run(ctx, m.cfg.GoBinary, "get", "-u", "./..."); err != nil {
		return err
	}
	return m.run(ctx, m.cfg.GoBinary, "mod", "tidy")
}

// UpdateOne runs `go get <path>@latest` for a module required by go.mod
func (m *Manager) UpdateOne(ctx context.Context, path string) error {
	if err := module.CheckPath(path); err != nil {
		return apperrors.New(apperrors.ErrInvalidInput, "invalid module path")
	}

	deps, err := m.Dependencies()
	if err != nil {
		return err
	}
	if !deps.Requires(path) {
		return apperrors.New(apperrors.ErrInvalidInput, "module is not a requirement")
	}
	return m.run(ctx, m.cfg.GoBinary, "get", path+"@latest")
}

// AuditFix applies patch releases with `go get -u=patch ./...`
func (m *Manager) AuditFix(ctx context.Context) error {
	return m.run(ctx, m.cfg.GoBinary, "get", "-u=patch", "./...")
}

// Requires reports whether path appears in the require block
func (d *Dependencies) Requires(path string) bool {
	for _, group := range [][]Requirement{d.Direct, d.Indirect} {
		for _, r := range group {
			if r.Path == path {
				return true
			}
		}
	}
	return false
}

func (m *Manager) run(ctx context.Context, name string, args ...string) error {
	res, err := m.runner.Run(ctx, m.cfg.WorkDir, name, args...)
	if err != nil {
		fields := []zap.Field{zap.String("cmd", name), zap.Strings("args", args), zap.Error(err)}
		if res != nil {
			fields = append(fields, zap.ByteString("stderr", res.Stderr))
		}
		m.logger.Error("module command failed", fields...)
		return fmt.Errorf("%s %v: %w", name, args, apperrors.ErrExternal)
	}
	m.logger.Info("module command finished", zap.String("cmd", name), zap.Strings("args", args))
	return nil
}
