package pluginmgr

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "ouma-web/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleGoMod = `module example.com/site

go 1.24

require (
	github.com/gin-gonic/gin v1.11.0
	gorm.io/gorm v1.31.1
)

require golang.org/x/text v0.27.0 // indirect
`

type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) Run(ctx context.Context, dir, name string, args ...string) (*Result, error) {
	call := m.Called(name, strings.Join(args, " "))
	res, _ := call.Get(0).(*Result)
	return res, call.Error(1)
}

func newManager(t *testing.T, runner Runner) *Manager {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(sampleGoMod), 0o644))
	return NewManager(Config{WorkDir: dir}, runner, zap.NewNop())
}

func TestParseGoMod(t *testing.T) {
	deps, err := ParseGoMod("go.mod", []byte(sampleGoMod))
	require.NoError(t, err)

	assert.Equal(t, "example.com/site", deps.Module)
	assert.Equal(t, "1.24", deps.GoVersion)
	require.Len(t, deps.Direct, 2)
	assert.Equal(t, "github.com/gin-gonic/gin", deps.Direct[0].Path)
	require.Len(t, deps.Indirect, 1)
	assert.True(t, deps.Requires("golang.org/x/text"))
	assert.False(t, deps.Requires("github.com/unknown/mod"))
}

func TestParseOutdated(t *testing.T) {
	out := `{"Path":"example.com/site","Main":true}
{"Path":"github.com/gin-gonic/gin","Version":"v1.10.0","Update":{"Path":"github.com/gin-gonic/gin","Version":"v1.11.0"}}
{"Path":"gorm.io/gorm","Version":"v1.31.1"}
{"Path":"golang.org/x/text","Version":"v0.26.0","Indirect":true,"Update":{"Version":"v0.27.0"}}
`
	mods, err := ParseOutdated([]byte(out))
	require.NoError(t, err)
	require.Len(t, mods, 2)
	assert.Equal(t, Outdated{Path: "github.com/gin-gonic/gin", Current: "v1.10.0", Latest: "v1.11.0"}, mods[0])
	assert.True(t, mods[1].Indirect)
}

func TestParseAudit(t *testing.T) {
	out := `{"config":{"scanner_name":"govulncheck"}}
{"osv":{"id":"GO-2024-0001","summary":"bad parser"}}
{"finding":{"osv":"GO-2024-0001","trace":[{"module":"x"}]}}
{"finding":{"osv":"GO-2024-0001","trace":[{"module":"x"}]}}
{"osv":{"id":"GO-2024-0002","summary":"leak"}}
{"finding":{"osv":"GO-2024-0002"}}
`
	audit, err := ParseAudit([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, 3, audit.Total)
	require.Len(t, audit.Vulnerabilities, 2)
	assert.Equal(t, Vulnerability{ID: "GO-2024-0001", Summary: "bad parser", Findings: 2}, audit.Vulnerabilities[0])
}

func TestManager_AuditToolFailureGivesEmptyAudit(t *testing.T) {
	runner := new(mockRunner)
	runner.On("Run", "govulncheck", "-json ./...").Return(nil, errors.New("not installed"))
	m := newManager(t, runner)

	audit := m.Audit(context.Background())
	assert.Zero(t, audit.Total)
	assert.Empty(t, audit.Vulnerabilities)
}

func TestManager_Overview(t *testing.T) {
	runner := new(mockRunner)
	runner.On("Run", "go", "list -m -u -json all").Return(nil, errors.New("offline"))
	runner.On("Run", "govulncheck", "-json ./...").Return(&Result{Stdout: []byte(`{"finding":{"osv":"GO-1"}}`)}, nil)
	m := newManager(t, runner)

	ov, err := m.Overview(context.Background())
	require.NoError(t, err)
	assert.Len(t, ov.Dependencies.Direct, 2)
	assert.Empty(t, ov.Outdated)
	assert.Equal(t, 1, ov.Audit.Total)
}

func TestManager_UpdateOneValidatesModule(t *testing.T) {
	ctx := context.Background()
	runner := new(mockRunner)
	runner.On("Run", "go", "get gorm.io/gorm@latest").Return(&Result{}, nil)
	m := newManager(t, runner)

	require.NoError(t, m.UpdateOne(ctx, "gorm.io/gorm"))

	err := m.UpdateOne(ctx, "github.com/evil/pkg")
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))

	err = m.UpdateOne(ctx, "gorm.io/gorm; rm -rf /")
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))

	runner.AssertNumberOfCalls(t, "Run", 1)
}

func TestManager_UpdateAllAndAuditFix(t *testing.T) {
	ctx := context.Background()
	runner := new(mockRunner)
	runner.On("Run", "go", "get -u ./...").Return(&Result{}, nil)
	runner.On("Run", "go", "mod tidy").Return(&Result{Stderr: []byte("boom")}, errors.New("exit 1"))
	runner.On("Run", "go", "get -u=patch ./...").Return(&Result{}, nil)
	m := newManager(t, runner)

	err := m.UpdateAll(ctx)
	assert.True(t, apperrors.Is(err, apperrors.ErrExternal))
	require.NoError(t, m.AuditFix(ctx))
}

func TestCappedBuffer(t *testing.T) {
	b := &cappedBuffer{max: 4}
	n, err := b.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	n, err = b.Write([]byte("defg"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "abcd", string(b.Bytes()))
	assert.True(t, b.truncated)
}

func TestExecRunner_OutputCapAndTimeout(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}

	r := NewExecRunner(2*time.Second, 10)
	res, err := r.Run(context.Background(), t.TempDir(), sh, "-c", "printf 0123456789abcdef")
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(res.Stdout))
	assert.True(t, res.Truncated)

	res, err = r.Run(context.Background(), t.TempDir(), sh, "-c", "exit 3")
	require.Error(t, err)
	assert.Equal(t, 3, res.ExitCode)

	slow := NewExecRunner(100*time.Millisecond, 0)
	res, err = slow.Run(context.Background(), t.TempDir(), sh, "-c", "sleep 5")
	require.Error(t, err)
	assert.Equal(t, -1, res.ExitCode)
}
