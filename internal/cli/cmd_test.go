package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/alexanderramin/triage/internal/classify"
	"github.com/alexanderramin/triage/internal/gateway"
	"github.com/alexanderramin/triage/internal/repository"
	"github.com/alexanderramin/triage/internal/service"
	"github.com/alexanderramin/triage/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp wires a full non-interactive App over an in-memory store and
// the given workflow endpoint.
func newTestApp(t *testing.T, endpoint string) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	drafts := repository.NewSQLiteDraftRepo(database)
	rows := repository.NewSQLiteRowRepo(database)
	table := classify.DefaultTable()

	cfg := gateway.DefaultConfig()
	cfg.Endpoint = endpoint

	return &App{
		Drafts:        service.NewDraftService(table, drafts, rows, testutil.NewTestUoW(database), "https://forms.example/triage"),
		Submit:        service.NewSubmitService(gateway.NewWorkflowClient(cfg, gateway.NoopObserver{}), drafts, rows),
		Table:         table,
		IsInteractive: func() bool { return false },
	}
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestSetCmd_ReclassifiesOnEveryEdit(t *testing.T) {
	app := newTestApp(t, "http://unused.invalid")

	out, err := execute(t, app, "set", "timing", "multi_phase")
	require.NoError(t, err)
	assert.Contains(t, out, "Score:    3")
	assert.Contains(t, out, "BAU")

	for key, choice := range map[string]string{
		"scope":     "organisation_wide",
		"oversight": "executive_board",
		"risk":      "high",
		"budget":    "capital_programme",
	} {
		_, err = execute(t, app, "set", key, choice)
		require.NoError(t, err)
	}

	out, err = execute(t, app, "set", "benefit_tracking", "formal_realisation")
	require.NoError(t, err)
	assert.Contains(t, out, "Programme")
	assert.Contains(t, out, "tranches")
}

func TestRowCmds(t *testing.T) {
	app := newTestApp(t, "http://unused.invalid")

	out, err := execute(t, app, "row", "add", "financialBenefits")
	require.NoError(t, err)
	assert.Contains(t, out, "Added row 0")

	_, err = execute(t, app, "set", "financialBenefits[0].amount", "25000")
	require.NoError(t, err)

	out, err = execute(t, app, "row", "list", "financialBenefits")
	require.NoError(t, err)
	assert.Contains(t, out, "financialBenefits[0].amount = 25000")

	_, err = execute(t, app, "row", "add", "mystery")
	assert.Error(t, err)
}

func TestLinkCmd_ExportsNewlineTerminatedURL(t *testing.T) {
	app := newTestApp(t, "http://unused.invalid")
	_, err := execute(t, app, "set", "sponsor", "J. Ellis")
	require.NoError(t, err)

	out, err := execute(t, app, "link")
	require.NoError(t, err)
	assert.Equal(t, "https://forms.example/triage?sponsor=J.+Ellis\n", out)

	path := filepath.Join(t.TempDir(), "link.txt")
	_, err = execute(t, app, "link", "--out", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://forms.example/triage?sponsor=J.+Ellis\n", string(data))
}

func TestResumeCmd_PopulatesDraft(t *testing.T) {
	app := newTestApp(t, "http://unused.invalid")

	out, err := execute(t, app, "resume", "https://forms.example/triage?timing=multi_phase&scope=organisation_wide&oversight=executive_board&risk=high&budget=capital_programme")
	require.NoError(t, err)
	assert.Contains(t, out, "Score:    15")
	assert.Contains(t, out, "Programme")
}

func TestSubmitCmd_SuccessClearsSession(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	_, err := execute(t, app, "set", "initiativeName", "Estates Renewal")
	require.NoError(t, err)

	out, err := execute(t, app, "submit")
	require.NoError(t, err)
	assert.Contains(t, out, "Submitted")
	assert.Equal(t, int32(1), calls.Load())

	// The durable confirmation is visible and the draft is gone.
	out, err = execute(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Estates Renewal")

	out, err = execute(t, app, "link")
	require.NoError(t, err)
	assert.Equal(t, "https://forms.example/triage\n", out)

	// The submit action stays disabled.
	_, err = execute(t, app, "submit")
	assert.ErrorIs(t, err, service.ErrAlreadySubmitted)
}

func TestSubmitCmd_EmptyDraftBlocked(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	_, err := execute(t, app, "submit")
	assert.ErrorIs(t, err, gateway.ErrEmptyPayload)
	assert.Zero(t, calls.Load())
}

func TestSubmitCmd_EndpointFailureKeepsDraft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "workflow disabled", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	_, err := execute(t, app, "set", "sponsor", "J. Ellis")
	require.NoError(t, err)

	_, err = execute(t, app, "submit")
	assert.ErrorIs(t, err, gateway.ErrEndpoint)

	out, err := execute(t, app, "link")
	require.NoError(t, err)
	assert.Contains(t, out, "sponsor=J.+Ellis")
}

func TestStatusCmd_NoSubmissionYet(t *testing.T) {
	app := newTestApp(t, "http://unused.invalid")
	out, err := execute(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "No submission recorded yet")
}

func TestExportCmd_WritesPDFReport(t *testing.T) {
	app := newTestApp(t, "http://unused.invalid")
	_, err := execute(t, app, "set", "initiativeName", "Estates Renewal")
	require.NoError(t, err)
	_, err = execute(t, app, "set", "sponsor", "J. Ellis")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.pdf")
	out, err := execute(t, app, "export", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportCmd_EmptyFormBlocked(t *testing.T) {
	app := newTestApp(t, "http://unused.invalid")
	_, err := execute(t, app, "export", filepath.Join(t.TempDir(), "report.pdf"))
	assert.Error(t, err)
}

func TestClearCmd_RequiresForceNonInteractive(t *testing.T) {
	app := newTestApp(t, "http://unused.invalid")
	_, err := execute(t, app, "set", "sponsor", "J. Ellis")
	require.NoError(t, err)

	_, err = execute(t, app, "clear")
	assert.Error(t, err)

	out, err := execute(t, app, "clear", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Draft cleared")

	out, err = execute(t, app, "link")
	require.NoError(t, err)
	assert.Equal(t, "https://forms.example/triage\n", out)
}

func TestFillCmd_RefusesNonInteractive(t *testing.T) {
	app := newTestApp(t, "http://unused.invalid")
	_, err := execute(t, app, "fill")
	assert.Error(t, err)
}
