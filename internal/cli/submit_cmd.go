package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/triage/internal/cli/formatter"
	"github.com/alexanderramin/triage/internal/gateway"
	"github.com/alexanderramin/triage/internal/service"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newSubmitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "submit",
		Short: "Send the questionnaire to the workflow endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if app.Submit.Submitted() {
				return service.ErrAlreadySubmitted
			}

			state, err := app.Drafts.Load(ctx)
			if err != nil {
				return err
			}
			printWarnings(cmd, state)

			var outcome *service.SubmitOutcome
			if app.IsInteractive() {
				outcome, err = submitWithSpinner(ctx, app, state)
			} else {
				outcome, err = app.Submit.Submit(ctx, state.Full)
			}
			if err != nil {
				return describeSubmitErr(err)
			}

			// Reset the editable form; storage was already sequenced by
			// the submit service.
			if _, resetErr := app.Drafts.Clear(ctx); resetErr != nil {
				cmd.Print(formatter.Warn(resetErr.Error()))
			}

			cmd.Println(formatter.StyleGreen.Render("✓ Submitted") +
				formatter.Dim(fmt.Sprintf(" (receipt %s, http %d)", outcome.Ack.ReceiptID, outcome.Ack.StatusCode)))
			if out := formatter.FormatWarnings(outcome.Warnings); out != "" {
				cmd.Print(out)
			}
			cmd.Println(formatter.Dim("Session draft cleared. \"triage status\" shows the confirmation."))
			return nil
		},
	}
}

func describeSubmitErr(err error) error {
	switch {
	case errors.Is(err, gateway.ErrEmptyPayload):
		return fmt.Errorf("%w; fill in at least one field first", err)
	case errors.Is(err, gateway.ErrNetwork), errors.Is(err, gateway.ErrEndpoint):
		return fmt.Errorf("%w; your draft is unchanged, retry when ready", err)
	default:
		return err
	}
}

// submitWithSpinner runs the submission behind a bubbletea spinner. Key
// input is swallowed while the call is in flight, which is what enforces
// the one-submission-at-a-time rule in the interactive path; ctrl+c
// abandons the view and leaves the request to finish unobserved.
func submitWithSpinner(ctx context.Context, app *App, state *service.DraftState) (*service.SubmitOutcome, error) {
	m := newSubmitModel(ctx, app, state)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, fmt.Errorf("running submit view: %w", err)
	}

	result := final.(submitModel)
	if result.abandoned {
		return nil, fmt.Errorf("submission abandoned; it may still reach the endpoint")
	}
	return result.outcome, result.err
}

type submitResultMsg struct {
	outcome *service.SubmitOutcome
	err     error
}

type submitModel struct {
	spinner   spinner.Model
	submit    tea.Cmd
	outcome   *service.SubmitOutcome
	err       error
	done      bool
	abandoned bool
}

func newSubmitModel(ctx context.Context, app *App, state *service.DraftState) submitModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = formatter.StyleHeader

	return submitModel{
		spinner: s,
		submit: func() tea.Msg {
			outcome, err := app.Submit.Submit(ctx, state.Full)
			return submitResultMsg{outcome: outcome, err: err}
		},
	}
}

func (m submitModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.submit)
}

func (m submitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitResultMsg:
		m.outcome = msg.outcome
		m.err = msg.err
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.abandoned = true
			return m, tea.Quit
		}
		// Submit is disabled while in flight; ignore everything else.
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m submitModel) View() string {
	if m.done || m.abandoned {
		return ""
	}
	return fmt.Sprintf("\n  %s %s\n", m.spinner.View(), formatter.Dim("Submitting to workflow endpoint..."))
}
