package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/triage/internal/cli/formatter"
	"github.com/alexanderramin/triage/internal/domain"
	"github.com/alexanderramin/triage/internal/form"
	"github.com/alexanderramin/triage/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newFillCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "fill",
		Short: "Fill in the questionnaire interactively",
		Long: "Walks through the questionnaire section by section. Sections beyond the\n" +
			"core set appear as the running score makes them relevant.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive() {
				return fmt.Errorf("fill requires an interactive terminal (use \"triage set\" for scripted edits)")
			}
			ctx := cmd.Context()

			state, err := app.Drafts.Load(ctx)
			if err != nil {
				return err
			}
			printWarnings(cmd, state)

			bound := newBoundFields(state.Full)
			phase1 := huh.NewForm(
				detailsGroup(bound),
				classificationGroup(app, bound),
			).WithTheme(triageHuhTheme()).WithShowHelp(false)
			if err := phase1.Run(); err != nil {
				return err
			}
			state, err = bound.apply(ctx, app.Drafts)
			if err != nil {
				return err
			}
			cmd.Println(formatter.FormatClassification(state.Result))
			printWarnings(cmd, state)

			// Progressive disclosure: only now do the score-gated
			// sections exist for the user.
			if group, ok := revealedGroup(state.Result, bound); ok {
				phase2 := huh.NewForm(group).WithTheme(triageHuhTheme()).WithShowHelp(false)
				if err := phase2.Run(); err != nil {
					return err
				}
				if state, err = bound.apply(ctx, app.Drafts); err != nil {
					return err
				}
			}

			if state.Result.Visible(domain.SectionBenefits) {
				if state, err = collectBenefitRows(ctx, cmd, app, domain.GroupFinancialBenefits, "financial benefit"); err != nil {
					return err
				}
				if state, err = collectBenefitRows(ctx, cmd, app, domain.GroupNonFinancialBenefits, "non-financial benefit"); err != nil {
					return err
				}
			}

			signOff := huh.NewForm(signOffGroup(bound)).WithTheme(triageHuhTheme()).WithShowHelp(false)
			if err := signOff.Run(); err != nil {
				return err
			}
			if state, err = bound.apply(ctx, app.Drafts); err != nil {
				return err
			}

			cmd.Println(formatter.FormatClassification(state.Result))
			printWarnings(cmd, state)
			cmd.Println(formatter.Dim("Draft saved. \"triage link\" shares it, \"triage submit\" sends it."))
			return nil
		},
	}
}

// boundFields binds huh inputs to field keys and turns the deltas into
// FieldEdited events on apply.
type boundFields struct {
	original domain.FullSnapshot
	texts    map[string]*string
	bools    map[string]*bool
}

func newBoundFields(full domain.FullSnapshot) *boundFields {
	return &boundFields{
		original: full.Clone(),
		texts:    make(map[string]*string),
		bools:    make(map[string]*bool),
	}
}

func (b *boundFields) text(key string) *string {
	if p, ok := b.texts[key]; ok {
		return p
	}
	v := b.original[key]
	b.texts[key] = &v
	return b.texts[key]
}

func (b *boundFields) boolean(key string) *bool {
	if p, ok := b.bools[key]; ok {
		return p
	}
	v := b.original[key] == "true"
	b.bools[key] = &v
	return b.bools[key]
}

// apply dispatches one FieldEdited per changed binding.
func (b *boundFields) apply(ctx context.Context, drafts service.DraftService) (*service.DraftState, error) {
	var state *service.DraftState
	var err error

	for key, p := range b.texts {
		if *p == b.original[key] {
			continue
		}
		state, err = drafts.ApplyEdit(ctx, form.FieldEdited{Key: key, Value: form.ValueFor(key, *p)})
		if err != nil {
			return nil, err
		}
		b.original[key] = *p
	}
	for key, p := range b.bools {
		wire := "false"
		if *p {
			wire = "true"
		}
		if wire == b.original[key] || (!*p && b.original[key] == "") {
			continue
		}
		state, err = drafts.ApplyEdit(ctx, form.FieldEdited{Key: key, Value: domain.BoolValue(*p)})
		if err != nil {
			return nil, err
		}
		b.original[key] = wire
	}

	if state == nil {
		// Nothing changed; rebuild for a current view.
		return drafts.Load(ctx)
	}
	return state, nil
}

func detailsGroup(b *boundFields) *huh.Group {
	return huh.NewGroup(
		textInput("Initiative name", "Estates Renewal", b.text("initiativeName")),
		textInput("Senior sponsor", "", b.text("sponsor")),
		textInput("Department", "", b.text("department")),
		dateInput("Planned start date (blank for none)", b.text("startDate")),
		textInput("Description", "", b.text("description")),
	)
}

func classificationGroup(app *App, b *boundFields) *huh.Group {
	return huh.NewGroup(
		dimensionSelect(app.Table, domain.DimTiming, "Timing", b.text("timing")),
		dimensionSelect(app.Table, domain.DimScope, "Scope", b.text("scope")),
		dimensionSelect(app.Table, domain.DimOversight, "Oversight", b.text("oversight")),
		dimensionSelect(app.Table, domain.DimRisk, "Risk", b.text("risk")),
		dimensionSelect(app.Table, domain.DimBudget, "Budget", b.text("budget")),
		dimensionSelect(app.Table, domain.DimBenefitTracking, "Benefit tracking", b.text("benefit_tracking")),
		dimensionSelect(app.Table, domain.DimChangeManagement, "Change management", b.text("change_management")),
		huh.NewConfirm().Title("Legislative impact?").Value(b.boolean("legislativeImpact")),
	)
}

// revealedGroup builds one group with every score-gated static field whose
// section is visible. ok is false when no such section is.
func revealedGroup(result domain.ClassificationResult, b *boundFields) (*huh.Group, bool) {
	var fields []huh.Field
	for _, spec := range form.StaticFields {
		switch spec.Section {
		case domain.SectionDetails, domain.SectionClassification, domain.SectionSignOff:
			continue
		}
		if !result.Visible(spec.Section) || spec.Kind == domain.FieldImage {
			continue
		}
		fields = append(fields, textInput(spec.Title, "", b.text(spec.Key)))
	}
	if len(fields) == 0 {
		return nil, false
	}
	return huh.NewGroup(fields...), true
}

func signOffGroup(b *boundFields) *huh.Group {
	return huh.NewGroup(
		textInput("Prepared by", "", b.text("preparedBy")),
		dateInput("Date signed (blank for today later)", b.text("signedDate")),
	)
}

// collectBenefitRows loops an add-another confirm, appending one dynamic
// row per pass.
func collectBenefitRows(ctx context.Context, cmd *cobra.Command, app *App, group, label string) (*service.DraftState, error) {
	state, err := app.Drafts.Load(ctx)
	if err != nil {
		return nil, err
	}

	for {
		add := false
		confirm := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().Title(fmt.Sprintf("Add a %s row?", label)).Value(&add),
		)).WithTheme(triageHuhTheme()).WithShowHelp(false)
		if err := confirm.Run(); err != nil {
			return nil, err
		}
		if !add {
			return state, nil
		}

		index, _, err := app.Drafts.AddRow(ctx, group)
		if err != nil {
			return nil, err
		}

		var description, amount string
		fields := []huh.Field{textInput("Description", "", &description)}
		if group == domain.GroupFinancialBenefits {
			fields = append(fields, textInput("Amount (£)", "25000", &amount))
		}
		rowForm := huh.NewForm(huh.NewGroup(fields...)).WithTheme(triageHuhTheme()).WithShowHelp(false)
		if err := rowForm.Run(); err != nil {
			return nil, err
		}

		state, err = app.Drafts.ApplyEdit(ctx, form.FieldEdited{
			Key:   domain.RowFieldKey(group, index, "description"),
			Value: domain.TextValue(description),
		})
		if err != nil {
			return nil, err
		}
		if amount != "" {
			state, err = app.Drafts.ApplyEdit(ctx, form.FieldEdited{
				Key:   domain.RowFieldKey(group, index, "amount"),
				Value: domain.TextValue(amount),
			})
			if err != nil {
				return nil, err
			}
		}
		cmd.Println(formatter.Dim(fmt.Sprintf("Added %s row %d.", label, index)))
	}
}

func printWarnings(cmd *cobra.Command, state *service.DraftState) {
	if out := formatter.FormatWarnings(state.Warnings); out != "" {
		cmd.Print(out)
	}
}
