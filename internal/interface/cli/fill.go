package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/YoshitsuguKoike/propbrief/internal/application/usecase/submission"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model/field"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/wizard"
)

const skipItem = "(skip)"

// asker is the interactive input the fill command needs
type asker interface {
	Choose(label string, items []string) (string, error)
	Ask(label, def string, validate func(string) error) (string, error)
	Confirm(label string) (bool, error)
}

// promptAsker asks through promptui on the terminal
type promptAsker struct{}

func (promptAsker) Choose(label string, items []string) (string, error) {
	sel := promptui.Select{Label: label, Items: items, Size: 8}
	_, item, err := sel.Run()
	return item, err
}

func (promptAsker) Ask(label, def string, validate func(string) error) (string, error) {
	p := promptui.Prompt{Label: label, Default: def, AllowEdit: true, Validate: validate}
	return p.Run()
}

func (promptAsker) Confirm(label string) (bool, error) {
	p := promptui.Prompt{Label: label, IsConfirm: true}
	if _, err := p.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func newFillCmd() *cobra.Command {
	var flow string

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill in a brief or preference interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			f := &filler{env: env, ask: promptAsker{}, out: cmd.OutOrStdout()}
			return f.run(cmd.Context(), flow)
		},
	}

	cmd.Flags().StringVar(&flow, "flow", "", "Wizard flow (brief or preference); asked when empty")
	return cmd
}

// filler drives one wizard session from interactive answers
type filler struct {
	env     *environment
	ask     asker
	out     io.Writer
	editing bool // a declined submission is being edited
}

func (f *filler) run(ctx context.Context, flow string) error {
	if flow == "" {
		choice, err := f.ask.Choose("What would you like to do", []string{string(model.FlowBrief), string(model.FlowPreference)})
		if err != nil {
			return err
		}
		flow = choice
	}
	c, err := f.env.catalog(flow)
	if err != nil {
		return err
	}
	sess := wizard.NewSession(c, wizard.Seed{})
	uc := f.env.submitUseCase()

	if err := f.chooseDiscriminators(sess); err != nil {
		return err
	}

	var only map[field.ID]string
	for {
		st := sess.State()
		if st.Ready && !f.editing {
			submitted, err := f.finish(ctx, sess, uc)
			if err != nil || submitted {
				return err
			}
			continue
		}

		steps := sess.Steps()
		step := steps[st.CurrentStep]
		fmt.Fprintf(f.out, "\nStep %d/%d: %s\n", step.Index+1, len(steps), step.Title)
		if step.ID == field.StepContact {
			f.showDisclosure(uc, st)
		}

		for _, id := range step.VisibleFields(st.Values, st.Discriminators) {
			if only != nil {
				if _, bad := only[id]; !bad {
					continue
				}
				fmt.Fprintf(f.out, "  %s\n", only[id])
			}
			if err := f.askField(sess, id); err != nil {
				return err
			}
		}

		err := sess.Apply(wizard.Next{})
		only = nil
		f.editing = false
		var werr wizard.WizardError
		if errors.As(err, &werr) && len(werr.Fields) > 0 {
			only = werr.Fields
			if f.discriminatorRejected(werr.Fields) {
				if err := f.chooseDiscriminators(sess); err != nil {
					return err
				}
				only = nil
			}
			continue
		}
		if err != nil {
			return err
		}
	}
}

// chooseDiscriminators asks for the top-level choices the flow needs
func (f *filler) chooseDiscriminators(sess *wizard.Session) error {
	types := make([]string, 0, len(model.AllTransactionTypes))
	for _, t := range model.AllTransactionTypes {
		types = append(types, string(t))
	}
	if err := f.setDiscriminator(sess, model.DiscriminatorTransactionType, "Transaction type", types); err != nil {
		return err
	}

	tx := sess.State().Discriminators.TransactionType
	var categories []string
	for _, c := range model.CategoriesFor(tx) {
		categories = append(categories, string(c))
	}
	if err := f.setDiscriminator(sess, model.DiscriminatorPropertyCategory, "Property category", categories); err != nil {
		return err
	}

	if tx == model.TransactionRent {
		if err := f.setDiscriminator(sess, model.DiscriminatorRentalType, "Rental type",
			[]string{string(model.RentalRent), string(model.RentalLease)}); err != nil {
			return err
		}
	}
	if sess.Catalog().Flow() == model.FlowBrief {
		if err := f.setDiscriminator(sess, model.DiscriminatorRole, "You are the",
			[]string{string(model.RoleOwner), string(model.RoleAgent)}); err != nil {
			return err
		}
	}
	return nil
}

func (f *filler) setDiscriminator(sess *wizard.Session, kind model.DiscriminatorKind, label string, items []string) error {
	choice, err := f.ask.Choose(label, items)
	if err != nil {
		return err
	}
	return sess.Apply(wizard.SetDiscriminator{Kind: kind, Value: choice})
}

func (f *filler) discriminatorRejected(errs map[field.ID]string) bool {
	for id := range errs {
		if model.DiscriminatorKind(id).IsValid() {
			return true
		}
	}
	return false
}

// askField asks for one field until the wizard accepts the answer
func (f *filler) askField(sess *wizard.Session, id field.ID) error {
	c := sess.Catalog()
	desc, _ := c.Descriptor(id)
	label := desc.Label
	if !desc.Required {
		label += " (optional)"
	}
	current := sess.State().Values.Value(id)

	for {
		var raw string
		var err error
		switch {
		case desc.Kind == field.KindBool:
			items := []string{"yes", "no"}
			raw, err = f.ask.Choose(label, items)
		case len(desc.Options) > 0:
			items := append([]string{}, desc.Options...)
			if !desc.Required {
				items = append(items, skipItem)
			}
			raw, err = f.ask.Choose(label, items)
			if raw == skipItem {
				raw = ""
			}
		default:
			raw, err = f.ask.Ask(label, current.Display(), func(s string) error {
				_, perr := field.Parse(desc.Kind, s)
				return perr
			})
		}
		if err != nil {
			return err
		}

		v, err := c.ParseInput(id, raw)
		if err == nil {
			err = sess.Apply(wizard.SetField{Field: id, Value: v})
		}
		if err == nil {
			if msg, bad := sess.FieldError(id); bad {
				fmt.Fprintf(f.out, "  %s\n", msg)
				continue
			}
			return nil
		}
		var werr wizard.WizardError
		if !errors.As(err, &werr) {
			return err
		}
		fmt.Fprintf(f.out, "  %s\n", werr.Message)
	}
}

func (f *filler) showDisclosure(uc *submission.SubmitUseCase, st wizard.State) {
	text, err := uc.Disclosure(st)
	if err != nil {
		Warn("disclosure unavailable: %v", err)
		return
	}
	if text != "" {
		fmt.Fprintf(f.out, "\n%s\n\n", text)
	}
}

// finish previews the payload and submits on confirmation. It reports
// whether the wizard was submitted; a declined submission steps back so the
// answers can be edited.
func (f *filler) finish(ctx context.Context, sess *wizard.Session, uc *submission.SubmitUseCase) (bool, error) {
	p, err := sess.FinalPayload()
	if err != nil {
		return false, err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return false, err
	}
	fmt.Fprintf(f.out, "\n%s (%s)\n%s\n", p.Variant(), p.TransactionType(), data)
	f.showDisclosure(uc, sess.State())

	ok, err := f.ask.Confirm("Submit now")
	if err != nil {
		return false, err
	}
	if !ok {
		return false, f.editStep(sess)
	}

	res, err := uc.Execute(ctx, sess)
	if err != nil {
		var subErr *submission.SubmissionError
		if !errors.As(err, &subErr) {
			return false, err
		}
		fmt.Fprintf(f.out, "Submission failed: %v\nYour answers were kept.\n", subErr.Err)
		retry, cerr := f.ask.Confirm("Try again")
		if cerr != nil || !retry {
			return false, err
		}
		return false, nil
	}
	fmt.Fprintf(f.out, "Submitted %s to %s\n", res.Reference, res.Destination)
	return true, nil
}

// editStep jumps back to a visited step picked by title
func (f *filler) editStep(sess *wizard.Session) error {
	var titles []string
	byTitle := map[string]int{}
	for _, s := range sess.Steps() {
		if sess.CanJumpTo(s.Index) {
			titles = append(titles, s.Title)
			byTitle[s.Title] = s.Index
		}
	}
	choice, err := f.ask.Choose("Edit which step", titles)
	if err != nil {
		return err
	}
	f.editing = true
	return sess.Apply(wizard.Jump{Target: byTitle[choice]})
}
