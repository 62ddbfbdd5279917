package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/lotayaai/lotaya-io/internal/cli/render"
	"github.com/lotayaai/lotaya-io/internal/tools"
	"github.com/lotayaai/lotaya-io/pkg/logger"
	"github.com/lotayaai/lotaya-io/pkg/sdk"
)

// openURL is swapped out in tests.
var openURL = browser.OpenURL

func newGenerateCmd(a *app) *cobra.Command {
	var (
		sets []string
		open bool
	)

	cmd := &cobra.Command{
		Use:   "generate <tool>",
		Short: "Run a design tool",
		Long: `Run one of the design tools and print its result.

Field values are given with --set name=value; list fields take comma
separated values. Run "lotaya tools show <tool>" to see the fields.

Examples:
  lotaya generate logo --set brandName=Acme --set keywords=modern,tech
  lotaya generate domain --set keywords=acme --set extensions=.com,.io -o json
  lotaya generate chat --set "message=Help me pick brand colors"`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: toolIDs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.registry.Lookup(args[0])
			if err != nil {
				return fmt.Errorf("%w. Run \"lotaya tools\" to list them", err)
			}

			form := tools.NewFormState(d)
			for _, s := range sets {
				name, value, ok := strings.Cut(s, "=")
				if !ok {
					return fmt.Errorf("invalid --set %q, expected name=value", s)
				}
				if err := form.SetField(strings.TrimSpace(name), value); err != nil {
					return err
				}
			}

			client, err := a.apiClient()
			if err != nil {
				return err
			}

			payload, err := a.run(cmd.Context(), client, form)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if d.ID == tools.Chat && a.cfg.Output == "table" {
				if err := a.writeChat(w, payload); err != nil {
					return err
				}
			} else if err := writeOutput(w, a.cfg.Output, payload, func() (render.Table, error) {
				return render.Result(d.ID, payload)
			}); err != nil {
				return err
			}

			if open {
				if asset := payload.AssetURL(); asset != "" {
					return openURL(asset)
				}
				a.log.Warn("result has no asset to open", slog.String("tool", d.ID))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "field value as name=value (repeatable)")
	cmd.Flags().BoolVar(&open, "open", false, "open the generated asset in a browser")
	return cmd
}

// run submits the form once and returns the payload or the message the
// form settled on.
func (a *app) run(ctx context.Context, client tools.Caller, form *tools.FormState) (sdk.Payload, error) {
	err := tools.Submit(ctx, client, form)
	snap := form.Snapshot()

	var verr *tools.ValidationError
	switch {
	case errors.As(err, &verr):
		return nil, verr
	case err != nil:
		a.log.Debug("request failed", slog.String("tool", snap.Tool), logger.Error(err))
		return nil, errors.New(snap.ErrorMessage)
	}
	return snap.Result, nil
}

// writeChat prints the assistant reply as rendered markdown.
func (a *app) writeChat(w io.Writer, p sdk.Payload) error {
	var res sdk.ChatResult
	if err := p.Decode(&res); err != nil {
		return err
	}

	var md strings.Builder
	md.WriteString(res.Response)
	if len(res.Suggestions) > 0 {
		md.WriteString("\n\n**Try asking:**\n\n")
		for _, s := range res.Suggestions {
			md.WriteString("- " + s + "\n")
		}
	}

	if !a.cfg.UseColor(a.noColor) {
		_, err := fmt.Fprintln(w, md.String())
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(a.cfg.UI.Theme),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return err
	}
	out, err := r.Render(md.String())
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, out)
	return err
}
