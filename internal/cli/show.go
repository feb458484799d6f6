package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/property-assistant/internal/catalog"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show project details",
		Long:  "Show a project's facts, its units and its frequently asked questions.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

type showResponse struct {
	Project *catalog.Project `json:"project"`
	Units   []catalog.Unit   `json:"units"`
	FAQs    []catalog.FAQ    `json:"faqs"`
}

func runShow(cmd *cobra.Command, args []string) error {
	src, err := openSource()
	if err != nil {
		return err
	}
	p, err := src.Project(args[0])
	if err != nil {
		return err
	}
	units, err := src.Units(p.ID)
	if err != nil {
		return err
	}
	faqs, err := src.FAQs(p.ID)
	if err != nil {
		return err
	}

	resp := showResponse{Project: p, Units: units, FAQs: faqs}

	w := cmd.OutOrStdout()
	if isJSON() {
		return printJSON(w, resp)
	}

	if err := printProjectSummary(w, p); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nUnits (%d):\n", len(resp.Units))
	if err := printUnitTable(w, resp.Units); err != nil {
		return err
	}
	if len(resp.FAQs) > 0 {
		fmt.Fprintf(w, "\nFAQs (%d):\n", len(resp.FAQs))
		return printFAQs(w, resp.FAQs)
	}
	return nil
}
