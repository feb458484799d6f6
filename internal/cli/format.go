package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/evcraddock/property-assistant/internal/assistant"
	"github.com/evcraddock/property-assistant/internal/catalog"
	"github.com/evcraddock/property-assistant/internal/formatter"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	keyColor     = color.New(color.FgYellow)
)

// printJSON marshals v as indented JSON and writes it to w.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printAnswer writes an answer's text, highlighting the title line and the
// keys of data lines.
func printAnswer(w io.Writer, text string) error {
	rest := text
	if title, ok := formatter.ExtractTitle(text); ok {
		if _, err := headingColor.Fprintln(w, title); err != nil {
			return err
		}
		var more bool
		if _, rest, more = strings.Cut(text, "\n"); !more {
			return nil
		}
	}

	for _, line := range strings.Split(rest, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(key) == "" || strings.Contains(value, "//") {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
			continue
		}
		if _, err := keyColor.Fprint(w, key+":"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, value); err != nil {
			return err
		}
	}
	return nil
}

// printResult writes an answer followed by a table of its units, if any.
func printResult(w io.Writer, text string, units []catalog.Unit) error {
	if err := printAnswer(w, text); err != nil {
		return err
	}
	if len(units) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\nUnits (%d):\n", len(units)); err != nil {
		return err
	}
	return printUnitTable(w, units)
}

// printProjectTable prints projects as a table, marking the current one.
func printProjectTable(w io.Writer, projects []catalog.Project, units map[string][]catalog.Unit, current string) error {
	if len(projects) == 0 {
		_, err := fmt.Fprintln(w, "No projects found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, " \tID\tNAME\tLOCATION\tUNITS\tFROM"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, " \t--\t----\t--------\t-----\t----"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, p := range projects {
		mark := " "
		if p.ID == current {
			mark = "*"
		}
		pu := units[p.ID]
		from := "-"
		if len(pu) > 0 {
			lo := pu[0].Price
			for _, u := range pu[1:] {
				if u.Price < lo {
					lo = u.Price
				}
			}
			from = catalog.FormatIndianPrice(lo)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			mark, p.ID, p.Name, truncate(p.Location, 40), len(pu), from); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	_, err := fmt.Fprintf(w, "\nTotal: %d projects\n", len(projects))
	return err
}

// printProjectSummary prints a project's headline facts.
func printProjectSummary(w io.Writer, p *catalog.Project) error {
	if _, err := headingColor.Fprintln(w, p.Name); err != nil {
		return err
	}
	rows := []struct{ key, value string }{
		{"ID", p.ID},
		{"Location", p.Location},
		{"Type", p.Type},
		{"Developer", p.Developer},
		{"Status", p.Status},
		{"Possession", p.CompletionDate},
		{"Certification", p.Certification},
		{"RERA", p.ReraNumber},
		{"Website", p.Website},
	}
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "  %-14s %s\n", r.key+":", r.value); err != nil {
			return err
		}
	}
	return nil
}

// printUnitTable prints units as a table.
func printUnitTable(w io.Writer, units []catalog.Unit) error {
	if len(units) == 0 {
		_, err := fmt.Fprintln(w, "No units listed.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "UNIT\tTYPE\tBED\tAREA\tPRICE\tSTATUS"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	for _, u := range units {
		number := u.UnitNumber
		if number == "" {
			number = u.ID
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%d sq ft\t%s\t%s\n",
			number, u.Type, u.Bedrooms, u.Area, catalog.FormatIndianPrice(u.Price), u.Availability.Label()); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}
	return nil
}

// printFAQs prints questions and answers.
func printFAQs(w io.Writer, faqs []catalog.FAQ) error {
	for _, f := range faqs {
		if _, err := keyColor.Fprintf(w, "Q: %s\n", f.Question); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "A: %s\n\n", f.Answer); err != nil {
			return err
		}
	}
	return nil
}

// printFilterTable prints quick filters as a table.
func printFilterTable(w io.Writer, filters []assistant.QuickFilter) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "LABEL\tQUERY\tDESCRIPTION"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	for _, f := range filters {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Label, f.Query, f.Description); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}
	return nil
}

// printHistory prints recent queries, newest first.
func printHistory(w io.Writer, entries []string) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No recent searches.")
		return err
	}
	for i, e := range entries {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, e); err != nil {
			return err
		}
	}
	return nil
}

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
