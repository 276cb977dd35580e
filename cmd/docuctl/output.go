package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"docuagent/internal/model"
	"docuagent/internal/service"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

type printer struct {
	w      io.Writer
	format string
	now    func() time.Time
}

func newPrinter(w io.Writer, format string) (*printer, error) {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return &printer{w: w, format: format, now: time.Now}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}

func (p *printer) print(v any) error {
	switch p.format {
	case formatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		return p.yaml(v)
	default:
		return p.table(v)
	}
}

// yaml goes through JSON first so keys match the API field names.
func (p *printer) yaml(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var generic any
	if err := json.Unmarshal(b, &generic); err != nil {
		return err
	}
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}

func (p *printer) table(v any) error {
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)

	switch t := v.(type) {
	case *service.DocumentListResult:
		if len(t.Items) == 0 {
			fmt.Fprintln(tw, "No documents found.")
			break
		}
		p.documentRows(tw, t.Items)
	case *service.DocumentDetail:
		fmt.Fprintf(tw, "ID:\t%s\n", t.ID)
		fmt.Fprintf(tw, "Filename:\t%s\n", t.Filename)
		fmt.Fprintf(tw, "Uploaded:\t%s\n", p.when(t.CreatedAt))
		fmt.Fprintf(tw, "Summary:\t%s\n", t.Summary)
		for _, k := range sortedKeys(t.Metadata) {
			fmt.Fprintf(tw, "  %s:\t%s\n", k, t.Metadata[k])
		}
		if !t.Risky {
			fmt.Fprintf(tw, "Risks:\t%s\n", model.NoIssuesFound)
			break
		}
		fmt.Fprintln(tw, "Risks:")
		for _, line := range t.RiskLines {
			fmt.Fprintf(tw, "  - %s\n", line)
		}
	case *service.UploadOutcome:
		fmt.Fprintf(tw, "ID:\t%s\n", t.ID)
		fmt.Fprintf(tw, "Location:\t%s\n", t.Location)
		if t.Message != "" {
			fmt.Fprintf(tw, "Message:\t%s\n", t.Message)
		}
	case *service.RiskListResult:
		s := t.Summary
		fmt.Fprintf(tw, "%d risks across %d documents, %d unresolved\n", s.Total, s.Documents, s.Unresolved)
		fmt.Fprintf(tw, "High: %d  Medium: %d  Low: %d  Resolved: %d\n\n", s.High, s.Medium, s.Low, s.Resolved)
		if len(t.Items) == 0 {
			fmt.Fprintln(tw, "No risk reports match.")
			break
		}
		p.riskRows(tw, t.Items)
	case *service.RiskItem:
		fmt.Fprintf(tw, "ID:\t%s\n", t.ID)
		fmt.Fprintf(tw, "Title:\t%s\n", t.Title)
		fmt.Fprintf(tw, "Document:\t%s (%s)\n", t.Document.Name, t.Document.ID)
		fmt.Fprintf(tw, "Severity:\t%s\n", t.Severity)
		fmt.Fprintf(tw, "Status:\t%s\n", t.Status)
		fmt.Fprintf(tw, "Detected:\t%s\n", p.when(t.DetectedAt))
		fmt.Fprintf(tw, "Description:\t%s\n", t.Description)
		if len(t.NextActions) > 0 {
			fmt.Fprintf(tw, "Next:\t%s\n", joinStatuses(t.NextActions))
		}
	case *service.Overview:
		fmt.Fprintf(tw, "Documents processed:\t%s\n", t.Stats.DocumentsProcessed)
		fmt.Fprintf(tw, "Risky documents:\t%s\n", t.Stats.RiskyDocuments)
		fmt.Fprintf(tw, "Average processing time:\t%s\n", t.Stats.AverageProcessingTime)
		fmt.Fprintln(tw, "\nRecent documents")
		if len(t.RecentDocuments) == 0 {
			fmt.Fprintln(tw, "No documents yet.")
		} else {
			p.documentRows(tw, t.RecentDocuments)
		}
		fmt.Fprintln(tw, "\nRecent risks")
		if len(t.RecentRisks) == 0 {
			fmt.Fprintln(tw, "No risks detected.")
		} else {
			p.riskRows(tw, t.RecentRisks)
		}
	case model.Settings:
		if len(t) == 0 {
			fmt.Fprintln(tw, "No settings.")
			break
		}
		fmt.Fprintln(tw, "KEY\tVALUE")
		for _, k := range sortedKeys(t) {
			fmt.Fprintf(tw, "%s\t%s\n", k, t[k])
		}
	default:
		return fmt.Errorf("no table layout for %T", v)
	}

	return tw.Flush()
}

func (p *printer) documentRows(w io.Writer, items []service.DocumentItem) {
	fmt.Fprintln(w, "ID\tFILENAME\tRISKS\tUPLOADED")
	for _, d := range items {
		risks := "no"
		if d.Risky {
			risks = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.ID, d.Filename, risks, p.when(d.CreatedAt))
	}
}

func (p *printer) riskRows(w io.Writer, items []service.RiskItem) {
	fmt.Fprintln(w, "ID\tSEVERITY\tSTATUS\tTITLE\tDOCUMENT")
	for _, r := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Severity, r.Status, r.Title, r.Document.Name)
	}
}

// when renders a timestamp relative to now, falling back to the raw text.
func (p *printer) when(ts model.Timestamp) string {
	if ts.IsZero() {
		if ts.Raw() != "" {
			return ts.Raw()
		}
		return "-"
	}
	return humanize.RelTime(ts.Time, p.now(), "ago", "from now")
}

func joinStatuses(ss []model.RiskStatus) string {
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

func sortedKeys(m map[string]model.Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
