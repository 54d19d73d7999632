package report

import (
	"encoding/json"
	"fmt"
	"io"
	"island-route-service/internal/domain"
	"strings"
)

const arrow = " → "

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("parse format: unknown report format %q", s)
	}
}

// Write renders the report to w in the given format.
func Write(w io.Writer, r *domain.TripReport, f Format) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatText:
		return WriteText(w, r)
	default:
		return fmt.Errorf("write report: unknown format %q", f)
	}
}

func WriteJSON(w io.Writer, r *domain.TripReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromDomain(r)); err != nil {
		return fmt.Errorf("write report: encode json: %w", err)
	}
	return nil
}

// WriteText renders a human-readable report. Sections appear in a fixed order
// and only for strategies that ran.
func WriteText(w io.Writer, r *domain.TripReport) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Trip plan %s\n", r.RunID)
	fmt.Fprintf(&b, "  start:  %s\n", r.Start)
	fmt.Fprintf(&b, "  budget: %s\n", r.Budget)
	fmt.Fprintf(&b, "  as of:  %s\n", r.Now.UTC().Format("2006-01-02 15:04 MST"))

	if l := r.Leader; l != nil {
		b.WriteString("\nPrioritized leader route\n")
		fmt.Fprintf(&b, "  route: %s\n", strings.Join(l.Route, arrow))
		fmt.Fprintf(&b, "  time:  %.2fh\n", l.TotalHours)
		fmt.Fprintf(&b, "  score: %.0f\n", l.Score)
	}

	if it := r.Itinerary; it != nil {
		b.WriteString("\nBest itinerary\n")
		fmt.Fprintf(&b, "  route:       %s\n", strings.Join(it.Route, arrow))
		fmt.Fprintf(&b, "  time:        %.2fh\n", it.TotalHours)
		fmt.Fprintf(&b, "  experiences: %d\n", it.Experiences)
	}

	if tr := r.Teaching; tr != nil {
		b.WriteString("\nTeaching route\n")
		fmt.Fprintf(&b, "  route: %s\n", strings.Join(tr.Route, arrow))
		fmt.Fprintf(&b, "  time:  %.2fh\n", tr.TotalHours)
		fmt.Fprintf(&b, "  score: %.0f\n", tr.Score)
		for _, e := range tr.Log {
			fmt.Fprintf(&b, "  %6.2fh  %-12s activity %d (%.2fh)  +%.0f\n",
				e.StartedAt, e.Island, e.ActivityIndex+1, e.Hours, e.Score)
		}
	}

	if d := r.Distribution; d != nil {
		fmt.Fprintf(&b, "\nDistribution of %g from %s\n", d.Initial, d.Source)
		for _, id := range d.Order {
			travel := "unreachable"
			if t, ok := d.TravelTimes[id]; ok {
				travel = fmt.Sprintf("%.2fh", t)
			}
			fmt.Fprintf(&b, "  %-12s %11s  %10.2f\n", id, travel, d.Quantities[id])
		}
		fmt.Fprintf(&b, "  total %.2f\n", d.Total())
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
