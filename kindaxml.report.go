package kindaxml

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ReportFormat selects the rendering of ParseResult.Report, grounded on
// the teacher's CatalogFormat (prompty.catalog.go).
type ReportFormat string

const (
	// ReportFormatDefault renders one line per segment with its
	// annotation tags, in document order, followed by one line per
	// marker.
	ReportFormatDefault ReportFormat = ""
	// ReportFormatDetailed renders each segment with its full text and
	// each annotation's attribute map, then each marker's position and
	// tag (marker attributes are not shown).
	ReportFormatDetailed ReportFormat = "detailed"
	// ReportFormatCompact renders a single semicolon-separated line.
	ReportFormatCompact ReportFormat = "compact"
	// ReportFormatJSON renders the result as indented JSON (equivalent
	// to json.MarshalIndent(result, "", "  "), offered here for a
	// uniform call site).
	ReportFormatJSON ReportFormat = "json"
)

// Report error messages.
const (
	ErrMsgReportUnknownFormat = "unknown report format"
)

// NewReportError wraps a report-generation failure.
func NewReportError(format ReportFormat) error {
	return NewConfigError(ErrMsgReportUnknownFormat, "format", string(format))
}

// Report renders r as a human-readable (or machine-readable, for
// ReportFormatJSON) summary of its segments and markers.
func (r *ParseResult) Report(format ReportFormat) (string, error) {
	switch format {
	case ReportFormatDefault:
		return r.reportDefault(), nil
	case ReportFormatDetailed:
		return r.reportDetailed(), nil
	case ReportFormatCompact:
		return r.reportCompact(), nil
	case ReportFormatJSON:
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return "", NewReportError(format)
	}
}

func tagList(anns []Annotation) string {
	if len(anns) == 0 {
		return ""
	}
	tags := make([]string, len(anns))
	for i, a := range anns {
		tags[i] = a.Tag
	}
	return strings.Join(tags, ",")
}

func (r *ParseResult) reportDefault() string {
	var b strings.Builder
	b.WriteString("## Parse Report\n\n")
	for _, seg := range r.Segments {
		if tags := tagList(seg.Annotations); tags != "" {
			fmt.Fprintf(&b, "- [%s] %q\n", tags, seg.Text)
		} else {
			fmt.Fprintf(&b, "- %q\n", seg.Text)
		}
	}
	for _, m := range r.Markers {
		fmt.Fprintf(&b, "- [%s] (marker @%d)\n", m.Annotation.Tag, m.Pos)
	}
	return b.String()
}

func (r *ParseResult) reportDetailed() string {
	var b strings.Builder
	b.WriteString("## Parse Report\n\n")
	for i, seg := range r.Segments {
		fmt.Fprintf(&b, "### Segment %d\n", i)
		fmt.Fprintf(&b, "text: %q\n", seg.Text)
		for _, a := range seg.Annotations {
			fmt.Fprintf(&b, "- tag: %s\n", a.Tag)
			for k, v := range a.Attrs {
				if v.IsFlag {
					fmt.Fprintf(&b, "  - %s: true\n", k)
				} else {
					fmt.Fprintf(&b, "  - %s: %q\n", k, v.Text)
				}
			}
		}
		b.WriteString("\n")
	}
	for i, m := range r.Markers {
		fmt.Fprintf(&b, "### Marker %d\n", i)
		fmt.Fprintf(&b, "pos: %d\ntag: %s\n\n", m.Pos, m.Annotation.Tag)
	}
	return b.String()
}

func (r *ParseResult) reportCompact() string {
	parts := make([]string, 0, len(r.Segments)+len(r.Markers))
	for _, seg := range r.Segments {
		if tags := tagList(seg.Annotations); tags != "" {
			parts = append(parts, fmt.Sprintf("[%s]%s", tags, seg.Text))
		} else {
			parts = append(parts, seg.Text)
		}
	}
	for _, m := range r.Markers {
		parts = append(parts, fmt.Sprintf("[%s]@%d", m.Annotation.Tag, m.Pos))
	}
	return strings.Join(parts, "; ")
}
