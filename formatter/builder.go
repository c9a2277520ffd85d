package formatter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/fatih/color"
	"github.com/rivo/uniseg"

	tt "github.com/gnoswap-labs/phonomatch/internal/types"
)

const unknownLocation = "<word>"

var (
	errorStyle    = color.New(color.FgRed, color.Bold)
	warningStyle  = color.New(color.FgHiYellow, color.Bold)
	infoStyle     = color.New(color.FgHiBlue, color.Bold)
	ruleStyle     = color.New(color.FgYellow, color.Bold)
	fileStyle     = color.New(color.FgCyan, color.Bold)
	lineStyle     = color.New(color.FgHiBlue, color.Bold)
	matchStyle    = color.New(color.FgGreen, color.Bold)
	noMatchStyle  = color.New(color.FgWhite, color.Faint)
	highlightWord = color.New(color.FgGreen, color.Bold, color.Underline)
)

// resultFormatter is the interface that wraps the ResultTemplate method.
type resultFormatter interface {
	ResultTemplate() string
}

func getResultFormatter(result tt.Result) resultFormatter {
	if result.Match.Matched() {
		return &MatchFormatter{}
	}
	return &NoMatchFormatter{}
}

// GenerateFormattedResults formats results into a human-readable string, one
// block per result.
func GenerateFormattedResults(results []tt.Result) string {
	var builder strings.Builder
	for _, result := range results {
		builder.WriteString(buildResult(result, getResultFormatter(result)))
	}
	return builder.String()
}

/***** Result Formatter Builder *****/

type ResultData struct {
	Severity   string
	Rule       string
	Location   string
	LineLabel  string
	Padding    string
	Word       string
	Terms      []string
	Underline  string
	Highlights []bool
	Message    string
}

func buildResult(result tt.Result, formatter resultFormatter) string {
	lineLabel := ""
	location := result.Filename
	if location == "" {
		location = unknownLocation
	}
	if result.Line > 0 {
		lineLabel = strconv.Itoa(result.Line)
		location += ":" + lineLabel
	}
	width := max(len(lineLabel), 1)

	terms := make([]string, len(result.Word))
	for i, t := range result.Word {
		terms[i] = t.Desc()
	}
	if len(terms) == 0 && result.Text != "" {
		terms = strings.Fields(result.Text)
	}

	cols := termColumns(terms)
	data := ResultData{
		Severity:   result.Severity.String(),
		Rule:       result.Rule,
		Location:   location,
		LineLabel:  fmt.Sprintf("%*s", width, lineLabel),
		Padding:    strings.Repeat(" ", width+1),
		Word:       strings.Join(terms, " "),
		Terms:      terms,
		Underline:  underlineSegments(terms, cols, result),
		Highlights: highlighted(len(terms), result),
		Message:    result.Match.String(),
	}

	funcMap := template.FuncMap{
		"header":    header,
		"wordLine":  wordLine,
		"underline": underline,
		"message":   message,
		"noMatch":   noMatch,
	}

	tmpl := template.Must(template.New("result").Funcs(funcMap).Parse(formatter.ResultTemplate()))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting result: %v", err)
	}
	return buf.String()
}

// utils functions used in the text templates

func header(rule, severity, padding, location string) string {
	var endString string
	switch severity {
	case "error":
		endString = errorStyle.Sprint("error: ")
	case "warning":
		endString = warningStyle.Sprint("warning: ")
	default:
		endString = infoStyle.Sprint("info: ")
	}

	endString += ruleStyle.Sprintf("%s\n", rule)
	endString += lineStyle.Sprintf("%s--> ", padding[1:])
	endString += fileStyle.Sprintf("%s\n", location)
	endString += lineStyle.Sprintf("%s|\n", padding)
	return endString
}

// wordLine prints the word with the matched phonemes highlighted.
func wordLine(lineLabel string, terms []string, highlights []bool) string {
	return lineStyle.Sprintf("%s | ", lineLabel) + markTerms(terms, highlights, highlightWord.Sprint) + "\n"
}

// markTerms joins terms with spaces, passing the highlighted ones through
// mark. Terms are taken as given: a phoneme may itself contain a space.
func markTerms(terms []string, highlights []bool, mark func(...any) string) string {
	var sb strings.Builder
	for i, term := range terms {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if i < len(highlights) && highlights[i] {
			sb.WriteString(mark(term))
		} else {
			sb.WriteString(term)
		}
	}
	return sb.String()
}

func underline(padding, marks string) string {
	return lineStyle.Sprintf("%s| ", padding) + matchStyle.Sprintf("%s\n", marks)
}

func message(padding, msg string) string {
	return lineStyle.Sprintf("%s= ", padding) + matchStyle.Sprintf("matched %s\n", msg)
}

func noMatch(padding string) string {
	return lineStyle.Sprintf("%s= ", padding) + noMatchStyle.Sprint("no match\n")
}

// termColumns returns the display column at which each phoneme starts, plus
// one entry for the position just past the word.
func termColumns(terms []string) []int {
	cols := make([]int, len(terms)+1)
	col := 0
	for i, term := range terms {
		cols[i] = col
		col += uniseg.StringWidth(term) + 1
	}
	cols[len(terms)] = col
	return cols
}

func underlineSegments(terms []string, cols []int, result tt.Result) string {
	if result.Match.Unmatched() {
		return ""
	}

	marks := []rune(strings.Repeat(" ", cols[len(cols)-1]+1))
	for _, seg := range result.Match.Segments {
		if seg.Start < 0 || seg.End() > len(terms) {
			continue
		}
		from := cols[seg.Start]
		to := from + 1
		if seg.Len > 0 {
			last := seg.End() - 1
			to = cols[last] + uniseg.StringWidth(terms[last])
		}
		for i := from; i < to && i < len(marks); i++ {
			marks[i] = '^'
		}
	}
	return strings.TrimRight(string(marks), " ")
}

func highlighted(n int, result tt.Result) []bool {
	marks := make([]bool, n)
	for _, seg := range result.Match.Segments {
		for i := seg.Start; i < seg.End() && i < n; i++ {
			if i >= 0 {
				marks[i] = true
			}
		}
	}
	return marks
}
