package formatter

type MatchFormatter struct{}

func (f *MatchFormatter) ResultTemplate() string {
	return `{{header .Rule .Severity .Padding .Location -}}
{{wordLine .LineLabel .Terms .Highlights -}}
{{underline .Padding .Underline -}}
{{message .Padding .Message}}
`
}

type NoMatchFormatter struct{}

func (f *NoMatchFormatter) ResultTemplate() string {
	return `{{header .Rule .Severity .Padding .Location -}}
{{wordLine .LineLabel .Terms .Highlights -}}
{{noMatch .Padding}}
`
}
