package export

import (
	"fmt"
	"strings"
	texttemplate "text/template"

	"github.com/google/safehtml/template"

	"github.com/designspace/designspace/internal/chart"
)

const levelTableHTML = `<h2>{{.Name}}</h2>
{{if .Description}}<p>{{.Description}}</p>{{end}}
<table border="1" cellpadding="5" cellspacing="0" style="border-collapse: collapse; width: 100%;">
<thead>
<tr>
<th style="background-color: #f0f0f0; text-align: left; padding: 8px;">Level Name</th>
<th style="background-color: #f0f0f0; text-align: left; padding: 8px;">Description</th>
</tr>
</thead>
<tbody>
{{range $i, $l := .Levels}}{{if $i}}
{{end}}<tr>
<td style="padding: 8px;">{{$l.Name}}</td>
<td style="padding: 8px;">{{$l.Description}}</td>
</tr>{{end}}
</tbody>
</table>`

const levelTableLaTeX = `\begin{table}[h]
\centering
\caption{ {{- tex .Name}}{{if .Description}}: {{tex .Description}}{{end -}} }
\begin{tabular}{|l|p{10cm}|}
\hline
\textbf{Level Name} & \textbf{Description} \\ \hline
{{range $i, $l := .Levels}}{{if $i}}
{{end}}{{tex $l.Name}} & {{tex $l.Description}} \\ \hline{{end}}
\end{tabular}
\end{table}`

var (
	htmlTable  = template.Must(template.New("levels.html").Parse(levelTableHTML))
	latexTable = texttemplate.Must(texttemplate.New("levels.tex").Funcs(texttemplate.FuncMap{"tex": EscapeLaTeX}).Parse(levelTableLaTeX))
)

// TableHTML renders the levels of dim as an HTML table. Names and
// descriptions are escaped.
func TableHTML(dim *chart.Dimension) (string, error) {
	h, err := htmlTable.ExecuteToHTML(dim)
	if err != nil {
		return "", fmt.Errorf("render html table %q: %w", dim.Name, err)
	}
	return h.String(), nil
}

// TableLaTeX renders the levels of dim as a LaTeX table float.
func TableLaTeX(dim *chart.Dimension) (string, error) {
	var b strings.Builder
	if err := latexTable.Execute(&b, dim); err != nil {
		return "", fmt.Errorf("render latex table %q: %w", dim.Name, err)
	}
	return b.String(), nil
}

var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// EscapeLaTeX escapes characters that are special in LaTeX text mode.
func EscapeLaTeX(s string) string {
	return latexEscaper.Replace(s)
}
