package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/csvdiff/internal/command"
)

// Examples maps a subcommand name to its documented examples.
type Examples map[string][]Example

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type Flag struct {
	Syntax      string
	Description string
}

type TemplateData struct {
	ID       string
	IDUpper  string
	Short    string
	Usage    string
	Flags    []Flag
	Examples []Example
	Date     string
	Version  string
}

const markdownTemplate = `# csvdiff {{ .ID }}

{{ .Short }}

## Usage

    {{ .Usage }}

## Flags
{{ range .Flags }}
- ` + "`{{ .Syntax }}`" + ` {{ .Description }}
{{- end }}
{{ if .Examples }}
## Examples
{{ range .Examples }}
{{ .Description }}

    {{ .Command }}
{{ end }}{{ end }}
_{{ .IDUpper }} generated {{ .Date }} for {{ .Version }}._
`

// usage: docsgen OUTDIR [EXAMPLES.yaml]
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen OUTDIR [EXAMPLES.yaml]")
		os.Exit(1)
	}
	docs := os.Args[1]

	examples := Examples{}
	if len(os.Args) > 2 {
		data, err := os.ReadFile(os.Args[2])
		if err != nil {
			panic(err)
		}
		if err := yaml.Unmarshal(data, &examples); err != nil {
			panic(err)
		}
	}

	app, err := command.InitApp(context.Background(), []string{"csvdiff"})
	if err != nil {
		panic(err)
	}

	folder := filepath.Join(docs, "commands")
	if err := os.MkdirAll(folder, 0o755); err != nil {
		panic(err)
	}

	for _, sub := range app.Commands {
		name := filepath.Join(folder, sub.Name+".md")
		fmt.Println("Generating", name)

		file, err := os.Create(name)
		if err != nil {
			panic(err)
		}
		if err := render(file, sub, examples[sub.Name], getVersion()); err != nil {
			panic(err)
		}
		file.Close()
	}
}

// render writes the markdown page of one subcommand.
func render(w io.Writer, sub *cli.Command, examples []Example, version string) error {
	tmpl, err := template.New("md").Parse(markdownTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, TemplateData{
		ID:       sub.Name,
		IDUpper:  strings.ToUpper(sub.Name),
		Short:    sub.Usage,
		Usage:    sub.UsageText,
		Flags:    flags(sub),
		Examples: examples,
		Date:     time.Now().Format("January 2, 2006"),
		Version:  version,
	})
}

// flags describes the flags of sub sorted by primary name.
func flags(sub *cli.Command) []Flag {
	out := make([]Flag, 0, len(sub.Flags))
	for _, f := range sub.Flags {
		var syntax []string
		for _, n := range f.Names() {
			if len(n) == 1 {
				syntax = append(syntax, "-"+n)
			} else {
				syntax = append(syntax, "--"+n)
			}
		}

		var usage string
		if df, ok := f.(cli.DocGenerationFlag); ok {
			usage = df.GetUsage()
		}

		out = append(out, Flag{Syntax: strings.Join(syntax, ", "), Description: usage})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Syntax < out[j].Syntax
	})

	return out
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
