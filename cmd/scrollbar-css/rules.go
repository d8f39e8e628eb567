package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"bennypowers.dev/scrollbar/internal/color"
	"bennypowers.dev/scrollbar/preset"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ruleInfo and shortcutInfo are the printable forms of the preset tables
type ruleInfo struct {
	Name         string   `yaml:"name"`
	Pattern      string   `yaml:"pattern"`
	Autocomplete []string `yaml:"autocomplete,omitempty"`
}

type shortcutInfo struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
}

type tables struct {
	VarPrefix string         `yaml:"varPrefix,omitempty"`
	Rules     []ruleInfo     `yaml:"rules"`
	Shortcuts []shortcutInfo `yaml:"shortcuts"`

	// Colors are the theme palette names accepted by the color rules
	Colors []string `yaml:"colors"`
}

func describe(p *preset.Preset) tables {
	t := tables{VarPrefix: p.VarPrefix(), Colors: color.PaletteNames()}
	for _, r := range p.Rules() {
		t.Rules = append(t.Rules, ruleInfo{
			Name:         r.Name,
			Pattern:      r.Pattern.String(),
			Autocomplete: r.Autocomplete,
		})
	}
	for _, sc := range p.Shortcuts() {
		info := shortcutInfo{Name: sc.Name}
		for _, item := range sc.Items {
			if item.Literal != nil {
				info.Items = append(info.Items, "{"+item.Literal.String()+"}")
			} else {
				info.Items = append(info.Items, item.Token)
			}
		}
		t.Shortcuts = append(t.Shortcuts, info)
	}
	return t
}

func newRulesCommand() *cobra.Command {
	var (
		root       string
		configPath string
		asYAML     bool
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rule table and shortcuts in match order",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := loadConfig(root, configPath)
			if err != nil {
				return err
			}
			p, err := file.Preset()
			if err != nil {
				return err
			}
			t := describe(p)

			out := cmd.OutOrStdout()
			if asYAML {
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(t); err != nil {
					return err
				}
				return enc.Close()
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tRULE\tPATTERN")
			for i, r := range t.Rules {
				fmt.Fprintf(w, "%d\t%s\t%s\n", i, r.Name, r.Pattern)
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, "SHORTCUT\tEXPANDS TO")
			for _, sc := range t.Shortcuts {
				fmt.Fprintf(w, "%s\t%s\n", sc.Name, strings.Join(sc.Items, " "))
			}
			fmt.Fprintln(w)
			fmt.Fprintf(w, "COLORS\t%s\n", strings.Join(t.Colors, " "))
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "directory to discover configuration in")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "configuration file")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print as YAML")

	return cmd
}
