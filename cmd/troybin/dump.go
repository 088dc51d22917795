package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/moonshadow565/TroyBinary/internal/config"
	"github.com/moonshadow565/TroyBinary/pkg/inibin"
	"github.com/moonshadow565/TroyBinary/pkg/inihash"
	"github.com/moonshadow565/TroyBinary/pkg/names"
)

// entry is one dumped key.
type entry struct {
	Hash  string `yaml:"hash" json:"hash"`
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	Kind  string `yaml:"kind" json:"kind"`
	Value string `yaml:"value" json:"value"`
}

func entries(s *inibin.Store, dict *names.Dictionary) []entry {
	out := make([]entry, 0, s.Size())
	s.Range(func(h inihash.Hash, v inibin.Value) bool {
		name, _ := dict.Lookup(h)
		out = append(out, entry{
			Hash:  h.String(),
			Name:  name,
			Kind:  inibin.KindOf(v).String(),
			Value: inibin.Format(v),
		})
		return true
	})
	return out
}

func writeEntries(w io.Writer, format string, list []entry) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(list); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, e := range list {
			name := e.Name
			if name == "" {
				name = "?"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%q\n", e.Hash, name, e.Kind, e.Value)
		}
		return tw.Flush()
	}
}

func newDumpCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "List every key of a container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadStore(args[0])
			if err != nil {
				return err
			}
			dict, err := a.dictionary()
			if err != nil {
				return err
			}
			learned := dict.Learn(s)
			a.logger.Debug("🔎 Resolving names", "learned_sections", learned, "names", dict.Len())

			list := entries(s, dict)
			a.logger.Info("📋 Dumping container", "path", args[0], "entries", len(list))
			return writeEntries(cmd.OutOrStdout(), a.cfg.Format, list)
		},
	}
	cmd.Flags().StringVarP(&a.flags.Format, "format", "f", "", "Output format (text, yaml, json)")
	cmd.Flags().StringVar(&a.flags.Dictionary, "dict", "", "Extra name dictionary (YAML)")
	return cmd
}
