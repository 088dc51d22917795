package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/moonshadow565/TroyBinary/internal/config"
	"github.com/moonshadow565/TroyBinary/pkg/particle"
)

type emitterSummary struct {
	Name      string  `yaml:"name" json:"name"`
	Lifetime  float32 `yaml:"lifetime" json:"lifetime"`
	Rate      string  `yaml:"rate" json:"rate"`
	RateKeys  int     `yaml:"rate_keys,omitempty" json:"rate_keys,omitempty"`
	Fields    int     `yaml:"fields,omitempty" json:"fields,omitempty"`
	Fluid     string  `yaml:"fluid,omitempty" json:"fluid,omitempty"`
	Overrides int     `yaml:"material_overrides,omitempty" json:"material_overrides,omitempty"`
}

type groupSummary struct {
	Name       string           `yaml:"name" json:"name"`
	Type       string           `yaml:"type" json:"type"`
	Importance string           `yaml:"importance" json:"importance"`
	Texture    string           `yaml:"texture,omitempty" json:"texture,omitempty"`
	Emitters   []emitterSummary `yaml:"emitters" json:"emitters"`
}

type systemSummary struct {
	VisibilityRadius float32        `yaml:"visibility_radius" json:"visibility_radius"`
	BuildUpTime      float32        `yaml:"build_up_time" json:"build_up_time"`
	Flags            string         `yaml:"flags" json:"flags"`
	SoundOnCreate    string         `yaml:"sound_on_create,omitempty" json:"sound_on_create,omitempty"`
	SoundPersistent  string         `yaml:"sound_persistent,omitempty" json:"sound_persistent,omitempty"`
	Groups           []groupSummary `yaml:"groups" json:"groups"`
}

func fluidName(f *particle.FluidsDef) string {
	if f == nil {
		return ""
	}
	return f.Name
}

func summarize(sys *particle.System) systemSummary {
	out := systemSummary{
		VisibilityRadius: sys.VisibilityRadius,
		BuildUpTime:      sys.BuildUpTime,
		Flags:            fmt.Sprintf("0x%02x", sys.Flags),
		SoundOnCreate:    sys.Sounds.OnCreate,
		SoundPersistent:  sys.Sounds.Persistent,
	}
	for _, p := range sys.Simple {
		g := groupSummary{
			Name:       p.Name,
			Type:       "Simple",
			Importance: p.Importance.String(),
			Texture:    p.Texture,
		}
		for _, em := range p.Emitters {
			g.Emitters = append(g.Emitters, emitterSummary{
				Name:      em.Name,
				Lifetime:  em.Timing.Lifetime,
				Rate:      em.Rate.Base.String(),
				RateKeys:  len(em.Rate.Keys),
				Fields:    em.Fields.Len(),
				Fluid:     fluidName(em.Fluid),
				Overrides: len(em.MaterialOverrides.Active()),
			})
		}
		out.Groups = append(out.Groups, g)
	}
	for _, em := range sys.Complex {
		out.Groups = append(out.Groups, groupSummary{
			Name:       em.Name,
			Type:       "Complex",
			Importance: em.Importance.String(),
			Texture:    em.Texture,
			Emitters: []emitterSummary{{
				Name:      em.Name,
				Lifetime:  em.Timing.Lifetime,
				Rate:      em.Rate.Base.String(),
				RateKeys:  len(em.Rate.Keys),
				Fluid:     fluidName(em.Fluid),
				Overrides: len(em.MaterialOverrides.Active()),
			}},
		})
	}
	return out
}

func writeSummary(w io.Writer, format string, sum systemSummary) error {
	switch format {
	case config.FormatYAML:
		return yaml.NewEncoder(w).Encode(sum)
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	}
	fmt.Fprintf(w, "system: %d groups, visibility %s, flags %s\n",
		len(sum.Groups), particle.Float(sum.VisibilityRadius), sum.Flags)
	for _, g := range sum.Groups {
		fmt.Fprintf(w, "  %s %q importance=%s\n", g.Type, g.Name, g.Importance)
		for _, em := range g.Emitters {
			fmt.Fprintf(w, "    emitter %q lifetime=%s rate=%s", em.Name, particle.Float(em.Lifetime), em.Rate)
			if em.RateKeys > 0 {
				fmt.Fprintf(w, " (%d keys)", em.RateKeys)
			}
			if em.Fields > 0 {
				fmt.Fprintf(w, " fields=%d", em.Fields)
			}
			if em.Fluid != "" {
				fmt.Fprintf(w, " fluid=%q", em.Fluid)
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}

func newParticlesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "particles FILE",
		Short: "Summarize the particle system of a container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadStore(args[0])
			if err != nil {
				return err
			}
			loader := particle.NewLoader(s, particle.WithLogger(a.logger.Named("particle")))
			sys := loader.System()
			if sys.Groups() == 0 {
				a.logger.Warn("⚠️ No particle groups found", "path", args[0])
			}
			return writeSummary(cmd.OutOrStdout(), a.cfg.Format, summarize(sys))
		},
	}
	cmd.Flags().StringVarP(&a.flags.Format, "format", "f", "", "Output format (text, yaml, json)")
	return cmd
}
