package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sevenpixels/datawalk/pkg/convert"
	"github.com/sevenpixels/datawalk/pkg/pipeline"
	"github.com/sevenpixels/datawalk/pkg/render"
)

// walkCommand creates the walk command that runs the full pipeline.
func (c *CLI) walkCommand() *cobra.Command {
	var (
		manifestPath string
		dataFile     string
		mappingName  string
		nDigits      int
		maxPoints    int
		format       string
		plane        string
		output       string
		base4        bool
		noCache      bool
		refresh      bool
	)

	cmd := &cobra.Command{
		Use:   "walk <source-id-or-converter-key>",
		Short: "Convert a source and walk it into a 3-D point path",
		Long: `Convert a data source into digits and walk them through space.

The argument is either a source ID from the manifest (its converter,
mapping and data file follow the manifest entry) or a converter key:
a generated math key like math.constant.pi, or a file converter (dna,
audio, finance, cosmos) combined with --data.

Output is a JSON point document by default, or a projected SVG polyline
with --format svg.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := loadManifest(manifestPath)
			if err != nil {
				return fmt.Errorf("load manifest: %w", err)
			}

			opts := pipeline.Options{
				SourceID:  args[0],
				Converter: args[0],
				DataFile:  dataFile,
				NDigits:   nDigits,
				MaxPoints: maxPoints,
				Base4:     base4,
				Refresh:   refresh,
				Logger:    c.Logger,
			}

			// A manifest source ID supplies converter and mapping.
			if src, ok := manifest.Source(args[0]); ok {
				opts.Converter = src.Converter
				if mappingName == "" {
					mappingName = src.Mapping
				}
			}
			opts.Mapping = manifest.Mapping(mappingName)

			return c.runWalk(cmd.Context(), opts, mappingName, format, plane, output, noCache)
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "", "source manifest (YAML); built-in math sources if unset")
	cmd.Flags().StringVar(&dataFile, "data", "", "raw data file for file converters")
	cmd.Flags().StringVarP(&mappingName, "mapping", "m", "", "digit mapping name (default per source, else Identity)")
	cmd.Flags().IntVarP(&nDigits, "digits", "n", pipeline.DefaultNDigits, "digit count for generated sources")
	cmd.Flags().IntVar(&maxPoints, "max-points", pipeline.DefaultMaxPoints, "cap on walked points (-1 for unlimited)")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or svg")
	cmd.Flags().StringVar(&plane, "plane", render.PlaneXY, "SVG projection plane: xy, xz or yz")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write output to file instead of stdout")
	cmd.Flags().BoolVar(&base4, "base4", false, "walk DNA on the base-4 lattice")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the digit cache and reconvert")

	return cmd
}

func (c *CLI) runWalk(ctx context.Context, opts pipeline.Options, mappingName, format, plane, output string, noCache bool) error {
	if !convert.IsGenerated(opts.Converter) && opts.DataFile == "" {
		return fmt.Errorf("converter %q needs --data <file>", opts.Converter)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Walking %s...", opts.SourceID))
	spinner.Start()
	p := newProgress(c.Logger)

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Walk failed")
		return err
	}
	spinner.Stop()
	p.done(fmt.Sprintf("Walked %d digits", result.Stats.DigitCount))

	if mappingName == "" {
		mappingName = "Identity"
	}

	var data []byte
	switch format {
	case "json":
		data, err = render.RenderJSON(result.Points,
			render.WithJSONSource(opts.SourceID, opts.SourceID),
			render.WithJSONMapping(mappingName),
		)
		if err != nil {
			return fmt.Errorf("render points: %w", err)
		}
	case "svg":
		data = render.RenderSVG(result.Points, render.WithPlane(plane))
	default:
		return fmt.Errorf("unknown format %q (json or svg)", format)
	}

	if output != "" {
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		printSuccess("Walked %s", opts.SourceID)
		printFile(output)
	} else {
		if _, err := os.Stdout.Write(data); err != nil {
			return err
		}
	}
	printStats(result.Stats.DigitCount, result.Stats.PointCount,
		result.CacheInfo.ConvertHit && result.CacheInfo.WalkHit)

	return nil
}
