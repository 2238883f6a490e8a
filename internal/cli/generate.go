package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sevenpixels/datawalk/pkg/pipeline"
)

// generateCommand creates the generate command for producing digit
// sequences without walking them.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		nDigits int
		output  string
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "generate <converter-key>",
		Short: "Generate a digit sequence from a math source",
		Long: `Generate a digit sequence from a generated math source.

Converter keys name the source family and variant, for example:

  math.constant.pi        base-12 digits of pi
  math.fractal.dragon     encoded dragon curve turtle program
  math.mandelbrot.spiral  orbit angles near the Mandelbrot spiral point
  math.sequence.thue_morse

Run 'datawalk list' to see all available keys.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), args[0], nDigits, output, noCache, refresh)
		},
	}

	cmd.Flags().IntVarP(&nDigits, "digits", "n", pipeline.DefaultNDigits, "number of digits to generate")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write digits to file instead of stdout")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache and regenerate")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, key string, nDigits int, output string, noCache, refresh bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Generating %s...", key))
	spinner.Start()
	p := newProgress(c.Logger)

	digits, cacheHit, err := runner.ConvertWithCacheInfo(ctx, pipeline.Options{
		SourceID:  key,
		Converter: key,
		NDigits:   nDigits,
		Refresh:   refresh,
		Logger:    c.Logger,
	})
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()
	p.done(fmt.Sprintf("Generated %d digits", len(digits)))

	var sb strings.Builder
	for i, d := range digits {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", d)
	}
	sb.WriteByte('\n')

	if output != "" {
		if err := os.WriteFile(output, []byte(sb.String()), 0644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		printSuccess("Generated %s", key)
		printFile(output)
	} else {
		fmt.Print(sb.String())
	}
	printStats(len(digits), 0, cacheHit)
	printNextStep("Walk it", fmt.Sprintf("datawalk walk %s", key))

	return nil
}
