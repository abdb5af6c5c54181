package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jsvensson/pigment"
	"github.com/jsvensson/pigment/internal/hclfmt"
	"github.com/jsvensson/pigment/palette"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	flagTo       string
	flagEncoding string
	flagSpace    string
	flagCheck    bool
	flagVerbose  int
	version      = "dev" // Injected at build time via ldflags
)

var log = commonlog.GetLogger("pigment")

var rootCmd = &cobra.Command{
	Use:     "pigment",
	Short:   "Convert, blend, and inspect colors from the command line",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(flagVerbose, nil)
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert COLOR",
	Short: "Convert a color to another representation",
	Long: `Convert a hex color or SVG color name to another representation.

The --to flag selects hex, css, rgb, or hsv output. The --encoding flag
selects the channel encoding for rgb and hsv output: u8, u16, f32, or f64.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

var mixCmd = &cobra.Command{
	Use:   "mix A B T",
	Short: "Blend two colors by a factor in [0, 1]",
	Args:  cobra.ExactArgs(3),
	RunE:  runMix,
}

var invertCmd = &cobra.Command{
	Use:   "invert COLOR",
	Short: "Invert a color",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvert,
}

var namesCmd = &cobra.Command{
	Use:   "names [PREFIX]",
	Short: "List the SVG 1.0 color names",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNames,
}

var paletteCmd = &cobra.Command{
	Use:   "palette FILE",
	Short: "Resolve an HCL palette file and print its entries",
	Args:  cobra.ExactArgs(1),
	RunE:  runPalette,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format palette HCL files",
	Long:  "Format one or more palette HCL files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (can be repeated)")
	convertCmd.Flags().StringVar(&flagTo, "to", "hex", "output representation: hex, css, rgb, hsv")
	convertCmd.Flags().StringVar(&flagEncoding, "encoding", "", "channel encoding: u8, u16, f32, f64")
	mixCmd.Flags().StringVar(&flagSpace, "space", "rgb", "blend space: rgb or hsv")
	invertCmd.Flags().StringVar(&flagSpace, "space", "rgb", "inversion space: rgb or hsv")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(mixCmd)
	rootCmd.AddCommand(invertCmd)
	rootCmd.AddCommand(namesCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

// parseColor accepts a hex string like "#eb6f92" or an SVG color name.
func parseColor(s string) (pigment.Rgb[uint8], error) {
	if c, ok := pigment.ColorByName(s); ok {
		return c, nil
	}
	return pigment.ParseHex(s)
}

func runConvert(cmd *cobra.Command, args []string) error {
	c, err := parseColor(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	switch flagTo {
	case "hex":
		fmt.Fprintln(out, c.Hex())
	case "css":
		fmt.Fprintln(out, c.CSS())
	case "rgb":
		switch flagEncoding {
		case "", "u8":
			fmt.Fprintln(out, c)
		case "u16":
			fmt.Fprintln(out, pigment.ConvertRgb[uint16](c))
		case "f32":
			fmt.Fprintln(out, pigment.ConvertRgb[float32](c))
		case "f64":
			fmt.Fprintln(out, pigment.ConvertRgb[float64](c))
		default:
			return fmt.Errorf("unknown encoding %q", flagEncoding)
		}
	case "hsv":
		switch flagEncoding {
		case "f32":
			fmt.Fprintln(out, pigment.RgbToHsv[float32](c))
		case "", "f64":
			fmt.Fprintln(out, pigment.RgbToHsv[float64](c))
		default:
			return fmt.Errorf("hsv output needs a float encoding, not %q", flagEncoding)
		}
	default:
		return fmt.Errorf("unknown representation %q", flagTo)
	}

	return nil
}

func runMix(cmd *cobra.Command, args []string) error {
	a, err := parseColor(args[0])
	if err != nil {
		return err
	}
	b, err := parseColor(args[1])
	if err != nil {
		return err
	}
	t, err := strconv.ParseFloat(args[2], 64)
	if err != nil || t < 0 || t > 1 {
		return fmt.Errorf("blend factor %q must be a number in [0, 1]", args[2])
	}

	var mixed pigment.Rgb[uint8]
	switch flagSpace {
	case "rgb":
		af := pigment.ConvertRgb[float64](a)
		bf := pigment.ConvertRgb[float64](b)
		mixed = pigment.ConvertRgb[uint8](af.Mix(bf, t))
	case "hsv":
		ah := pigment.RgbToHsv[float64](a)
		bh := pigment.RgbToHsv[float64](b)
		mixed = pigment.HsvToRgb[uint8](ah.Mix(bh, t))
	default:
		return fmt.Errorf("unknown blend space %q", flagSpace)
	}

	fmt.Fprintln(cmd.OutOrStdout(), mixed.Hex())
	return nil
}

func runInvert(cmd *cobra.Command, args []string) error {
	c, err := parseColor(args[0])
	if err != nil {
		return err
	}

	switch flagSpace {
	case "rgb":
		c = c.Invert()
	case "hsv":
		c = pigment.HsvToRgb[uint8](pigment.RgbToHsv[float64](c).Invert())
	default:
		return fmt.Errorf("unknown inversion space %q", flagSpace)
	}

	fmt.Fprintln(cmd.OutOrStdout(), c.Hex())
	return nil
}

func runNames(cmd *cobra.Command, args []string) error {
	prefix := ""
	if len(args) == 1 {
		prefix = strings.ToLower(args[0])
	}

	names := make([]string, 0, len(pigment.Names))
	for name := range pigment.Names {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", name, pigment.Names[name].Hex())
	}
	return nil
}

func runPalette(cmd *cobra.Command, args []string) error {
	p, err := palette.Load(args[0])
	if err != nil {
		return err
	}

	log.Infof("resolved %d palette entries from %s", len(p.Colors), args[0])

	out := cmd.OutOrStdout()
	if p.Meta.Name != "" {
		fmt.Fprintf(out, "# %s", p.Meta.Name)
		if p.Meta.Author != "" {
			fmt.Fprintf(out, " by %s", p.Meta.Author)
		}
		fmt.Fprintln(out)
	}

	for _, name := range p.Order {
		fmt.Fprintf(out, "%-20s %s\n", name, p.Colors[name].Hex())
	}
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if hclfmt.Formatted(data) {
			continue
		}
		formatted := hclfmt.Format(data)

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, formatted, 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
