package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultInput  = "equi1.jpeg"
	defaultOutput = "equi2.png"
	envPrefix     = "RECOLOR"
)

var rootCmd = &cobra.Command{
	Use:   "recolor",
	Short: "Paint the bluish pixels of an image teal and everything else white",
	Long: `recolor reads an image, marks every pixel whose blue channel exceeds
twice its red channel and also exceeds its green channel, and writes a
two-color PNG. Run without arguments it converts equi1.jpeg to equi2.png
in the working directory.`,
	Args:          cobra.NoArgs,
	RunE:          runConvert,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	addConvertFlags(rootCmd)
}

// loadConfig layers RECOLOR_* environment variables under the command's flags.
// A flag is bound under its own name unless keys maps it to another config
// key, which keeps a subcommand's output path out of the conversion's
// RECOLOR_OUTPUT.
func loadConfig(cmd *cobra.Command, keys map[string]string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := f.Name
		if k, ok := keys[f.Name]; ok {
			key = k
		}
		if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
			bindErr = fmt.Errorf("binding flag %s: %w", f.Name, err)
		}
	})
	if bindErr != nil {
		return nil, bindErr
	}
	return v, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
