package cmd

import (
	"fmt"
	"os"

	"github.com/carlmjohnson/versioninfo"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/svannberg/rig/internal"
	"github.com/svannberg/rig/internal/constants"
	"github.com/svannberg/rig/internal/keymap"
	"github.com/svannberg/rig/internal/vlist"
)

var (
	// Version is public so users can optionally specify or override the version
	// at build time by passing in ldflags, e.g.
	//   go build -ldflags "-X github.com/svannberg/rig/cmd.Version=vX.Y.Z"
	Version = ""
)

type arg struct {
	cliShort, cfgFileEnvVar, description string
	isInt                                bool
	defaultIfInt                         int
	defaultString                        string
}

var (
	rootNameToArg = map[string]arg{
		"help": {
			description: `Print usage`,
		},
		"page-size": {
			cliShort:      "p",
			cfgFileEnvVar: "page-size",
			description:   `Items fetched per page by the infinite loader`,
			isInt:         true,
			defaultIfInt:  constants.PageSize,
		},
		"overscan": {
			cfgFileEnvVar: "overscan",
			description:   `Extra items rendered beyond each viewport edge`,
			isInt:         true,
			defaultIfInt:  vlist.DefaultOverscan,
		},
		"estimate": {
			cfgFileEnvVar: "estimate",
			description:   `Assumed item height in lines before measurement`,
			isInt:         true,
			defaultIfInt:  2,
		},
		"load-threshold": {
			cfgFileEnvVar: "load-threshold",
			description:   `How close to the last loaded item the window gets before the next page loads`,
			isInt:         true,
			defaultIfInt:  vlist.DefaultLoadThreshold,
		},
		"virtualize-threshold": {
			cfgFileEnvVar: "virtualize-threshold",
			description:   `Item count above which lists switch to windowed rendering`,
			isInt:         true,
			defaultIfInt:  vlist.DefaultVirtualizeThreshold,
		},
		"seed": {
			cfgFileEnvVar: "seed",
			description:   `Seed for the generated fleet data`,
			isInt:         true,
			defaultIfInt:  61,
		},
		"items": {
			cliShort:      "n",
			cfgFileEnvVar: "items",
			description:   `Number of generated events and inspections`,
			isInt:         true,
			defaultIfInt:  1000,
		},
		"fail-every": {
			cfgFileEnvVar: "fail-every",
			description:   `Make every Nth page load fail, for demoing the retry flow. 0 disables`,
			isInt:         true,
			defaultIfInt:  0,
		},
	}

	description = fmt.Sprintf(`rig %s

rig is an interactive terminal dashboard for crane fleet maintenance:
events, inspections, and reports in windowed lists that stay responsive
at any list length.`,
		getVersion(),
	)

	rootCmd = &cobra.Command{
		Use:   "rig",
		Short: "rig: crane fleet maintenance dashboard",
		Long:  description,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, rootNameToArg)
		},
		Run:     mainEntrypoint,
		Version: getVersion(),
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cliLong := "help"
	rootCmd.PersistentFlags().BoolP(cliLong, rootNameToArg[cliLong].cliShort, false, rootNameToArg[cliLong].description)

	for _, cliLong = range []string{
		"page-size",
		"overscan",
		"estimate",
		"load-threshold",
		"virtualize-threshold",
		"seed",
		"items",
		"fail-every",
	} {
		c := rootNameToArg[cliLong]
		if c.isInt {
			rootCmd.PersistentFlags().IntP(cliLong, c.cliShort, c.defaultIfInt, c.description)
		} else {
			rootCmd.PersistentFlags().StringP(cliLong, c.cliShort, c.defaultString, c.description)
		}
		_ = viper.BindPFlag(cliLong, rootCmd.PersistentFlags().Lookup(c.cfgFileEnvVar))
	}
	rootCmd.SetVersionTemplate(`{{printf "rig %s\n" .Version}}`)
	rootCmd.Flags().BoolP("version", "v", false, "Show rig version")
}

func initConfig(cmd *cobra.Command, nameToArg map[string]arg) error {
	// bind viper to RIG_* env vars
	viper.SetEnvPrefix("RIG")
	viper.AutomaticEnv()

	bindFlags(cmd, nameToArg)
	return nil
}

func bindFlags(cmd *cobra.Command, nameToArg map[string]arg) {
	v := viper.GetViper()
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		cliLong := f.Name
		viperName := nameToArg[cliLong].cfgFileEnvVar

		// apply the viper value when the flag was not set on the command line
		// and viper has one from a config file or env var
		if !f.Changed && v.IsSet(viperName) {
			val := v.Get(viperName)
			err := cmd.Flags().Set(cliLong, fmt.Sprintf("%v", val))
			if err != nil {
				fmt.Printf("error setting flag %s: %v\n", cliLong, err)
				os.Exit(1)
			}
		}
	})
}

func mainEntrypoint(cmd *cobra.Command, _ []string) {
	initialModel, options := setup(cmd)
	program := tea.NewProgram(initialModel, options...)

	if _, err := program.Run(); err != nil {
		fmt.Printf("error on rig startup: %v", err)
		os.Exit(1)
	}
}

func getVersion() string {
	if Version != "" {
		return Version
	}
	return versioninfo.Short()
}

func getInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		fmt.Printf("error parsing %s: %v\n", name, err)
		os.Exit(1)
	}
	return val
}

func getConfig(cmd *cobra.Command) internal.Config {
	pageSize := getInt(cmd, "page-size")
	if pageSize <= 0 {
		fmt.Println("error: page-size must be positive")
		os.Exit(1)
	}
	items := getInt(cmd, "items")
	if items < 0 {
		fmt.Println("error: items must be non-negative")
		os.Exit(1)
	}
	return internal.Config{
		KeyMap:              keymap.DefaultKeyMap(),
		PageSize:            pageSize,
		Overscan:            getInt(cmd, "overscan"),
		ItemHeightEstimate:  getInt(cmd, "estimate"),
		LoadThreshold:       getInt(cmd, "load-threshold"),
		VirtualizeThreshold: getInt(cmd, "virtualize-threshold"),
		Seed:                int64(getInt(cmd, "seed")),
		Items:               items,
		FailEvery:           getInt(cmd, "fail-every"),
		Version:             getVersion(),
	}
}

func setup(cmd *cobra.Command) (internal.Model, []tea.ProgramOption) {
	initialModel := internal.InitialModel(getConfig(cmd))
	return initialModel, []tea.ProgramOption{tea.WithAltScreen()}
}
