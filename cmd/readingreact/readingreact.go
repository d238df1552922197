package readingreact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zmzlois/readingreact/logging"
)

var cfgFile string

var logCtx = logging.PackageCtx("cmd")

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "readingreact",
	Short: "Serve and render the Reading React docs grids",
	Long: `readingreact keeps the grid layouts of the Reading React docs site.
It imports grid documents into a sqlite file, serves them with the site theme,
and renders them to static HTML at build time.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		bindFlags(cmd, args)

		if verbose {
			slog.SetDefault(slog.New(logging.NewHandler(os.Stderr, true)))
		}
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.readingreact.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "If provided, debug output will be shown")
}

func initConfig() {
	if cfgFile != "" {
		slog.InfoContext(logCtx, "Using config file", "path", cfgFile)
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory and in the working directory with name ".readingreact".
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".readingreact")
	}

	viper.SetEnvPrefix("readingreact")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			slog.ErrorContext(logCtx, "Error reading config file", "error", err)
			os.Exit(1)
		}

		createExampleConfig()
	}

	slog.DebugContext(logCtx, "Config loaded", "path", viper.ConfigFileUsed())
}

const exampleConfig = `port = 3000
storage = "./grids.sqlite"
overflow = "allow"

[theme]
logo = "Reading React"
docs_repository_base = "https://github.com/zmzlois/reading-react"

[theme.project]
link = "https://github.com/zmzlois/reading-react"

[theme.chat]
link = "https://discord.gg/CPWTVStGZQ"

[theme.head]
site_url = "https://reading-react.vercel.app"
twitter_site = "@zmzlois"
default_title = "Reading React"
`

func createExampleConfig() {
	configPath := "./.readingreact.toml"

	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		slog.ErrorContext(logCtx, "Error creating example config file", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(logCtx, "Example config file created", "path", configPath)
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// If using camelCase in the config file, replace hyphens with a camelCased string.
		// Since viper does case-insensitive comparisons, we don't need to bother fixing the case, and only need to remove the hyphens.
		configName := strings.ReplaceAll(f.Name, "-", "")

		if f.Changed || !viper.IsSet(configName) {
			return
		}

		val := viper.Get(configName)

		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
			slog.ErrorContext(logCtx, "Error setting flag from config", "flag", f.Name, "error", err)
			panic(err)
		}

		slog.DebugContext(logCtx, "Flag set to config value", "flag", f.Name, "value", val)
	})
}
