package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile      string
	apiURL       string
	tcpMultiaddr string
	Version      = "0.3.1"
)

var rootCmd = &cobra.Command{
	Use:   "graphseed",
	Short: "Load and populate the assessment graph schema in DefraDB",
	Long: `
graphseed manages the demonstration dataset for the impact-assessment
graph: Projects, Assessments, LatentVariables, Observables, Indicators,
Evidence and their supporting records.

It loads the GraphQL schema into a running DefraDB instance and
populates it with randomized, schema-valid documents, creating every
parent before its children so that all relations resolve.`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("graphseed version %s\n", Version)
			os.Exit(0)
		}
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./graphseed.config.json)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "DefraDB HTTP API URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&tcpMultiaddr, "tcp-multiaddr", "", "DefraDB TCP multiaddress (overrides config)")

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("graphseed.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()

	if apiURL != "" {
		viper.Set("api_url", apiURL)
	}
	if tcpMultiaddr != "" {
		viper.Set("tcp_multiaddr", tcpMultiaddr)
	}
}
