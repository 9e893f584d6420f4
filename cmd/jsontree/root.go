package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "jsontree",
	Short: "Strict JSON parser and validator",
	Long:  "jsontree parses JSON documents with a from-scratch lexer and recursive-descent parser, reporting precise line/column locations for every error.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Int("max-depth", 0, "Maximum nesting depth, 0 for unlimited")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("max_depth", rootCmd.PersistentFlags().Lookup("max-depth"))
}

func initConfig() {
	viper.SetEnvPrefix("JSONTREE")
	viper.AutomaticEnv()
}
