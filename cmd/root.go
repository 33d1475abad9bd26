/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/hexinterp/hexahedra"
)

var (
	cfgFile  string
	profStop interface{ Stop() }
)

var rootCmd = &cobra.Command{
	Use:   "hexinterp",
	Short: "Trilinear interpolation and inverse mapping on hexahedral cells",
	Long: `
Evaluates nodal fields inside eight node hexahedra and maps physical points
back to the cell's parametric coordinates,

hexinterp locate -I case.yaml`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("profile") {
			profStop = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profStop != nil {
			profStop.Stop()
			profStop = nil
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hexinterp.yaml)")
	pf.BoolP("verbose", "v", false, "print solver diagnostics")
	pf.Bool("profile", false, "write a CPU profile to the current directory")
	pf.Int("maxIterations", hexahedra.DefaultMaxIterations, "iteration limit of the inverse mapping")
	pf.Float64("tolerance", hexahedra.DefaultTolerance, "convergence tolerance on the summed parametric increment")
	pf.Bool("fallback", false, "retry failed inverse mappings with a BFGS minimisation")
	for _, name := range []string{"verbose", "profile", "maxIterations", "tolerance", "fallback"} {
		if err := viper.BindPFlag(name, pf.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".hexinterp")
	}
	viper.SetEnvPrefix("HEXINTERP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
