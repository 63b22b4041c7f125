package main

import (
	"fmt"
	"os"

	"fjacquet/stmtconv/cmd/batch"
	"fjacquet/stmtconv/cmd/compare"
	configcmd "fjacquet/stmtconv/cmd/config"
	"fjacquet/stmtconv/cmd/convert"
	"fjacquet/stmtconv/cmd/root"
	"fjacquet/stmtconv/internal/config"
)

func init() {
	// .env must be loaded before viper reads the environment.
	config.LoadEnv()

	root.Init()

	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(compare.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(configcmd.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
