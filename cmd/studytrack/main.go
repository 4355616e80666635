package main

import (
	"fmt"
	"os"

	"github.com/mwantia/studytrack/cmd/studytrack/cli"
	"github.com/mwantia/studytrack/cmd/studytrack/cli/client"
	"github.com/mwantia/studytrack/cmd/studytrack/cli/server"
)

var (
	version = "0.0.1-dev"
	commit  = "main"
)

func main() {
	root := cli.NewRootCommand(cli.VersionInfo{
		Version: version,
		Commit:  commit,
	})

	root.AddCommand(cli.NewVersionCommand())

	root.AddCommand(server.NewServeCommand())
	root.AddCommand(server.NewConfigCommand())

	root.AddCommand(client.NewItemCommand())
	root.AddCommand(client.NewCategoryCommand())
	root.AddCommand(client.NewTagCommand())
	root.AddCommand(client.NewStatsCommand())

	if err := root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
