package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/userregistry/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), os.Args[1:]))
}
