package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"atomrss/internal/convert"
	"atomrss/internal/inspect"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "atomrss",
		Short: "Atomrss converts Atom feed documents to RSS 2.0",
	}

	rootCmd.AddCommand(convert.Command())
	rootCmd.AddCommand(inspect.Command())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
