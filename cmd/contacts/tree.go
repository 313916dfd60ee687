package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var cmdTree = &cli.Command{
	Name:   "tree",
	Usage:  "print the search tree layout of a (seeded) contact book",
	Flags:  bookFlags,
	Action: runTree,
}

func runTree(cctx *cli.Context) error {
	logger, done, err := configLogger(cctx)
	if err != nil {
		return err
	}
	defer done()

	book, err := openBook(cctx, logger)
	if err != nil {
		return err
	}
	if err := book.Verify(); err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, book.DebugTree())
	fmt.Fprintf(cctx.App.Writer, "%d contacts\n", book.Len())
	return nil
}
