package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ibsatassew/ContactsApp/contacts"

	"github.com/urfave/cli/v2"
)

var cmdMenu = &cli.Command{
	Name:   "menu",
	Usage:  "interactive contact manager session (the default)",
	Flags:  bookFlags,
	Action: runMenu,
}

func runMenu(cctx *cli.Context) error {
	logger, done, err := configLogger(cctx)
	if err != nil {
		return err
	}
	defer done()
	srv, _, err := startMetrics(cctx.String("metrics-listen"), logger)
	if err != nil {
		return err
	}
	if srv != nil {
		defer srv.Close()
	}

	book, err := openBook(cctx, logger)
	if err != nil {
		return err
	}
	c := newConsole(book, cctx.App.Reader, cctx.App.Writer, logger)
	return c.run()
}

var errEndSession = errors.New("session ended")

type console struct {
	book   *contacts.Book
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
}

func newConsole(book *contacts.Book, in io.Reader, out io.Writer, logger *slog.Logger) *console {
	return &console{
		book:   book,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

func (c *console) present() {
	fmt.Fprintln(c.out, "\nContact Manager Menu")
	fmt.Fprintln(c.out, "--------------------")
	fmt.Fprintln(c.out, "1 - Search for a contact")
	fmt.Fprintln(c.out, "2 - Add a new contact")
	fmt.Fprintln(c.out, "3 - Remove contact")
	fmt.Fprintln(c.out, "4 - List all information for all contacts")
	fmt.Fprintln(c.out, "5 - List all contact names")
	fmt.Fprintln(c.out, "6 - List all contact communications")
	fmt.Fprintln(c.out, "7 - Undo the last change")
	fmt.Fprintln(c.out, "---")
	fmt.Fprintln(c.out, "8 - End this contact manager session.")
	fmt.Fprint(c.out, "\nMenu choice: ")
}

// reads one trimmed line; io.EOF once input is exhausted
func (c *console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// Runs the menu loop until the session is ended or input runs out.
func (c *console) run() error {
	for {
		c.present()
		line, err := c.readLine()
		if err == io.EOF {
			fmt.Fprintln(c.out)
			return nil
		}
		if err != nil {
			return err
		}
		selection, err := strconv.Atoi(line)
		if err != nil {
			selection = 0
		}
		err = c.dispatch(selection)
		if errors.Is(err, errEndSession) {
			return nil
		}
		if err == io.EOF {
			fmt.Fprintln(c.out)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *console) dispatch(selection int) error {
	switch selection {
	case 1:
		return c.searchForContact()
	case 2:
		return c.addContact()
	case 3:
		return c.removeContact()
	case 4:
		fmt.Fprint(c.out, c.book.ListAll())
	case 5:
		fmt.Fprint(c.out, c.book.ListNames())
	case 6:
		fmt.Fprint(c.out, c.book.ListCommunications())
	case 7:
		return c.undo()
	case 8:
		return errEndSession
	default:
		fmt.Fprintln(c.out, "Select a menu choice from 1 to 8.")
	}
	return nil
}

// Prompts for first and last name. Returns "Last, First", or "" if either was blank.
func (c *console) promptFullName() (string, error) {
	fmt.Fprint(c.out, "  First name: ")
	first, err := c.readLine()
	if err != nil {
		return "", err
	}
	fmt.Fprint(c.out, "  Last name: ")
	last, err := c.readLine()
	if err != nil {
		return "", err
	}
	return contacts.FullName(first, last), nil
}

func (c *console) invalidName(name string) {
	fmt.Fprintf(c.out, "The contact's first or last name (%s) was invalid.\n", name)
}

func (c *console) searchForContact() error {
	fmt.Fprintln(c.out, "Search for contact:")
	name, err := c.promptFullName()
	if err != nil {
		return err
	}
	if name == "" {
		c.invalidName(name)
		return nil
	}
	methods, found, err := c.book.Search(name)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintf(c.out, "'%s' was not found.\n", name)
		return nil
	}
	fmt.Fprintf(c.out, "Contact found for %s: %s\n", name, methods)
	return nil
}

func (c *console) addContact() error {
	fmt.Fprintln(c.out, "Add contact:")
	name, err := c.promptFullName()
	if err != nil {
		return err
	}
	if name == "" {
		c.invalidName(name)
		return nil
	}

	fmt.Fprintln(c.out, "  Communication options example: website: www.oceanfutures.org, m: 805-899-8899")
	fmt.Fprint(c.out, "  Communication options: ")
	raw, err := c.readLine()
	if err != nil {
		return err
	}
	methods, err := contacts.ParseMethods(raw)
	if errors.Is(err, contacts.ErrUnknownMethod) {
		fmt.Fprintf(c.out, "Media option in '%s' not recognized.\n", raw)
		return nil
	}
	if err != nil {
		return err
	}
	op, err := c.book.Add(name, methods)
	if err != nil {
		return err
	}
	if op.IsUpdate() {
		fmt.Fprintf(c.out, "Contact updated: %s: %s\n", name, methods)
	} else {
		fmt.Fprintf(c.out, "Contact added: %s: %s\n", name, methods)
	}
	return nil
}

func (c *console) removeContact() error {
	fmt.Fprintln(c.out, "Remove contact:")
	name, err := c.promptFullName()
	if err != nil {
		return err
	}
	if name == "" {
		c.invalidName(name)
		return nil
	}
	_, found, err := c.book.Remove(name)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintf(c.out, "No contact entry found for %s\n", name)
		return nil
	}
	fmt.Fprintf(c.out, "The contact `%s` has been removed.\n", name)
	return nil
}

func (c *console) undo() error {
	op, err := c.book.Undo()
	if errors.Is(err, contacts.ErrNothingToUndo) {
		fmt.Fprintln(c.out, "Nothing to undo.")
		return nil
	}
	if err != nil {
		return err
	}
	switch {
	case op.IsCreate():
		fmt.Fprintf(c.out, "Undid adding `%s`.\n", op.Key)
	case op.IsUpdate():
		fmt.Fprintf(c.out, "Restored previous communications for `%s`.\n", op.Key)
	case op.IsDelete():
		fmt.Fprintf(c.out, "Restored `%s`.\n", op.Key)
	}
	return nil
}
