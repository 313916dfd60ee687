package contacts

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ibsatassew/ContactsApp/treemap"
)

var ErrInvalidName = errors.New("contact name is blank")

var ErrNothingToUndo = errors.New("no changes to undo")

// Address book of contacts, ordered by name.
//
// Every change is recorded so that it can be reverted with Undo. A Book is not safe for concurrent use.
type Book struct {
	contacts *treemap.Map[string, Methods]
	history  []*treemap.Operation[string, Methods]
	logger   *slog.Logger
}

type BookConfig struct {
	// Name ordering. Defaults to the natural (byte-wise) ordering of strings.
	Comparator treemap.Comparator[string]
	Logger     *slog.Logger
}

func NewBook(config BookConfig) *Book {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	var m *treemap.Map[string, Methods]
	if config.Comparator != nil {
		m = treemap.NewMapWithComparator[string, Methods](config.Comparator)
	} else {
		m = treemap.NewMap[string, Methods]()
	}
	return &Book{
		contacts: m,
		logger:   logger.With("component", "contacts"),
	}
}

func (b *Book) Len() int {
	return b.contacts.Len()
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}
	return nil
}

func observe(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	bookOperations.WithLabelValues(op, result).Inc()
}

// Looks up a contact by full name. Returns (nil, false, nil) if there is no such contact.
func (b *Book) Search(name string) (ms Methods, found bool, err error) {
	defer func() { observe("search", err) }()
	if err := checkName(name); err != nil {
		return nil, false, err
	}
	return b.contacts.Get(name)
}

// Adds a contact, or replaces the methods of an existing one. The returned operation tells which happened.
func (b *Book) Add(name string, methods Methods) (op *treemap.Operation[string, Methods], err error) {
	defer func() { observe("add", err) }()
	if err := checkName(name); err != nil {
		return nil, err
	}
	if methods == nil {
		methods = Methods{}
	}
	op, err = treemap.ApplyOp(b.contacts, name, &methods)
	if err != nil {
		return nil, fmt.Errorf("adding contact %q: %w", name, err)
	}
	b.record(op)
	if op.IsUpdate() {
		b.logger.Debug("updated contact", "name", name, "methods", len(methods))
	} else {
		b.logger.Debug("added contact", "name", name, "methods", len(methods))
	}
	return op, nil
}

// Removes a contact, returning its methods. Returns (nil, false, nil) if there is no such contact.
func (b *Book) Remove(name string) (ms Methods, found bool, err error) {
	defer func() { observe("remove", err) }()
	if err := checkName(name); err != nil {
		return nil, false, err
	}
	op, err := treemap.ApplyOp[string, Methods](b.contacts, name, nil)
	if err != nil {
		return nil, false, fmt.Errorf("removing contact %q: %w", name, err)
	}
	if !op.IsDelete() {
		return nil, false, nil
	}
	b.record(op)
	b.logger.Debug("removed contact", "name", name)
	return *op.Prev, true, nil
}

func (b *Book) record(op *treemap.Operation[string, Methods]) {
	b.history = append(b.history, op)
	bookContacts.Set(float64(b.contacts.Len()))
}

// Reverts the most recent Add or Remove, returning the operation which was reverted.
func (b *Book) Undo() (op *treemap.Operation[string, Methods], err error) {
	defer func() { observe("undo", err) }()
	if len(b.history) == 0 {
		return nil, ErrNothingToUndo
	}
	op = b.history[len(b.history)-1]
	if err := treemap.InvertOp(b.contacts, op); err != nil {
		return nil, err
	}
	b.history = b.history[:len(b.history)-1]
	bookContacts.Set(float64(b.contacts.Len()))
	b.logger.Debug("reverted change", "name", op.Key)
	return op, nil
}

// Contact names in order.
func (b *Book) Names() []string {
	return b.contacts.Keys()
}

// Contacts and their methods, in name order.
func (b *Book) Entries() []treemap.Entry[string, Methods] {
	return b.contacts.Entries()
}

func listing(title string, lines []string) string {
	return "\n" + title + "\n" + "------------" + "\n" + strings.Join(lines, "\n") + "\n"
}

// Console listing of every contact with its communication methods.
func (b *Book) ListAll() string {
	entries := b.contacts.Entries()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s: %s", e.Key(), e.Value()))
	}
	return listing("All Contacts", lines)
}

// Console listing of contact names.
func (b *Book) ListNames() string {
	return listing("All Contacts Names", b.contacts.Keys())
}

// Console listing of communication methods, one contact per line, in name order.
func (b *Book) ListCommunications() string {
	values := b.contacts.Values()
	lines := make([]string, 0, len(values))
	for _, v := range values {
		lines = append(lines, v.String())
	}
	return listing("All Contacts Communications", lines)
}

// Renders the underlying search tree, for debugging.
func (b *Book) DebugTree() string {
	return b.contacts.DebugTree()
}

// Checks the structure of the underlying search tree.
func (b *Book) Verify() error {
	return b.contacts.Verify()
}
