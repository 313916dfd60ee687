package contacts

import (
	"github.com/brianvoe/gofakeit/v6"
)

// Fills the book with n randomly generated contacts. The same seed always produces the same contacts.
//
// Generated names may collide with each other or with existing contacts, in which case the existing entry is replaced, so the book may grow by fewer than n.
func Seed(b *Book, n int, seed int64) error {
	faker := gofakeit.New(seed)
	for range n {
		name := FullName(faker.FirstName(), faker.LastName())
		methods := Methods{
			Email:  faker.Email(),
			Mobile: faker.Phone(),
		}
		if faker.Bool() {
			methods[Github] = faker.Username()
		}
		if faker.Bool() {
			methods[Website] = faker.URL()
		}
		if _, err := b.Add(name, methods); err != nil {
			return err
		}
	}
	// seeding is not something to undo
	b.history = nil
	b.logger.Info("seeded contact book", "count", n, "contacts", b.Len())
	return nil
}
