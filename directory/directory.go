// Package directory stores the registered ScoreMatch accounts in the
// durable storage port under the single "users" key, as a JSON array.
// Emails are the identity key and are unique case-insensitively;
// accounts are never mutated or deleted once added.
package directory

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/scorematch/scorematch/storage"
)

const usersKey = "users"

// Account is one registered user. The password is stored as given; this
// demo deliberately performs exact-match credential checks.
type Account struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DemoAccounts returns the two fixed accounts seeded into an empty
// directory on first use.
func DemoAccounts() []Account {
	return []Account{
		{Name: "Admin ScoreMatch", Email: "admin@gmail.com", Password: "admin123"},
		{Name: "User Demo", Email: "user@gmail.com", Password: "user123"},
	}
}

// Directory reads and writes the account collection through a durable
// [storage.Store].
type Directory struct {
	store storage.Store
}

// New creates a Directory over the given durable store.
func New(store storage.Store) *Directory {
	return &Directory{store: store}
}

// List returns all registered accounts. A corrupt or unparseable blob
// degrades to an empty list with a logged diagnostic; only backend
// failures surface as errors.
func (d *Directory) List(ctx context.Context) ([]Account, error) {
	raw, ok, err := d.store.Get(ctx, usersKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Account{}, nil
	}

	var accounts []Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		log.Print("scorematch: users blob unparseable, treating directory as empty")
		return []Account{}, nil
	}
	return accounts, nil
}

// Save overwrites the full collection. Callers decide how to surface a
// write failure; in the engine it becomes a warning toast, never a crash.
func (d *Directory) Save(ctx context.Context, accounts []Account) error {
	data, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	return d.store.Set(ctx, usersKey, string(data))
}

// FindByEmail returns the account matching email, case-insensitively.
func (d *Directory) FindByEmail(ctx context.Context, email string) (Account, bool, error) {
	accounts, err := d.List(ctx)
	if err != nil {
		return Account{}, false, err
	}
	needle := strings.ToLower(email)
	for _, a := range accounts {
		if strings.ToLower(a.Email) == needle {
			return a, true, nil
		}
	}
	return Account{}, false, nil
}

// ExistsByEmail reports whether an account with this email is registered.
func (d *Directory) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok, err := d.FindByEmail(ctx, email)
	return ok, err
}

// Add appends the account and persists the collection. The caller must
// already have checked uniqueness; Add does not re-check (the accepted
// same-context signup race from the original demo).
func (d *Directory) Add(ctx context.Context, account Account) error {
	accounts, err := d.List(ctx)
	if err != nil {
		return err
	}
	return d.Save(ctx, append(accounts, account))
}

// Seed inserts the demo accounts if, and only if, the directory is
// empty. It runs on every build and is a no-op after first use.
func (d *Directory) Seed(ctx context.Context) error {
	accounts, err := d.List(ctx)
	if err != nil {
		return err
	}
	if len(accounts) > 0 {
		return nil
	}
	return d.Save(ctx, DemoAccounts())
}
