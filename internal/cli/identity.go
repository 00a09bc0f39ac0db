package cli

import (
	"errors"

	"github.com/spf13/pflag"
)

var errNoUser = errors.New("--user is required")

// identity is who operator commands act as.
type identity struct {
	UserID int64
	Name   string
}

func addIdentityFlags(fs *pflag.FlagSet, id *identity) {
	fs.Int64VarP(&id.UserID, "user", "u", 0, "Chat user ID to act as")
	fs.StringVarP(&id.Name, "name", "n", "", "Display name recorded on check-in")
}

func (id *identity) validate() error {
	if id.UserID == 0 {
		return errNoUser
	}
	return nil
}

func (id *identity) displayName() string {
	if id.Name != "" {
		return id.Name
	}
	return "operator"
}
