package cli

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/sigerhq/fieldreport/internal/client/identity"
	"github.com/sigerhq/fieldreport/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

const sessionValidity = 12 * time.Hour

// Login prompts for a username and password and starts a local session.
//
// There is no account backend yet: any credentials are accepted, the
// password is wiped without being checked, and reports are filed under the
// configured placeholder user id. The session is still a signed token so
// the flow stays the same once real authentication lands.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	common.WipeByteArray(password)

	token, err := identity.IssueToken(
		identity.Identity{UserID: a.config.UserID, Username: userName},
		[]byte(a.config.SessionSecret), sessionValidity)
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	id, err := identity.ParseToken(token, []byte(a.config.SessionSecret))
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.session = token
	a.identity = id
	log.Printf("Login successful")
	return nil
}

// Logout ends the session and clears any selection and form state.
func (a *App) Logout(ctx context.Context) error {
	a.session = ""
	a.identity = identity.Identity{}
	a.resetForm()
	log.Printf("Logged out")
	return nil
}
