package cli

import (
	"context"
	"log"
	"os"
)

// Login prompts for credentials and opens a session. On success the profile
// is already fetched best effort by the session store.
func (a *App) Login(ctx context.Context) {
	userName, err := GetSimpleText(a.reader, "Enter student id or phone", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if err := a.session.Login(ctx, userName, password); err != nil {
		log.Printf("Login unsuccessfull: %s", err.Error())
		return
	}
	log.Printf("Login successfull")
}

// Logout drops the session and the persisted credential.
func (a *App) Logout(ctx context.Context) {
	if err := a.session.Logout(ctx); err != nil {
		log.Printf("error: %v", err)
		return
	}
	log.Printf("Logged out")
}
