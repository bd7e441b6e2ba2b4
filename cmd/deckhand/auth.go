package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mjholt/deckhand/internal/config"
	"github.com/mjholt/deckhand/pkg/client"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var email, password string
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Email").Value(&email).Validate(requireField("email")),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).
				Value(&password).Validate(requireField("password")),
		))
		if err := form.Run(); err != nil {
			return err
		}

		c := client.New(cfg.APIURL, "")
		auth, err := c.SignIn(context.Background(), email, passwordDigest(password))
		if err != nil {
			return fmt.Errorf("sign in: %w", err)
		}

		if err := newStore(cfg).SetSession(auth.Token, auth.User); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
		fmt.Printf("Signed in as %s <%s>\n", auth.User.Name, auth.User.Email)
		return nil
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var name, email, password string
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Name").Value(&name).Validate(requireField("name")),
			huh.NewInput().Title("Email").Value(&email).Validate(requireField("email")),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).
				Value(&password).Validate(requireField("password")),
		))
		if err := form.Run(); err != nil {
			return err
		}

		digest := passwordDigest(password)
		c := client.New(cfg.APIURL, "")
		user, err := c.SignUp(context.Background(), name, email, digest)
		if err != nil {
			return fmt.Errorf("sign up: %w", err)
		}
		fmt.Printf("Account created for %s\n", user.Email)

		// Sign in right away so the dashboard works without a second step.
		auth, err := c.SignIn(context.Background(), email, digest)
		if err != nil {
			return fmt.Errorf("sign in after signup: %w", err)
		}
		if err := newStore(cfg).SetSession(auth.Token, auth.User); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
		fmt.Printf("Signed in as %s <%s>\n", auth.User.Name, auth.User.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		newStore(cfg).ClearSession()
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		sess := newStore(cfg).GetSession()
		if sess == nil {
			fmt.Println("Not signed in. Run: deckhand login")
			return nil
		}
		fmt.Printf("%s <%s> (session valid until %s)\n",
			sess.User.Name, sess.User.Email, sess.Expiry.Local().Format("2006-01-02 15:04"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, signupCmd, logoutCmd, whoamiCmd)
}

// passwordDigest hashes the password before it leaves the machine. The API
// stores and compares the digest as an opaque string.
func passwordDigest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func requireField(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}
