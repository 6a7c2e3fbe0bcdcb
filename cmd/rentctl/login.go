package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	rentora "github.com/rentora/rentora-go"
	"github.com/rentora/rentora-go/session"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and persist the session",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Destroy the persisted session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password (prompted when omitted)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	client, store, err := getClient(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	reader := bufio.NewReader(os.Stdin)
	if email == "" {
		fmt.Print("Email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		email = strings.TrimSpace(line)
	}
	if password == "" {
		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		password = strings.TrimSpace(line)
	}

	resp, err := client.Auth.Login(cmd.Context(), rentora.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("login failed: %s", rentora.ErrorMessage(err))
	}

	if resp.User != nil {
		fmt.Printf("Signed in as %s %s (%s)\n", resp.User.FirstName, resp.User.LastName, resp.User.Role)
	} else {
		fmt.Println("Signed in.")
	}
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	client, store, err := getClient(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := client.Auth.Logout(); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	_, store, err := getClient(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	gate := session.NewGate(store)
	if !gate.IsAuthenticated() {
		fmt.Println("Not signed in.")
		return nil
	}

	s := store.Read()
	if s.User != nil {
		fmt.Printf("%s %s <%s>\n", s.User.FirstName, s.User.LastName, s.User.Email)
	}
	fmt.Printf("Role: %s\n", s.Role)
	return nil
}
