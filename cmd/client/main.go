// Command client is a small smoke-test tool for a running member-gate
// server. It registers or signs in with the given credentials, shows the
// identity the server resolves for the session, and signs out.
//
// Usage:
//
//	client -cmd signup -email alice@example.com -password secret
//	client -cmd login  -email alice@example.com -password secret
//	client -cmd whoami
//	client -cmd logout
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/MKhiriev/go-member-gate/internal/adapter"
	"github.com/MKhiriev/go-member-gate/internal/config"
	"github.com/MKhiriev/go-member-gate/internal/logger"
	"github.com/MKhiriev/go-member-gate/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	command := flag.String("cmd", "whoami", "command to run: signup, login, whoami, logout")
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	flag.Parse()

	log := logger.NewClientLogger("member-gate-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx := context.Background()
	creds := models.Credentials{Email: *email, Password: *password}

	switch *command {
	case "signup":
		user, err := serverAdapter.Signup(ctx, creds)
		if err != nil {
			log.Fatal().Err(err).Msg("signup failed")
		}
		fmt.Printf("signed up and logged in as %s (id %d)\n", user.Email, user.UserID)
		whoami(ctx, serverAdapter, log)

	case "login":
		user, err := serverAdapter.Login(ctx, creds)
		if err != nil {
			log.Fatal().Err(err).Msg("login failed")
		}
		fmt.Printf("logged in as %s (id %d)\n", user.Email, user.UserID)
		whoami(ctx, serverAdapter, log)

	case "whoami":
		whoami(ctx, serverAdapter, log)

	case "logout":
		if err := serverAdapter.Logout(ctx); err != nil {
			log.Fatal().Err(err).Msg("logout failed")
		}
		fmt.Println("logged out")

	default:
		log.Fatal().Str("cmd", *command).Msg("unknown command")
	}
}

func whoami(ctx context.Context, serverAdapter adapter.ServerAdapter, log *logger.Logger) {
	user, ok, err := serverAdapter.UserData(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("user_data failed")
	}
	if !ok {
		fmt.Println("not logged in")
		return
	}
	fmt.Printf("current session: %s (id %d)\n", user.Email, user.UserID)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
