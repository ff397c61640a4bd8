// Command seed populates a local development database with a demo server,
// channel, members and a conversation, and prints a bearer token per profile
// so the HTTP surface can be exercised immediately.
package main

import (
	"fmt"
	"os"
	"time"

	"concord/auth"
	"concord/domain"
	"concord/internal"
	"concord/repositories"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Seed terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() { _ = db.Close() }()

	scopes := repositories.NewScopeRepository(db, logger)

	if err := scopes.CreateServer(domain.Server{ID: "server-demo", Name: "demo"}); err != nil {
		return exitRuntime, err
	}
	if err := scopes.CreateChannel(domain.Channel{ID: "chan-general", ServerID: "server-demo", Name: "general"}); err != nil {
		return exitRuntime, err
	}

	profiles := []struct {
		name string
		role domain.Role
	}{
		{"alice", domain.RoleAdmin},
		{"bob", domain.RoleGuest},
		{"clara", domain.RoleModerator},
	}

	members := make(map[string]domain.Member, len(profiles))
	for _, p := range profiles {
		member := domain.Member{
			ID:        uuid.NewString(),
			ProfileID: "profile-" + p.name,
			Role:      p.role,
			Profile:   domain.Profile{ID: "profile-" + p.name, Name: p.name},
		}
		if err := scopes.AddMember("server-demo", member); err != nil {
			return exitRuntime, err
		}
		members[p.name] = member
	}

	// A direct conversation between alice and bob; conversation members carry
	// no role, so the snapshots drop it.
	alice, bob := members["alice"], members["bob"]
	alice.Role, bob.Role = "", ""
	alice.ID, bob.ID = uuid.NewString(), uuid.NewString()
	if err := scopes.CreateConversation(domain.Conversation{
		ID:        "conv-alice-bob",
		MemberOne: alice,
		MemberTwo: bob,
	}); err != nil {
		return exitRuntime, err
	}

	for _, p := range profiles {
		token, err := auth.GenerateToken([]byte(config.JWTSecret), "profile-"+p.name, p.name, 24*time.Hour)
		if err != nil {
			return exitRuntime, err
		}
		fmt.Printf("%s (%s): Bearer %s\n", p.name, p.role, token)
	}

	logger.Info("Seeded demo server, channel, members and conversation")
	return exitOK, nil
}
