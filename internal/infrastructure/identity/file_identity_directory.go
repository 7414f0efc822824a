package identity

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"contract_monthly_claim/internal/domain/entities"
	"contract_monthly_claim/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Users []seedUser `yaml:"users"`
}

type seedUser struct {
	Username   string `yaml:"username"`
	FirstName  string `yaml:"first_name"`
	LastName   string `yaml:"last_name"`
	HourlyRate string `yaml:"hourly_rate"`
}

// FileIdentityDirectory serves submitter profiles from a YAML seed file,
// loaded once. It stands in for the identity service in local runs.
type FileIdentityDirectory struct {
	profiles map[string]entities.SubmitterProfile
}

var _ interfaces.IIdentityDirectory = (*FileIdentityDirectory)(nil)

func NewFileIdentityDirectory(path string) (*FileIdentityDirectory, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read identity seed: %w", err)
	}
	d, err := parseSeed(content)
	if err != nil {
		return nil, fmt.Errorf("parse identity seed %s: %w", path, err)
	}
	log.Printf("[identity][store] loaded seed path=%s users=%d", path, len(d.profiles))
	return d, nil
}

func parseSeed(content []byte) (*FileIdentityDirectory, error) {
	var seed seedFile
	if err := yaml.Unmarshal(content, &seed); err != nil {
		return nil, err
	}

	profiles := make(map[string]entities.SubmitterProfile, len(seed.Users))
	for i, u := range seed.Users {
		username := strings.TrimSpace(u.Username)
		if username == "" {
			return nil, fmt.Errorf("users[%d]: username is required", i)
		}
		if _, dup := profiles[username]; dup {
			return nil, fmt.Errorf("users[%d]: duplicate username %q", i, username)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(u.HourlyRate))
		if err != nil {
			return nil, fmt.Errorf("users[%d]: hourly_rate: %w", i, err)
		}
		if rate.IsNegative() {
			return nil, fmt.Errorf("users[%d]: hourly_rate must not be negative", i)
		}
		profiles[username] = entities.SubmitterProfile{
			Username:   username,
			FirstName:  strings.TrimSpace(u.FirstName),
			LastName:   strings.TrimSpace(u.LastName),
			HourlyRate: rate,
		}
	}
	return &FileIdentityDirectory{profiles: profiles}, nil
}

func (d *FileIdentityDirectory) GetProfile(_ context.Context, username string) (entities.SubmitterProfile, error) {
	return d.profiles[username], nil
}
