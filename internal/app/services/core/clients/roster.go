package clients

import (
	_ "embed"
	"fmt"
	"healthcal-service/internal/app/contracts"
	"healthcal-service/internal/app/models"
	"healthcal-service/internal/pkg/utils"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed clients.yaml
var defaultRoster []byte

type rosterFile struct {
	Clients []models.Client `yaml:"clients"`
}

// roster is read-only after load and safe for concurrent use.
type roster struct {
	clients []models.Client
	byID    map[string]int
}

// LoadRoster reads the roster file at path, or the embedded roster when path is empty.
func LoadRoster(path string) (contracts.ClientRoster, error) {
	if path == "" {
		return ParseRoster(defaultRoster)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read client roster %s: %w", path, err)
	}
	return ParseRoster(data)
}

func ParseRoster(data []byte) (contracts.ClientRoster, error) {
	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse client roster: %w", err)
	}

	r := &roster{
		clients: make([]models.Client, 0, len(file.Clients)),
		byID:    make(map[string]int, len(file.Clients)),
	}
	for i, client := range file.Clients {
		client.ID = strings.TrimSpace(client.ID)
		if client.ID == "" {
			return nil, fmt.Errorf("client roster entry %d has no id", i)
		}
		if _, exists := r.byID[client.ID]; exists {
			return nil, fmt.Errorf("client roster has duplicate id %q", client.ID)
		}
		if err := utils.ValidatePhone(client.Phone); err != nil {
			return nil, fmt.Errorf("client roster entry %q: %w", client.ID, err)
		}
		r.byID[client.ID] = len(r.clients)
		r.clients = append(r.clients, client)
	}
	return r, nil
}

func (r *roster) List() []models.Client {
	clients := make([]models.Client, len(r.clients))
	copy(clients, r.clients)
	return clients
}

func (r *roster) FindByID(clientID string) *models.Client {
	index, ok := r.byID[clientID]
	if !ok {
		return nil
	}
	client := r.clients[index]
	return &client
}
