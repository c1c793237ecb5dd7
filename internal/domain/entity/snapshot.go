package entity

import (
	"strings"
	"time"
)

// ClientSnapshot is the complete current list of one user's clients,
// as delivered by a live subscription.
type ClientSnapshot struct {
	Clients  []*Client `json:"clients"`
	ReadTime time.Time `json:"readTime"`
}

// Find returns the client with the given ID, or nil.
func (s *ClientSnapshot) Find(clientID string) *Client {
	for _, client := range s.Clients {
		if client.ID == clientID {
			return client
		}
	}

	return nil
}

// FilterByName keeps the clients whose name contains term, ignoring case.
// An empty term returns the snapshot unchanged.
func (s *ClientSnapshot) FilterByName(term string) *ClientSnapshot {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return s
	}

	filtered := make([]*Client, 0, len(s.Clients))
	for _, client := range s.Clients {
		if strings.Contains(strings.ToLower(client.ClientName), term) {
			filtered = append(filtered, client)
		}
	}

	return &ClientSnapshot{
		Clients:  filtered,
		ReadTime: s.ReadTime,
	}
}
