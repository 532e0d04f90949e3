package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// DiscordWebhookService posts rich embeds to Discord channels. All sends
// are fire-and-forget; a dead webhook never blocks a purchase.
type DiscordWebhookService struct {
	webhookStatus string
	webhookDrops  string
	client        *http.Client
}

func NewDiscordWebhookService(status, drops string) *DiscordWebhookService {
	return &DiscordWebhookService{
		webhookStatus: status,
		webhookDrops:  drops,
		client:        &http.Client{Timeout: 10 * time.Second},
	}
}

type discordEmbed struct {
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	Color       int            `json:"color,omitempty"`
	Fields      []discordField `json:"fields,omitempty"`
	Timestamp   string         `json:"timestamp,omitempty"`
}

type discordField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type discordWebhookPayload struct {
	Username string         `json:"username,omitempty"`
	Embeds   []discordEmbed `json:"embeds"`
}

func (s *DiscordWebhookService) send(webhookURL string, payload discordWebhookPayload) {
	if webhookURL == "" {
		return
	}
	go func() {
		body, err := json.Marshal(payload)
		if err != nil {
			log.Printf("[discord-webhook] marshal error: %v", err)
			return
		}
		resp, err := s.client.Post(webhookURL, "application/json", bytes.NewReader(body))
		if err != nil {
			log.Printf("[discord-webhook] send error: %v", err)
			return
		}
		resp.Body.Close()
		if resp.StatusCode >= 400 {
			log.Printf("[discord-webhook] HTTP %d for webhook", resp.StatusCode)
		}
	}()
}

// SendStatus posts a backend lifecycle note to the status channel.
func (s *DiscordWebhookService) SendStatus(message string) {
	s.send(s.webhookStatus, discordWebhookPayload{
		Username: "Gunsmith",
		Embeds: []discordEmbed{{
			Title:       "Backend status",
			Description: message,
			Color:       0x2ECC71,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

// SendRareDrop announces a five-star part purchase to the drops channel.
func (s *DiscordWebhookService) SendRareDrop(username, partName string, price int64, rarity int) {
	s.send(s.webhookDrops, discordWebhookPayload{
		Username: "Gunsmith",
		Embeds: []discordEmbed{{
			Title:       "Legendary part bought",
			Description: fmt.Sprintf("**%s** picked up **%s** %s", username, partName, strings.Repeat("★", rarity)),
			Color:       0xF1C40F,
			Fields: []discordField{
				{Name: "Price", Value: fmt.Sprintf("%d credits", price), Inline: true},
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}},
	})
}
