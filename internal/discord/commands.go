package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gunsmith-backend/internal/catalog"
	"gunsmith-backend/internal/repository"
	"gunsmith-backend/internal/service"
	"gunsmith-backend/internal/stats"

	"github.com/bwmarrin/discordgo"
)

// CommandHandler processes bot prefix commands.
type CommandHandler struct {
	playerRepo *repository.PlayerRepository
	cat        *catalog.Catalog
	wsHub      *service.WSHub
}

func NewCommandHandler(
	playerRepo *repository.PlayerRepository,
	cat *catalog.Catalog,
	wsHub *service.WSHub,
) *CommandHandler {
	return &CommandHandler{
		playerRepo: playerRepo,
		cat:        cat,
		wsHub:      wsHub,
	}
}

// Handle dispatches a prefix command.
func (h *CommandHandler) Handle(s *discordgo.Session, m *discordgo.MessageCreate) {
	parts := strings.Fields(m.Content)
	if len(parts) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch strings.ToLower(parts[0]) {
	case "!status":
		h.cmdStatus(s, m)
	case "!player":
		if len(parts) < 2 {
			s.ChannelMessageSend(m.ChannelID, "Usage: `!player <name>`")
			return
		}
		h.cmdPlayer(ctx, s, m, parts[1])
	case "!prices":
		if len(parts) < 2 {
			s.ChannelMessageSend(m.ChannelID, "Usage: `!prices <barrel|magazine|stock|scope>`")
			return
		}
		h.cmdPrices(s, m, parts[1])
	case "!help":
		h.cmdHelp(s, m)
	}
}

func (h *CommandHandler) cmdStatus(s *discordgo.Session, m *discordgo.MessageCreate) {
	online := h.wsHub.OnlineCount()

	embed := &discordgo.MessageEmbed{
		Title: "Gunsmith — Server Status",
		Color: 0x2ECC71,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Players online", Value: fmt.Sprintf("%d", online), Inline: true},
			{Name: "Status", Value: "ONLINE", Inline: true},
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Footer:    &discordgo.MessageEmbedFooter{Text: "Gunsmith"},
	}
	s.ChannelMessageSendEmbed(m.ChannelID, embed)
}

func (h *CommandHandler) cmdPlayer(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, name string) {
	player, err := h.playerRepo.GetByUsername(ctx, name)
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Player `%s` not found.", name))
		return
	}

	profile, err := h.playerRepo.GetProfile(ctx, player.ID)
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Failed to load player profile.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Profile of %s", player.Username),
		Color: 0x00C8FF,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Credits", Value: fmt.Sprintf("%d", player.Credits), Inline: true},
			{Name: "Weapons", Value: fmt.Sprintf("%d", profile.WeaponCount), Inline: true},
			{Name: "Joined", Value: player.CreatedAt.Format("2006-01-02"), Inline: true},
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Footer:    &discordgo.MessageEmbedFooter{Text: "Gunsmith"},
	}
	s.ChannelMessageSendEmbed(m.ChannelID, embed)
}

func (h *CommandHandler) cmdPrices(s *discordgo.Session, m *discordgo.MessageCreate, arg string) {
	partType := stats.PartType(strings.ToLower(arg))
	if !stats.ValidPartType(partType) {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Unknown part type `%s`.", arg))
		return
	}

	fields := make([]*discordgo.MessageEmbedField, 0, catalog.RarityMax)
	for rarity := catalog.RarityMin; rarity <= catalog.RarityMax; rarity++ {
		min, max, ok := h.cat.PriceRange(partType, rarity)
		if !ok {
			continue
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Rarity " + strconv.Itoa(rarity) + " " + strings.Repeat("★", rarity),
			Value:  fmt.Sprintf("%d — %d credits", min, max),
			Inline: true,
		})
	}
	if len(fields) == 0 {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("No price data for `%s`.", arg))
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("Shop prices — %s", partType),
		Color:  0xF1C40F,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{Text: "Gunsmith"},
	}
	s.ChannelMessageSendEmbed(m.ChannelID, embed)
}

func (h *CommandHandler) cmdHelp(s *discordgo.Session, m *discordgo.MessageCreate) {
	embed := &discordgo.MessageEmbed{
		Title: "Gunsmith Bot — Commands",
		Color: 0x00C8FF,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "`!status`", Value: "Show server status and online player count"},
			{Name: "`!player <name>`", Value: "Show a player's public profile"},
			{Name: "`!prices <part type>`", Value: "Show shop price ranges per rarity tier"},
			{Name: "`!help`", Value: "Show this help"},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Gunsmith"},
	}
	s.ChannelMessageSendEmbed(m.ChannelID, embed)
}
