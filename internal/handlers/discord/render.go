package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/mafia/internal/models"
)

// renderMessage converts a game message to a Discord message
func renderMessage(msg *models.Message) *discordgo.MessageSend {
	send := &discordgo.MessageSend{
		Content: msg.Content,
	}

	if msg.Embed != nil {
		embed := &discordgo.MessageEmbed{
			Title:       msg.Embed.Title,
			Description: msg.Embed.Description,
			Color:       msg.Embed.Colour,
		}
		for _, field := range msg.Embed.Fields {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   field.Name,
				Value:  field.Value,
				Inline: false,
			})
		}
		send.Embeds = []*discordgo.MessageEmbed{embed}
	}

	return send
}
