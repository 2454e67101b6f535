package bot

import (
	"github.com/bwmarrin/discordgo"
)

// Slash command surface of the bot. Registered per guild, not globally,
// so changes show up without the global propagation delay.
func commandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "bl",
			Description: "Ban a specified user with details",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "id",
					Description: "User ID to ban",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "reason",
					Description: "Reason for ban",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "duration",
					Description: "Ban duration (e.g. 14d)",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "punishment",
					Description: "Type of punishment",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "UAB", Value: "UAB"},
						{Name: "AB", Value: "AB"},
					},
				},
			},
		},
		{
			Name:        "probationary",
			Description: "Assign phases roles to a mentioned user for 8 days",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to assign roles",
					Required:    true,
				},
			},
		},
		{
			Name:        "ot",
			Description: "Send an Observational Tryout message",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "cohost",
					Description: "User acting as Co-Host/Supervisor",
					Required:    false,
				},
			},
		},
		{
			Name:        "blacklist-database",
			Description: "Show all banned users with their details",
		},
		{
			Name:        "remove-blacklist",
			Description: "Remove a user from the blacklist using their ID",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "id",
					Description: "User ID to remove",
					Required:    true,
				},
			},
		},
		{
			Name:        "sendemail",
			Description: "Send an email notification",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "username",
					Description: "Username to submit",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "email",
					Description: "Gmail address to submit",
					Required:    true,
				},
			},
		},
	}
}

// Overwrites the guild's command set with the current definitions.
// Commands removed from the definitions disappear from the guild.
func (b *DiscordBot) RegisterCommands() error {
	_, err := b.Session.ApplicationCommandBulkOverwrite(
		b.Config.Discord.ClientID,
		b.Config.Discord.GuildID,
		commandDefinitions(),
	)

	return err
}
