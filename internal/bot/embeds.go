package bot

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/spfdivision/discord-warden/internal/banlist"
	"github.com/spfdivision/discord-warden/internal/utils"
)

const embedColor = 0x000000

// Discord rejects embeds with more than 25 fields.
const maxEmbedFields = 25

// Discord rejects embed field values longer than 1024 characters.
const maxFieldValueLen = 1024

func field(name, value string) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{
		Name:   name,
		Value:  utils.TruncateString(utils.StringOrFallback(value, "-"), maxFieldValueLen),
		Inline: true,
	}
}

func formatBanDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// The request summary posted together with the approval buttons.
func blacklistRequestEmbed(req banlist.Request, banDate time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "BLACKLIST",
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			field("USERNAME", req.Username),
			field("ID", req.UserID),
			field("REASON", req.Reason),
			field("DURATION", req.Duration),
			field("PUNISHMENT", string(req.Punishment)),
			field("BAN DATE", formatBanDate(banDate)),
		},
	}
}

func approvedEmbed(req banlist.Request, approvedBy string, banDate time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Punishment Accepted",
		Color:       embedColor,
		Description: fmt.Sprintf("%s has accepted the punishment.", approvedBy),
		Fields: []*discordgo.MessageEmbedField{
			field("Banned User", req.Username),
			field("Ban ID", req.UserID),
			field("Reason", string(req.Punishment)),
			field("Duration", req.Duration),
			field("Ban Date", formatBanDate(banDate)),
		},
	}
}

func deniedEmbed(deniedBy string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Punishment Denied",
		Color:       embedColor,
		Description: fmt.Sprintf("%s has denied the punishment.", deniedBy),
	}
}

func databaseEmbed(records []banlist.Record) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Blacklist Database",
		Color: embedColor,
	}

	if len(records) == 0 {
		embed.Description = "No users are currently banned."
		return embed
	}

	for _, r := range records {
		if len(embed.Fields)+5 > maxEmbedFields {
			embed.Footer = &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("Showing %d of %d banned users.", len(embed.Fields)/5, len(records)),
			}
			break
		}

		embed.Fields = append(embed.Fields,
			field("USERNAME", r.Username),
			field("ID", r.UserID),
			field("BAN LENGTH", r.Duration),
			field("APPROVED BY", r.ApprovedBy),
			field("BAN DATE", formatBanDate(r.BanDate)),
		)
	}

	return embed
}

func emailEmbed(username, email string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "New Gmail Submission!",
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			field("Username", username),
			field("Gmail", email),
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func approvalButtons() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "APPROVED",
					Style:    discordgo.SuccessButton,
					CustomID: customIDApproved,
				},
				discordgo.Button{
					Label:    "DENIED",
					Style:    discordgo.DangerButton,
					CustomID: customIDDenied,
				},
			},
		},
	}
}
