package bot

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/spfdivision/discord-warden/internal/banlist"
	"github.com/spfdivision/discord-warden/internal/bot/types"
	"github.com/spfdivision/discord-warden/internal/logging"
	"github.com/spfdivision/discord-warden/internal/utils"
)

const (
	// How long the approval buttons stay active.
	approvalTimeout = 15 * time.Second

	customIDApproved = "approved"
	customIDDenied   = "denied"

	tryoutGameLink = "https://www.roblox.com/games/15716438340/SPF"
)

// Routes every interaction the gateway delivers.
func (b *DiscordBot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		b.handleComponent(s, i)
	}
}

func (b *DiscordBot) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	// Commands only make sense inside the guild.
	if i.Member == nil || i.Member.User == nil {
		return
	}

	if !b.MemberHasRole(i.Member) {
		b.replyEphemeral(s, i, "You don't have permission to run this command.")
		return
	}

	data := i.ApplicationCommandData()

	// TODO: implement the probationary command (assign phases roles to
	// the target for 8 days). It is registered but has no handler
	// branch, Discord shows "did not respond" when it is used.
	switch data.Name {
	case "bl":
		b.handleBlacklist(s, i, data)
	case "ot":
		b.handleTryout(s, i, data)
	case "blacklist-database":
		b.handleBlacklistDatabase(s, i)
	case "remove-blacklist":
		b.handleRemoveBlacklist(s, i, data)
	case "sendemail":
		b.handleSendEmail(s, i, data)
	}
}

// Starts the approval workflow for a ban request.
func (b *DiscordBot) handleBlacklist(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	opts := optionMap(data)

	req := banlist.Request{
		UserID:      opts["id"].StringValue(),
		Reason:      opts["reason"].StringValue(),
		Duration:    opts["duration"].StringValue(),
		Punishment:  banlist.Punishment(opts["punishment"].StringValue()),
		RequestedBy: i.Member.User.Username,
	}

	if _, ok := banlist.DurationToMs(req.Duration); !ok {
		b.replyEphemeral(s, i, "Duration must be a number followed by 'd', 'h', 'm', or 'mo'.")
		return
	}

	// Best effort, the id does not have to belong to a reachable user.
	req.Username = "Unknown User"
	if user, err := s.User(req.UserID); err == nil {
		req.Username = user.Username
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{blacklistRequestEmbed(req, time.Now())},
			Components: approvalButtons(),
		},
	})
	if err != nil {
		logging.WriteError(fmt.Sprintf("Failed to post ban request: %s", err.Error()))
		return
	}

	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		logging.WriteError(fmt.Sprintf("Failed to fetch ban request message: %s", err.Error()))
		return
	}

	approval := banlist.NewApproval(req)
	b.trackApproval(msg.ID, approval)

	b.logEvent(types.BanRequested, req.Username, req.UserID, req.RequestedBy, req.Duration)

	channelID := msg.ChannelID

	approval.StartTimeout(approvalTimeout, func() {
		// Nobody reacted. Make the buttons inert, post nothing.
		b.dropApproval(msg.ID)
		b.clearComponents(s, channelID, msg.ID)
		b.logEvent(types.BanTimedOut, req.Username, req.UserID, req.RequestedBy, req.Duration)
	})
}

// Handles the APPROVED / DENIED button presses.
func (b *DiscordBot) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()

	if data.CustomID != customIDApproved && data.CustomID != customIDDenied {
		return
	}

	if i.Member == nil || i.Member.User == nil || i.Message == nil {
		return
	}

	approval, ok := b.lookupApproval(i.Message.ID)
	if !ok {
		// Late press, the request already timed out or was resolved.
		b.replyEphemeral(s, i, "This request has already been resolved.")
		return
	}

	// Unauthorized presses do not consume the timeout or change state.
	if !b.MemberHasRole(i.Member) {
		b.replyEphemeral(s, i, "You don't have permission to use these buttons.")
		return
	}

	// Acknowledge the press right away, the ban call can take a moment.
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		logging.WriteError(fmt.Sprintf("Failed to acknowledge button press: %s", err.Error()))
		return
	}

	b.clearComponents(s, i.ChannelID, i.Message.ID)

	activator := i.Member.User.Username
	req := approval.Request()

	switch data.CustomID {
	case customIDApproved:
		banReason := fmt.Sprintf("%s, Duration: %s", req.Punishment, req.Duration)
		now := time.Now()

		err := approval.Approve(activator, now, func(userID string) error {
			return b.BanUser(userID, banReason)
		}, b.Store)
		if err == banlist.ErrResolved {
			return
		}

		b.dropApproval(i.Message.ID)

		if err != nil {
			logging.WriteError(fmt.Sprintf("Failed to ban %s (%s): %s", req.Username, req.UserID, err.Error()))
			b.followupEphemeral(s, i, "An error occurred while trying to ban the user.")
			return
		}

		b.logEvent(types.BanApproved, req.Username, req.UserID, activator, req.Duration)

		if _, err := s.ChannelMessageSendEmbed(i.ChannelID, approvedEmbed(req, activator, now)); err != nil {
			logging.WriteError(fmt.Sprintf("Failed to post confirmation: %s", err.Error()))
		}
	case customIDDenied:
		if err := approval.Deny(); err != nil {
			return
		}

		b.dropApproval(i.Message.ID)

		b.logEvent(types.BanDenied, req.Username, req.UserID, activator, req.Duration)

		if _, err := s.ChannelMessageSendEmbed(i.ChannelID, deniedEmbed(activator)); err != nil {
			logging.WriteError(fmt.Sprintf("Failed to post denial: %s", err.Error()))
		}
	}
}

func (b *DiscordBot) handleBlacklistDatabase(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{databaseEmbed(b.Store.List())},
		},
	})
	if err != nil {
		logging.WriteError(fmt.Sprintf("Failed to post blacklist database: %s", err.Error()))
	}
}

func (b *DiscordBot) handleRemoveBlacklist(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	userID := optionMap(data)["id"].StringValue()

	if !b.Store.Remove(userID) {
		b.replyEphemeral(s, i, "User ID not found in the blacklist.")
		return
	}

	b.logEvent(types.BanRemoved, "", userID, i.Member.User.Username, "")

	b.replyEphemeral(s, i, fmt.Sprintf("User with ID %s has been removed from the blacklist.", userID))
}

func (b *DiscordBot) handleTryout(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	cohost := "N/A"
	if opt, ok := optionMap(data)["cohost"]; ok {
		if user := opt.UserValue(s); user != nil {
			cohost = fmt.Sprintf("<@%s>", user.ID)
		}
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: buildTryoutMessage(i.Member.User.ID, cohost, b.Config.Discord.TryoutRoleID),
		},
	})
	if err != nil {
		logging.WriteError(fmt.Sprintf("Failed to post tryout message: %s", err.Error()))
	}
}

func (b *DiscordBot) handleSendEmail(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	opts := optionMap(data)
	username := opts["username"].StringValue()
	email := opts["email"].StringValue()

	if b.Config.Discord.EmailChannelID == "" {
		b.replyEphemeral(s, i, "Email channel is not configured.")
		return
	}

	if _, err := s.ChannelMessageSendEmbed(b.Config.Discord.EmailChannelID, emailEmbed(username, email)); err != nil {
		logging.WriteError(fmt.Sprintf("Failed to post email submission: %s", err.Error()))
		b.replyEphemeral(s, i, "Channel not found.")
		return
	}

	b.replyEphemeral(s, i, "Email sent!")
}

func buildTryoutMessage(hostID, cohost, tryoutRoleID string) string {
	ping := ""
	if tryoutRoleID != "" {
		ping = fmt.Sprintf("<@&%s>\n", tryoutRoleID)
	}

	return "**SPECIAL PROTECTION FORCES OBSERVATIONAL TRYOUT**\n" + ping + "\n" +
		fmt.Sprintf("**Host:** <@%s>\n", hostID) +
		fmt.Sprintf("**Co-Host/Supervisor:** %s\n", cohost) +
		fmt.Sprintf("**Game link:** %s\n\n", tryoutGameLink) +
		"Our Entrance Program consists of several stages designed to assess and determine your enthusiasm for joining our team. " +
		"You will be immersed in a four-stage process, during which you will demonstrate your suitability to become an operative within the division and to earn a place with us. " +
		"Both the program and the EP will be challenging, with the aim of testing your skills and abilities, and assessing what you can bring to our team. " +
		"Only those who demonstrate the greatest discipline and determination will be accepted. " +
		"If you are not willing to face these challenges, consider that this process is not right for you.\n\n" +
		"**[AVATAR REGULATIONS]**\n" +
		"[:] You must not equip any accessories.\n" +
		"[:] Use ROBLOX pre-terminated clothing.\n" +
		"[:] Must use the body color 'Very Black'.\n\n" +
		"**Starting within 5 minutes.**"
}

// Maps the interaction options by name, missing optional options are
// simply absent from the map.
func optionMap(data discordgo.ApplicationCommandInteractionData) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(data.Options))
	for _, opt := range data.Options {
		opts[opt.Name] = opt
	}
	return opts
}

func (b *DiscordBot) replyEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		logging.WriteError(fmt.Sprintf("Failed to send ephemeral reply: %s", err.Error()))
	}
}

// Ephemeral notice after the interaction was already acknowledged.
func (b *DiscordBot) followupEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		logging.WriteError(fmt.Sprintf("Failed to send ephemeral followup: %s", err.Error()))
	}
}

// Removes the buttons from a request message so it cannot be pressed anymore.
func (b *DiscordBot) clearComponents(s *discordgo.Session, channelID, messageID string) {
	_, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    channelID,
		ID:         messageID,
		Components: &[]discordgo.MessageComponent{},
	})
	if err != nil {
		logging.WriteError(fmt.Sprintf("Failed to disable buttons on message %s: %s", messageID, err.Error()))
	}
}

// Writes a moderation event as a json line to the app log.
func (b *DiscordBot) logEvent(eventType types.EventType, target, targetID, issuer, duration string) {
	data, err := utils.MarshalStruct(types.BanEvent{
		Target:   target,
		TargetID: targetID,
		Issuer:   issuer,
		Duration: duration,
	})
	if err != nil {
		logging.WriteError(err)
		return
	}

	logging.WriteInfo(fmt.Sprintf("Event %s: %s", eventType, data))
}
