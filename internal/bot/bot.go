package bot

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/spfdivision/discord-warden/internal/banlist"
	"github.com/spfdivision/discord-warden/internal/config"
	"github.com/spfdivision/discord-warden/internal/logging"
)

type DiscordBot struct {
	Session *discordgo.Session
	Config  *config.Config
	Store   *banlist.Store

	// Pending approval requests keyed by the id of the message carrying
	// the buttons. Entries are dropped on any terminal state.
	mu        sync.Mutex
	approvals map[string]*banlist.Approval
}

// Inits a new Discord session and bot instance.
func New(cfg *config.Config, store *banlist.Store) (*DiscordBot, error) {
	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return nil, err
	}

	session.Identify.Intents = discordgo.IntentGuilds | discordgo.IntentGuildMessages | discordgo.IntentMessageContent

	bot := DiscordBot{}

	bot.Session = session
	bot.Config = cfg
	bot.Store = store
	bot.approvals = make(map[string]*banlist.Approval)

	return &bot, nil
}

// Opens the gateway connection. Handlers need to be set up before.
func (b *DiscordBot) Connect() error {
	return b.Session.Open()
}

// This function will block further execution until CTRL+C is hit.
//
// # NOTE: This function will NOT disconnect the bot. Use the default function Disconnect() for that.
func (b *DiscordBot) AwaitCancel() {
	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)
	<-done
	fmt.Println("")
}

// Closes the gateway connection.
func (b *DiscordBot) Disconnect(wg *sync.WaitGroup) error {
	err := b.Session.Close()
	wg.Done()
	return err
}

// General function to setup handlers for all Discord gateway events.
func (b *DiscordBot) SetupHandleFuncs() {
	b.Session.AddHandler(b.onReady)
	b.Session.AddHandler(b.onInteractionCreate)

	logging.WriteSuccess("Setup handle functions for Discord events")
}

func (b *DiscordBot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	logging.WriteSuccess(fmt.Sprintf("Bot connected as %s", r.User.Username))

	if err := s.UpdateWatchStatus(0, "the chat"); err != nil {
		logging.WriteError(fmt.Sprintf("Failed to set presence: %s", err.Error()))
	}
}

// Bans the target user in the configured guild.
func (b *DiscordBot) BanUser(userID, reason string) error {
	return b.Session.GuildBanCreateWithReason(b.Config.Discord.GuildID, userID, reason, 0)
}

// Lifts a guild ban for the target user. Used by the expiry sweeper.
func (b *DiscordBot) UnbanUser(userID string) error {
	return b.Session.GuildBanDelete(b.Config.Discord.GuildID, userID)
}

// Function to check if a member holds the configured moderator role.
func (b *DiscordBot) MemberHasRole(member *discordgo.Member) bool {
	if member == nil {
		return false
	}

	for _, role := range member.Roles {
		if role == b.Config.Discord.RoleID {
			return true
		}
	}

	return false
}

func (b *DiscordBot) trackApproval(messageID string, a *banlist.Approval) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.approvals[messageID] = a
}

func (b *DiscordBot) lookupApproval(messageID string) (*banlist.Approval, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	a, ok := b.approvals[messageID]
	return a, ok
}

func (b *DiscordBot) dropApproval(messageID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.approvals, messageID)
}
