package bot

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/spfdivision/discord-warden/internal/banlist"
	"github.com/spfdivision/discord-warden/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBot() *DiscordBot {
	cfg := &config.Config{}
	cfg.Discord.RoleID = "role-mod"

	return &DiscordBot{
		Config:    cfg,
		Store:     banlist.NewStore(),
		approvals: make(map[string]*banlist.Approval),
	}
}

func TestMemberHasRole(t *testing.T) {
	b := testBot()

	assert.False(t, b.MemberHasRole(nil))
	assert.False(t, b.MemberHasRole(&discordgo.Member{}))
	assert.False(t, b.MemberHasRole(&discordgo.Member{Roles: []string{"other"}}))
	assert.True(t, b.MemberHasRole(&discordgo.Member{Roles: []string{"other", "role-mod"}}))
}

func TestCommandDefinitions(t *testing.T) {
	defs := commandDefinitions()

	names := make(map[string]*discordgo.ApplicationCommand, len(defs))
	for _, def := range defs {
		names[def.Name] = def
	}

	for _, name := range []string{"bl", "probationary", "ot", "blacklist-database", "remove-blacklist", "sendemail"} {
		assert.Contains(t, names, name)
	}

	bl := names["bl"]
	require.Len(t, bl.Options, 4)
	assert.Equal(t, "id", bl.Options[0].Name)
	assert.Equal(t, "punishment", bl.Options[3].Name)
	require.Len(t, bl.Options[3].Choices, 2)
	assert.Equal(t, "UAB", bl.Options[3].Choices[0].Value)
	assert.Equal(t, "AB", bl.Options[3].Choices[1].Value)

	assert.Empty(t, names["blacklist-database"].Options)
	assert.False(t, names["ot"].Options[0].Required)
}

func TestApprovalTracking(t *testing.T) {
	b := testBot()

	a := banlist.NewApproval(banlist.Request{UserID: "42"})
	b.trackApproval("msg-1", a)

	got, ok := b.lookupApproval("msg-1")
	require.True(t, ok)
	assert.Same(t, a, got)

	b.dropApproval("msg-1")
	_, ok = b.lookupApproval("msg-1")
	assert.False(t, ok)
}

func TestBuildTryoutMessage(t *testing.T) {
	msg := buildTryoutMessage("host-1", "<@cohost-2>", "role-7")

	assert.Contains(t, msg, "**Host:** <@host-1>")
	assert.Contains(t, msg, "**Co-Host/Supervisor:** <@cohost-2>")
	assert.Contains(t, msg, "<@&role-7>")
	assert.Contains(t, msg, tryoutGameLink)

	noPing := buildTryoutMessage("host-1", "N/A", "")
	assert.NotContains(t, noPing, "<@&")
	assert.Contains(t, noPing, "**Co-Host/Supervisor:** N/A")
}

func TestDatabaseEmbedEmpty(t *testing.T) {
	embed := databaseEmbed(nil)

	assert.Equal(t, "No users are currently banned.", embed.Description)
	assert.Empty(t, embed.Fields)
}

func TestDatabaseEmbedFields(t *testing.T) {
	records := []banlist.Record{
		{Username: "alpha", UserID: "1", Duration: "14d", ApprovedBy: "mod", BanDate: time.Now()},
		{Username: "beta", UserID: "2", Duration: "3h", ApprovedBy: "mod", BanDate: time.Now()},
	}

	embed := databaseEmbed(records)

	require.Len(t, embed.Fields, 10)
	assert.Equal(t, "alpha", embed.Fields[0].Value)
	assert.Equal(t, "beta", embed.Fields[5].Value)
}

// Embeds cap out at 25 fields, six records do not fit.
func TestDatabaseEmbedCapped(t *testing.T) {
	records := make([]banlist.Record, 6)
	for i := range records {
		records[i] = banlist.Record{Username: "user", UserID: "1", Duration: "1d", ApprovedBy: "mod"}
	}

	embed := databaseEmbed(records)

	assert.Len(t, embed.Fields, 25)
	require.NotNil(t, embed.Footer)
	assert.Equal(t, "Showing 5 of 6 banned users.", embed.Footer.Text)
}

func TestBlacklistRequestEmbed(t *testing.T) {
	req := banlist.Request{
		Username:   "alpha",
		UserID:     "42",
		Reason:     "spam",
		Duration:   "14d",
		Punishment: banlist.PunishmentUAB,
	}

	embed := blacklistRequestEmbed(req, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))

	require.Len(t, embed.Fields, 6)
	assert.Equal(t, "BLACKLIST", embed.Title)
	assert.Equal(t, "UAB", embed.Fields[4].Value)
	assert.Equal(t, "2025-01-02T03:04:05Z", embed.Fields[5].Value)
}

// Empty values would be rejected by the API, the fallback keeps the
// embed postable.
func TestFieldFallback(t *testing.T) {
	f := field("NAME", "")
	assert.Equal(t, "-", f.Value)
}

func TestApprovalButtons(t *testing.T) {
	components := approvalButtons()

	require.Len(t, components, 1)
	row, ok := components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 2)

	approve, ok := row.Components[0].(discordgo.Button)
	require.True(t, ok)
	assert.Equal(t, customIDApproved, approve.CustomID)
	assert.Equal(t, discordgo.SuccessButton, approve.Style)

	deny, ok := row.Components[1].(discordgo.Button)
	require.True(t, ok)
	assert.Equal(t, customIDDenied, deny.CustomID)
	assert.Equal(t, discordgo.DangerButton, deny.Style)
}
