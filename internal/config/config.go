package config

import (
	"encoding/json"
	"fmt"
	"os"
)

const defaultKeepalivePort = 3000

type Config struct {
	Discord struct {
		Token          string `json:"token"`            // bot token: https://discord.com/developers/applications
		ClientID       string `json:"client_id"`        // application id, needed for slash command registration
		GuildID        string `json:"guild_id"`         // the single guild this bot serves
		RoleID         string `json:"role_id"`          // role required to run commands and press approval buttons
		TryoutRoleID   string `json:"tryout_role_id"`   // role pinged by the ot announcement, optional
		EmailChannelID string `json:"email_channel_id"` // channel receiving sendemail submissions, optional
	} `json:"discord"`
	// Minimal HTTP listener so external uptime probes see the bot as alive.
	Keepalive struct {
		Port int `json:"port"`
	} `json:"keepalive"`
}

// Instances new config from json file, but does not check for any missing keys or errors.
func LoadConfig(cfgPath string) (*Config, error) {
	f, err := os.Open(cfgPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config

	err = json.NewDecoder(f).Decode(&cfg)

	return &cfg, err
}

// Checks config for important or missing keys / values and returns error if missing.
//
// Optional keys get their defaults here.
func (c *Config) CheckConfig() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("missing key: discord token")
	}

	if c.Discord.ClientID == "" {
		return fmt.Errorf("missing key: discord client id")
	}

	if c.Discord.GuildID == "" {
		return fmt.Errorf("missing key: discord guild id")
	}

	if c.Discord.RoleID == "" {
		return fmt.Errorf("missing key: discord role id")
	}

	if c.Keepalive.Port == 0 {
		c.Keepalive.Port = defaultKeepalivePort
	}

	if c.Keepalive.Port < 0 || c.Keepalive.Port > 65535 {
		return fmt.Errorf("invalid key: keepalive port %d", c.Keepalive.Port)
	}

	return nil
}
