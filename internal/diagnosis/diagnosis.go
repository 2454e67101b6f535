package diagnosis

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spfdivision/discord-warden/internal/config"
	"github.com/spfdivision/discord-warden/internal/logging"
	"github.com/spfdivision/discord-warden/internal/system"
)

const discordStatusURL = "https://discord.com/api/v10/gateway"

// Re-runs the startup checks plus a scan of today's error log and
// reports everything it finds. Meant to help the user figure out why a
// previous run misbehaved, does not start the bot.
func RunDiagnosis(logPath, cfgPath string) (int, error) {
	errCount := 0

	printInfo("Running app in diagnostics mode...")

	printInfo("Loading config from file...")
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		errCount++
		printError(fmt.Sprintf("Error loading config: %s", err.Error()))
		return errCount, nil
	}

	printInfo("Checking config...")
	if err := cfg.CheckConfig(); err != nil {
		errCount++
		printError(fmt.Sprintf("Error checking config: %s", err.Error()))
	}

	// Check the OS for unsupported versions / platforms.
	printInfo("Determining OS platform and version...")

	osV := system.DetermineOS()
	if osV != "linux" {
		errCount++
		printError(fmt.Sprintf("Determined OS \"%s\" may be unsupported (does not match recommended OS Linux)", osV))
	}

	// Check the network's DNS resolution for Discord.
	printInfo("Testing DNS resolution for discord.com...")

	if err := system.TestConnection(); err != nil {
		errCount++
		printError(fmt.Sprintf("Error resolving discord.com: %s", err.Error()))
	}

	// Check that the Discord API answers at all. No auth needed for the
	// gateway endpoint.
	printInfo("Testing connection to the Discord API...")

	client := http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(discordStatusURL)
	if err != nil {
		errCount++
		printError(fmt.Sprintf("Error reaching Discord API: %s", err.Error()))
	} else {
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			errCount++
			printError(fmt.Sprintf("Discord API returned unexpected status: %s", resp.Status))
		}
	}

	// Check the error.log file for information.
	printInfo("Checking error.log file for information...")

	foundErrsLogFile, err := logging.CheckErrorLogs(logPath)
	if err != nil {
		errCount++
		return errCount, err
	}
	if foundErrsLogFile != "" {
		errCount++
		printError(foundErrsLogFile)
	}

	return errCount, nil
}

func printInfo(message string) {
	fmt.Printf("[%s] %s\n", logging.InfoSign, message)
}

func printError(message string) {
	fmt.Printf("[%s] %s\n", logging.ErrorSign, message)
}
