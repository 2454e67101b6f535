package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/spfdivision/discord-warden/internal/banlist"
	"github.com/spfdivision/discord-warden/internal/bot"
	"github.com/spfdivision/discord-warden/internal/config"
	"github.com/spfdivision/discord-warden/internal/diagnosis"
	"github.com/spfdivision/discord-warden/internal/keepalive"
	"github.com/spfdivision/discord-warden/internal/logging"
	"github.com/spfdivision/discord-warden/internal/system"
	"github.com/spfdivision/discord-warden/internal/updater"
)

// How often the store is scanned for expired bans.
const sweepInterval = time.Hour

func main() {
	startTime := time.Now()

	var updateChecker *time.Ticker

	/*
		Usually the default flags will work fine.
		Check the Makefile or documentation for any configuration questions.
	*/
	logPath := flag.String("l", "./logs", "[REQ] sets the logging path")
	cfgPath := flag.String("c", "./files/config.json", "[REQ] sets config path")

	// Diagnosis mode is designed for the app to parse it's own log files.
	//
	// It will print any results from error.log here to help the user figure out potential errors at runtime.
	diagMode := flag.Bool("d", false, "[OPT] runs the app in diagnosis mode")

	// Prints available app build information.
	versionMode := flag.Bool("v", false, "[OPT] prints the build information of the app")

	// Skip checking for updates on startup and also skip periodic update checks.
	skipUpdates := flag.Bool("su", false, "[OPT] skips updates")

	flag.Parse()

	// Print the version / build information if user wants to, exits after.
	if *versionMode {
		updater.PrintBuildInformationRaw()
		return
	}

	// Let's init the map for clear screen functions for supported OS.
	//
	// Windows, Linux, MacOS - anything else will log.Fatal().
	system.InitClearScreen()

	if !*skipUpdates {
		log.Printf("[%s] Checking for updates...\n", logging.InfoSign)

		// Update check - check for release url.
		updateURL, newVersion, updateChangelog, err := updater.FindLatestReleaseURL()
		if err != nil {
			log.Fatalf("[%s] Error checking for updates: %s", logging.ErrorSign, err.Error())
		}

		// Update check - compare against the running build.
		newVersionAvailable, err := updater.NewerVersionAvailable(newVersion)
		if err != nil {
			log.Fatalf("[%s] Error checking for updates: %s", logging.ErrorSign, err.Error())
		}

		// Update check - perform the actual update.
		if newVersionAvailable {
			log.Printf("[%s] New version available, performing update now...\n", logging.WarnSign)

			if err := updater.DoUpdate(updateURL); err != nil {
				log.Fatalf("[%s] Error performing updates: %s", logging.ErrorSign, err.Error())
			}

			log.Printf("[%s] Update changelog (%s): %s\n", logging.InfoSign, newVersion, updateChangelog)

			log.Printf("[%s] Update successful, please restart the app\n", logging.SuccessSign)

			return
		}

		log.Printf("[%s] App is up to date\n", logging.SuccessSign)

		// Update check - setup periodic update check.
		updateChecker = time.NewTicker(24 * time.Hour)
		go func() {
			for range updateChecker.C {
				newVersion, err := updater.PeriodicUpdateCheck()
				if err != nil {
					logging.WriteError(fmt.Sprintf("Error on periodic update check: %s", err.Error()))
					continue
				}

				if newVersion != "" {
					logging.WriteWarn(fmt.Sprintf("New version available (%s). Please restart your app soon", newVersion))
				}
			}
		}()

		log.Printf("[%s] Set up periodic update check (24 hours)\n", logging.SuccessSign)
	} else {
		log.Printf("[%s] Skipping updates...\n", logging.InfoSign)
	}

	system.CallClear()

	if err := logging.CreateLogsDirectory(*logPath); err != nil {
		log.Fatalf("[%s] Error creating logs directory: %s", logging.ErrorSign, err.Error())
	}

	if err := logging.CreateFileLoggers(); err != nil {
		log.Fatalf("[%s] Error creating log files: %s", logging.ErrorSign, err.Error())
	}

	logging.CreateConsoleLoggers()

	// ! It's safe to use the logging.WriteX methods from here.

	// Run diagnosis if user wishes to.
	if *diagMode {
		errCount, err := diagnosis.RunDiagnosis(*logPath, *cfgPath)
		if err != nil {
			log.Fatalf("Error running diagnosis: %s", err.Error())
		}
		fmt.Printf("\n[S] Total errors found: %d\n", errCount)
		return
	}

	// Runtime check since this program is meant to run headless on Linux.
	osV := system.DetermineOS()
	if osV == "unknown" {
		logging.WriteError("Unsupported OS, exiting.")
		os.Exit(1)
	}

	// Test DNS resolution so we know if we are connected to a network.
	if err := system.TestConnection(); err != nil {
		logging.WriteError(err)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*cfgPath)
	if err != nil {
		logging.WriteError(err)
		os.Exit(1)
	}

	logging.WriteSuccess("Successfully loaded config")

	if err := cfg.CheckConfig(); err != nil {
		logging.WriteError(err)
		os.Exit(1)
	}

	logging.WriteSuccess("Successfully checked config")

	// Keepalive endpoint so external uptime probes see the bot as alive.
	keepaliveServer := keepalive.New(cfg.Keepalive.Port)
	keepaliveServer.Start()

	// The ban store is in-memory only, a restart clears all records.
	store := banlist.NewStore()

	warden, err := bot.New(cfg, store)
	if err != nil {
		logging.WriteError(err)
		os.Exit(1)
	}

	// Setup needed functions to handle Discord events.
	warden.SetupHandleFuncs()

	// Slash command registration goes through the REST API, no gateway
	// connection needed yet.
	if err := warden.RegisterCommands(); err != nil {
		logging.WriteError(err)
		os.Exit(1)
	}

	logging.WriteSuccess("Successfully registered slash commands")

	// Periodically lift bans whose duration elapsed.
	sweeper := banlist.NewSweeper(store, sweepInterval, warden.UnbanUser)
	sweeper.Start()

	logging.WriteSuccess(fmt.Sprintf("Started ban expiry sweeper (%s interval)", sweepInterval))

	if err := warden.Connect(); err != nil {
		logging.WriteError(err)
		os.Exit(1)
	}

	logging.WriteSuccess("Successfully connected to Discord")

	logging.WriteInfo(fmt.Sprintf("Initiating app took %.2f second(s)", time.Since(startTime).Seconds()))

	logging.WriteInfo("Press CTRL+C to shutdown the app")

	// Wait for CTRL+C for app exit.
	warden.AwaitCancel()

	logging.WriteInfo("Received CTRL+C, shutting down...")

	// !APP EXIT

	sweeper.Stop()

	if err := keepaliveServer.Shutdown(); err != nil {
		logging.WriteError(err)
	}

	// Wait group to handle async events.
	wg := &sync.WaitGroup{}

	// Disconnect from Discord.
	wg.Add(1)
	if err := warden.Disconnect(wg); err != nil {
		logging.WriteError(err)
	}

	logging.WriteSuccess("Successfully disconnected from Discord")

	// Stop goroutines before exit so they do not (potentially) leak.
	// Need to check if we actually set up a periodic update checker.
	// Else we get a null pointer deference and the app panics.
	if !*skipUpdates {
		updateChecker.Stop()
	}

	// DO NOT USE CONSOLE OR FILE LOGGERS AT THIS POINT ANYMORE
	wg.Add(1)
	if err := logging.CloseLogFiles(); err != nil {
		log.Fatalf("[%s] Error closing logs: %s", logging.ErrorSign, err.Error())
	}
	wg.Done()

	log.Printf("[%s] Successfully closed log files and loggers\n", logging.SuccessSign)

	wg.Wait() // Wait for all operations to finish before exiting app.

	log.Printf("[%s] App ran for %.2f second(s)", logging.InfoSign, time.Since(startTime).Seconds())
}
