package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from a .env file and config.yaml, with
// environment variables overriding file settings. Keys:
//
//	BOT_TOKEN          - Discord bot token (required)
//	bot.guildId        - the guild the bot serves (required)
//	bot.adminChannelId - channel for operator log embeds (optional)
//	bot.databasePath   - sqlite file location
//
// Runtime settings (inbox channel, block role) live in the database and are
// managed through slash commands, not this file.
func LoadConfig() {
	// Load environment variables from .env, ignored if the file is absent.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, skipping.")
	}

	viper.SetConfigName("config")                          // Config file name (no extension)
	viper.SetConfigType("yaml")                            // Config file type
	viper.AddConfigPath(".")                               // Look in the working directory
	viper.AutomaticEnv()                                   // Read matching environment variables
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // Map '.' in keys to '_' for env lookup

	viper.SetDefault("bot.databasePath", "data/modmail.db")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing config file is fine, environment variables cover it.
			log.Printf("No config.yaml found, using environment variables and defaults.")
		} else {
			panic(fmt.Errorf("fatal error reading config file: %w", err))
		}
	}
}
