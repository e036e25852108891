package handlers

import (
	"errors"
	"fmt"
	"log"

	"modmail-bot/bot"
	"modmail-bot/database"
	"modmail-bot/relay"

	"github.com/bwmarrin/discordgo"
)

// HandleClose handles the logic for the /close command.
func HandleClose(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	codename := i.ApplicationCommandData().Options[0].StringValue()

	if err := b.Router.Close(codename); err != nil {
		if errors.Is(err, relay.ErrUnknownCodename) {
			respond(s, i, fmt.Sprintf("No active conversation is named **%s**. Check the spelling; it may also have been closed already.", codename))
			return
		}
		log.Printf("Error closing %q: %v", codename, err)
		respond(s, i, "There was an error processing your command.")
		return
	}
	respond(s, i, fmt.Sprintf("Closed **%s**. If that user writes again they will get a fresh codename.", codename))
}

// HandleBlock handles the logic for the /block command.
func HandleBlock(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	codename := i.ApplicationCommandData().Options[0].StringValue()

	if err := b.Router.Block(codename); err != nil {
		switch {
		case errors.Is(err, relay.ErrUnknownCodename):
			respond(s, i, fmt.Sprintf("No active conversation is named **%s**. Check the spelling; it may also have been closed already.", codename))
		case errors.Is(err, relay.ErrBlockRoleNotConfigured):
			respond(s, i, "No block role is configured. Run `/blockrole set` first.")
		default:
			log.Printf("Error blocking %q: %v", codename, err)
			respond(s, i, "There was an error processing your command.")
		}
		return
	}
	respond(s, i, fmt.Sprintf("Blocked the user behind **%s** and closed the conversation.", codename))
}

// HandleInbox handles /inbox set and /inbox unset.
func HandleInbox(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	sub := i.ApplicationCommandData().Options[0]

	switch sub.Name {
	case "set":
		// The command definition restricts the option to text channels, so
		// Discord has already validated the type.
		channel := sub.Options[0].ChannelValue(s)
		if err := database.SetSetting(b.DB, database.KeyInbox, channel.ID); err != nil {
			log.Printf("Error setting inbox: %v", err)
			respond(s, i, "There was an error processing your command.")
			return
		}
		respond(s, i, fmt.Sprintf("New conversations will open threads under <#%s>.", channel.ID))
	case "unset":
		if err := database.UnsetSetting(b.DB, database.KeyInbox); err != nil {
			log.Printf("Error unsetting inbox: %v", err)
			respond(s, i, "There was an error processing your command.")
			return
		}
		respond(s, i, "Inbox channel unset. New conversations cannot be opened until it is set again.")
	}
}

// HandleBlockRole handles /blockrole set and /blockrole unset.
func HandleBlockRole(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	sub := i.ApplicationCommandData().Options[0]

	switch sub.Name {
	case "set":
		role := sub.Options[0].RoleValue(s, i.GuildID)
		if err := database.SetSetting(b.DB, database.KeyBlockRole, role.ID); err != nil {
			log.Printf("Error setting block role: %v", err)
			respond(s, i, "There was an error processing your command.")
			return
		}
		respond(s, i, fmt.Sprintf("Messages from users with <@&%s> will now be dropped.", role.ID))
	case "unset":
		if err := database.UnsetSetting(b.DB, database.KeyBlockRole); err != nil {
			log.Printf("Error unsetting block role: %v", err)
			respond(s, i, "There was an error processing your command.")
			return
		}
		respond(s, i, "Block role unset. `/block` is disabled until it is set again.")
	}
}
