package handlers

import (
	"log"

	"modmail-bot/bot"

	"github.com/bwmarrin/discordgo"
)

// MessageCreate routes inbound messages to the relay. DMs are the user side
// of a conversation; guild messages are only relayed when they land in a
// thread bound to a room. Events are queued per conversation so messages
// from one user arrive in the thread in the order they were sent, while
// unrelated conversations proceed in parallel.
func MessageCreate(b *bot.Bot) func(s *discordgo.Session, m *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		// Ignore all messages created by the bot itself, and other bots.
		if m.Author.ID == s.State.User.ID || m.Author.Bot {
			return
		}
		if m.Content == "" {
			// Attachment-only messages have nothing to relay.
			return
		}

		if m.GuildID == "" {
			userID := m.Author.ID
			content := m.Content
			b.Dispatcher.Submit(userID, func() {
				if err := b.Router.UserMessage(userID, content); err != nil {
					log.Printf("Error relaying DM: %v", err)
				}
			})
			return
		}

		// A guild message: possibly a moderator replying inside a room
		// thread. The router ignores threads it doesn't know.
		channelID := m.ChannelID
		content := m.Content
		b.Dispatcher.Submit(channelID, func() {
			if err := b.Router.ThreadMessage(channelID, content); err != nil {
				log.Printf("Error relaying thread reply: %v", err)
			}
		})
	}
}
