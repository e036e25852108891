package handlers

import (
	"log"

	"modmail-bot/bot"

	"github.com/bwmarrin/discordgo"
)

// ThreadDelete handles the THREAD_DELETE event. A moderator deleting a
// conversation thread out from under the bot closes the conversation, so
// the user's next message opens a fresh one instead of vanishing into a
// dangling thread ID.
func ThreadDelete(b *bot.Bot) func(s *discordgo.Session, t *discordgo.ThreadDelete) {
	return func(s *discordgo.Session, t *discordgo.ThreadDelete) {
		threadID := t.ID
		b.Dispatcher.Submit(threadID, func() {
			if err := b.Router.RemoveByThread(threadID); err != nil {
				log.Printf("Error handling deleted thread %s: %v", threadID, err)
			}
		})
	}
}
