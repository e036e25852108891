package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Register creates the bot's application commands on the given guild.
// Guild-scoped registration propagates immediately, unlike global commands.
func Register(s *discordgo.Session, guildID string) error {
	for _, def := range Definitions() {
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, def); err != nil {
			return fmt.Errorf("cannot create '%v' command: %w", def.Name, err)
		}
	}
	return nil
}
