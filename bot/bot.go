package bot

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"modmail-bot/command"
	"modmail-bot/config"
	"modmail-bot/database"
	"modmail-bot/discord"
	"modmail-bot/relay"
	"modmail-bot/utils"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"
)

// Bot encapsulates the bot's state.
type Bot struct {
	Session    *discordgo.Session
	DB         *sql.DB
	Router     *relay.Router
	Dispatcher *relay.Dispatcher
	GuildID    string
}

// NewBot creates and initializes a new Bot instance.
func NewBot() (*Bot, error) {
	config.LoadConfig()

	token := viper.GetString("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("no bot token provided")
	}
	guildID := viper.GetString("bot.guildId")
	if guildID == "" {
		return nil, fmt.Errorf("no guild ID provided")
	}

	db, err := database.InitDB(viper.GetString("bot.databasePath"))
	if err != nil {
		return nil, err
	}

	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	// DMs carry the user side of every conversation; guild messages carry
	// the moderator side. Message content requires the privileged intent.
	dg.Identify.Intents = discordgo.IntentsDirectMessages |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuilds |
		discordgo.IntentMessageContent

	return &Bot{
		Session:    dg,
		DB:         db,
		Router:     relay.NewRouter(db, discord.NewAdapter(dg, guildID)),
		Dispatcher: relay.NewDispatcher(),
		GuildID:    guildID,
	}, nil
}

// Start opens the bot's session, registers handlers and slash commands, and
// starts the reconciliation scheduler.
func (b *Bot) Start(registerHandlers func(*Bot)) error {
	registerHandlers(b)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	utils.InitLogger(b.Session)

	if err := command.Register(b.Session, b.GuildID); err != nil {
		log.Printf("Cannot register commands: %v", err)
	}

	startScheduler(b.Router)

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully closes the bot's session after in-flight relays drain.
func (b *Bot) Stop() {
	stopScheduler()
	b.Dispatcher.Wait()
	if b.Session != nil {
		b.Session.Close()
	}
	if b.DB != nil {
		b.DB.Close()
	}
	fmt.Println("Bot stopped gracefully.")
}

// Run is the main entry point for the bot application.
func Run(registerHandlers func(*Bot)) {
	bot, err := NewBot()
	if err != nil {
		log.Fatalf("Error initializing bot: %v", err)
	}

	if err := bot.Start(registerHandlers); err != nil {
		log.Fatalf("Error starting bot: %v", err)
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	bot.Stop()
}
