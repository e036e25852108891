package main

import (
	"modmail-bot/bot"
	"modmail-bot/handlers"
)

func main() {
	bot.Run(handlers.Register)
}
