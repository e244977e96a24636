package main

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tarbiyah-bot/internal/config"
	"tarbiyah-bot/internal/handlers"
	"tarbiyah-bot/internal/report"
	"tarbiyah-bot/internal/scheduler"
	"tarbiyah-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatal(err)
	}

	db, err := storage.New(cfg.DBPath, loc)
	if err != nil {
		log.Fatal(err)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatal(err)
	}

	rep := &report.Reporter{Bot: bot, DB: db, GroupChatID: cfg.GroupChatID, Loc: loc}
	h := &handlers.Handler{Bot: bot, DB: db, Reporter: rep, AdminID: cfg.AdminID, Loc: loc}

	if _, err := scheduler.Start(rep, loc); err != nil {
		log.Fatal(err)
	}

	log.Printf("🚀 Tarbiyah bot started as @%s", bot.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	for upd := range bot.GetUpdatesChan(updateConfig) {
		// each update is its own unit of work; the store serializes
		// writes per (user, day, item) row
		go h.HandleUpdate(upd)
	}
}
