package bot

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/TimJentzsch/buttercup/blossom"
	"github.com/TimJentzsch/buttercup/command"
	"github.com/TimJentzsch/buttercup/config"
	"github.com/TimJentzsch/buttercup/handler"
	"github.com/TimJentzsch/buttercup/queue"
)

// Start runs the bot until SIGINT/SIGTERM.
func Start() {
	err := config.LoadConfig()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return
	}

	api := blossom.New(
		config.Cfg.Blossom.URL,
		config.Cfg.Blossom.APIKey,
		config.Cfg.Blossom.Email,
		config.Cfg.Blossom.Password,
	)
	cache := queue.NewCache(api)
	registry := queue.NewRegistry()
	scheduler := queue.NewScheduler(cache, registry, config.Cfg.Queue.UpdateInterval)

	handler.Setup(api, cache, registry)

	dg, err := discordgo.New("Bot " + config.Cfg.Token)
	if err != nil {
		log.Printf("Error creating Discord session: %v", err)
		return
	}

	registerEventHandlers(dg)

	err = dg.Open()
	if err != nil {
		log.Printf("Error opening connection: %v", err)
		return
	}

	for _, guildID := range config.Cfg.Commands.Allowguils {
		for _, cmd := range command.AllCommands {
			_, err := dg.ApplicationCommandCreate(dg.State.User.ID, guildID, cmd)
			if err != nil {
				log.Fatalf("Cannot create '%v' command: %v", cmd.Name, err)
			}
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := scheduler.Start(ctx); err != nil {
		log.Printf("Error starting queue scheduler: %v", err)
		cancel()
		dg.Close()
		return
	}

	log.Printf("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	cancel()
	scheduler.Stop()
	dg.Close()
}
