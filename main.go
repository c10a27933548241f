package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"yatube/auth"
	"yatube/cache"
	"yatube/server"
	"yatube/storage"
	"yatube/storage/db"
	"yatube/tasks"
	"yatube/utils"
)

func runBackgroundTasks(storageManager *storage.Manager, mailer *tasks.Mailer) {
	// Activation-deadline cleanup
	go utils.Recoverer(math.MaxInt, 1, func() {
		tasks.CleanInactiveUsers(storageManager)
	})

	// Mail dispatcher
	go utils.Recoverer(math.MaxInt, 2, func() {
		mailer.Run()
	})
}

func main() {
	godotenv.Load()
	log.SetLevel(log.InfoLevel)

	database, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := db.Migrate(database); err != nil {
		panic(err)
	}
	storageManager := storage.NewManager(database)

	redisHost := utils.Env("REDIS_HOST", "localhost")
	redisPort := utils.Env("REDIS_PORT", "6379")
	redisOptions := redis.Options{
		Addr:     fmt.Sprintf("%s:%s", redisHost, redisPort),
		Password: "", // no password set
		DB:       0,  // use default DB
	}
	pageCacheTTL := utils.IntFromString(os.Getenv("PAGE_CACHE_TTL_SECONDS"), 20)
	pagesCache := cache.NewPages(&redisOptions, time.Duration(pageCacheTTL)*time.Second)

	tokens := auth.NewTokenIssuer(
		os.Getenv("JWT_SECRET"),
		24*time.Hour,
		tasks.ActivationDeadline,
	)
	mailer := tasks.NewMailer(tasks.NewSMTPSenderFromEnv())

	s := server.NewServer(storageManager, pagesCache, tokens, mailer)

	// Run background tasks
	runBackgroundTasks(storageManager, mailer)

	s.Run()
}
