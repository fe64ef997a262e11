package main

import (
	"time"

	"github.com/snapshelf/orderdesk/internal/compress"
	"github.com/snapshelf/orderdesk/internal/config"
	"github.com/snapshelf/orderdesk/internal/handlers"
	"github.com/snapshelf/orderdesk/internal/router"
	"github.com/snapshelf/orderdesk/internal/session"
	"github.com/snapshelf/orderdesk/internal/stats"
	"github.com/snapshelf/orderdesk/internal/store"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	orders := store.New(conf.OrderCount, seed, nil)

	gate, err := session.NewGate(
		[]byte(conf.Secret),
		time.Duration(conf.SessionTTLSeconds)*time.Second,
		nil,
		session.DefaultCredentials(),
	)
	if err != nil {
		panic(err)
	}

	handlerSet := handlers.NewHandlerSet(orders, gate, stats.NewAggregator(nil))

	r := router.NewRouter(conf.RunAddress, []byte(conf.Secret), handlerSet, compress.RequestUngzipper{})

	err = r.ListenAndServe()
	if err != nil {
		panic(err)
	}

}
