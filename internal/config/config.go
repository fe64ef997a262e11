package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
)

/*
listen address: env RUN_ADDRESS or flag -a;
session token signing secret: env SECRET or flag -s;
session lifetime in seconds: env SESSION_TTL or flag -t;
size and seed of the generated order set: ORDER_COUNT / SEED or flags -n / -r.
*/

type ServerConfig struct {
	RunAddress        string `env:"RUN_ADDRESS"`
	Secret            string `env:"SECRET"`
	SessionTTLSeconds int    `env:"SESSION_TTL"`
	OrderCount        int    `env:"ORDER_COUNT"`
	Seed              int64  `env:"SEED"`
}

func NewConfig() (*ServerConfig, error) {
	var params ServerConfig
	err := env.Parse(&params)
	if err != nil {
		return nil, err
	}

	var commandLineParams ServerConfig

	flag.StringVar(&commandLineParams.RunAddress, "a", "localhost:8080", "Base address to listen on")
	flag.StringVar(&commandLineParams.Secret, "s", "snapshelf-dev-secret", "Session token signing secret")
	flag.IntVar(&commandLineParams.SessionTTLSeconds, "t", 8*60*60, "Session TTL in seconds")
	flag.IntVar(&commandLineParams.OrderCount, "n", 50, "Number of orders to seed")
	flag.Int64Var(&commandLineParams.Seed, "r", 0, "Seed for the order generator, 0 picks one from the clock")
	flag.Parse()

	if params.RunAddress == "" {
		params.RunAddress = commandLineParams.RunAddress
	}
	if params.Secret == "" {
		params.Secret = commandLineParams.Secret
	}
	if params.SessionTTLSeconds == 0 {
		params.SessionTTLSeconds = commandLineParams.SessionTTLSeconds
	}
	if params.OrderCount == 0 {
		params.OrderCount = commandLineParams.OrderCount
	}
	if params.Seed == 0 {
		params.Seed = commandLineParams.Seed
	}

	return &params, nil
}
