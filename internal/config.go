package internal

type Config struct {
	Host           string `env:"HOST,default=localhost"`
	Port           int    `env:"PORT,default=8080"`
	LogLevel       string `env:"LOG_LEVEL,required=true"`
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	NatsURL        string `env:"NATS_URL,required=true"`
	JWTSecret      string `env:"JWT_SECRET,required=true"`
	LimitMessages  *int   `env:"LIMIT_MESSAGES"`
}
