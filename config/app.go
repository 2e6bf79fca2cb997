package config

type App struct {
	Port        string `env:"APP_PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	JWTSecret   string `env:"JWT_SECRET,required"`
	RedisAddr   string `env:"REDIS_ADDR"`
	CartDataDir string `env:"CART_DATA_DIR" default:"./data/carts"`
	Env         string `env:"APP_ENV" default:"dev"`
}
