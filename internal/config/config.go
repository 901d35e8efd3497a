package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio. Solo knobs de
// transporte: el core no requiere configuración alguna.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
